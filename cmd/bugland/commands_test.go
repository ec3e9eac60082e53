package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bugland/internal/application/replay"
	"github.com/younwookim/bugland/internal/application/system"
	"github.com/younwookim/bugland/internal/domain/bug"
)

// run executes the root command with args and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ant"))
	assert.Contains(t, lines[0], "5x3 mask 5x3")
	assert.Contains(t, lines[4], "2x3 mask 4x5")
}

func TestListCmd_Catalogs(t *testing.T) {
	out, err := run(t, "list", "--catalogs")
	require.NoError(t, err)
	assert.Equal(t, "default.json\ngarden.yaml\n", out)
}

func TestListCmd_OtherCatalog(t *testing.T) {
	out, err := run(t, "--catalog", "garden", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "snail")
	assert.Contains(t, out, "worm")
}

func TestShowCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"plain",
			[]string{"show", "ant"},
			"Ant\nx   x\n  x  \nx x x\n  x  \nx   x\n",
		},
		{
			"rotated",
			[]string{"show", "ant", "--rotate", "90"},
			"Ant\nx   x   x\n  x x x  \nx   x   x\n",
		},
		{
			"fit mask",
			[]string{"show", "moth", "--fit", "--mask"},
			"Moth\nx   x\nx x x\nmask\nx   x\nx x x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShowCmd_Errors(t *testing.T) {
	_, err := run(t, "show", "wasp")
	assert.ErrorContains(t, err, `bug "wasp" not found`)

	_, err = run(t, "show", "ant", "--rotate", "45")
	assert.ErrorIs(t, err, bug.ErrInvalidAngle)

	_, err = run(t, "show", "ant", "--margin", "-3")
	assert.ErrorIs(t, err, bug.ErrInvalidMargin)

	_, err = run(t, "show", "ant", "--scale", "0")
	assert.ErrorIs(t, err, bug.ErrInvalidScale)

	_, err = run(t, "show")
	assert.Error(t, err)
}

func TestShowCmd_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bugs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "viewer.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bugs", "tiny.yaml"), []byte(`
bugs:
  - id: dot
    pattern: ["x"]
`), 0o644))

	out, err := run(t, "--configs", dir, "--catalog", "tiny", "show", "dot", "--margin", "1", "--mask")
	require.NoError(t, err)
	assert.Equal(t, "dot\nx\nmask\nx x x\nx x x\nx x x\n", out)
}

func TestReplayCmd(t *testing.T) {
	rec := replay.NewRecorder("ant")
	rec.RecordStep(system.Rotate{Angle: 90})
	rec.RecordStep(system.FitMask{})
	filename := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, rec.Save(filename))

	out, err := run(t, "replay", filename, "--view", "overlay")
	require.NoError(t, err)
	assert.Equal(t,
		"Replayed 2 steps on ant\nAnt\nx   x   x\n  x x x  \nx   x   x\nmask\nx   x   x\n  x x x  \nx   x   x\n",
		out)

	_, err = run(t, "replay", filename, "--view", "sideways")
	assert.ErrorContains(t, err, "unknown view")
}

func TestReplayCmd_UnknownBug(t *testing.T) {
	rec := replay.NewRecorder("wasp")
	rec.RecordStep(system.HFlip{})
	filename := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, rec.Save(filename))

	_, err := run(t, "replay", filename)
	assert.ErrorContains(t, err, "not found")
}

func TestViewCmd_UnknownBug(t *testing.T) {
	_, err := run(t, "view", "wasp")
	assert.ErrorContains(t, err, `bug "wasp" not found`)
}

func TestViewCmd_WatchNeedsConfigDir(t *testing.T) {
	_, err := run(t, "view", "--watch")
	assert.ErrorContains(t, err, "--watch requires --configs")
}

func TestShowFlags_Ops(t *testing.T) {
	tests := []struct {
		name  string
		flags showFlags
		want  []system.Op
	}{
		{"defaults", showFlags{scale: 1}, nil},
		{"negative margin kept", showFlags{scale: 1, margin: -3, hasMargin: true}, []system.Op{system.Margin{Width: -3}}},
		{
			"all in order",
			showFlags{rotate: 180, hflip: true, vflip: true, scale: 2, hasMargin: true, total: true, fit: true},
			[]system.Op{
				system.Rotate{Angle: 180},
				system.HFlip{},
				system.VFlip{},
				system.Scale{X: 2, Y: 2},
				system.Margin{Width: 0},
				system.TotalMask{},
				system.FitMask{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.ops())
		})
	}
}
