package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadViewer(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadViewer()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 6, cfg.Grid.CellSize)
	assert.Equal(t, "#64c864", cfg.Colors.Pattern)
	assert.Equal(t, 4, cfg.Controls.MaxScale)
}

func TestLoader_LoadViewer_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"viewer.json": {Data: []byte(`{"display": {"screenWidth": 640}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadViewer()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth, "explicit value is kept")
	assert.Equal(t, 240, cfg.Display.ScreenHeight, "missing value is defaulted")
	assert.Equal(t, "#1a1a2e", cfg.Colors.Background)
	assert.Equal(t, 4, cfg.Controls.MaxMargin)
}

func TestLoader_LoadViewer_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, "mem")
		_, err := loader.LoadViewer()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"viewer.json": {Data: []byte(`{`)},
		}, "mem")
		_, err := loader.LoadViewer()
		assert.ErrorContains(t, err, "failed to parse viewer.json")
	})
}

func TestLoader_LoadCatalog_JSON(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadCatalog("default")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ID)
	require.NotEmpty(t, cfg.Bugs)

	ant, ok := cfg.Find("ant")
	require.True(t, ok)
	assert.Equal(t, "Ant", ant.Name)
	assert.Len(t, ant.Pattern, 5)

	ladybug, ok := cfg.Find("ladybug")
	require.True(t, ok)
	assert.Equal(t, 2, ladybug.Pixels["b"])
	require.Len(t, ladybug.Transforms, 1)
	assert.Equal(t, "scale", ladybug.Transforms[0].Op)
	assert.Equal(t, 2, ladybug.Transforms[0].X)
}

func TestLoader_LoadCatalog_YAML(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadCatalog("garden")
	require.NoError(t, err)

	assert.Equal(t, "garden", cfg.ID)
	snail, ok := cfg.Find("snail")
	require.True(t, ok)
	require.Len(t, snail.Transforms, 2)
	assert.Equal(t, "hflip", snail.Transforms[0].Op)
	assert.Equal(t, 2, snail.Transforms[1].Margin)
}

func TestLoader_LoadCatalog_ExplicitExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"bugs/extra.yml": {Data: []byte("bugs:\n  - id: flea\n    pattern: [\"x\"]\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadCatalog("extra.yml")
	require.NoError(t, err)
	assert.Equal(t, "extra.yml", cfg.ID, "id falls back to the requested name")
	require.Len(t, cfg.Bugs, 1)
	assert.Equal(t, []string{"x"}, cfg.Bugs[0].Pattern)

	cfg, err = loader.LoadCatalog("extra")
	require.NoError(t, err)
	assert.Len(t, cfg.Bugs, 1, "extension lookup reaches .yml")
}

func TestLoader_LoadCatalog_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bugs/broken.json": {Data: []byte(`{"bugs": [`)},
		"bugs/notes.txt":   {Data: []byte(`hello`)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadCatalog("missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = loader.LoadCatalog("broken")
	assert.ErrorContains(t, err, "failed to parse catalog broken")

	_, err = loader.LoadCatalog("notes.txt")
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLoader_ListCatalogs(t *testing.T) {
	loader := NewLoader("../../../configs")

	names, err := loader.ListCatalogs()
	require.NoError(t, err)
	assert.Contains(t, names, "default.json")
	assert.Contains(t, names, "garden.yaml")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Viewer)
	assert.NotNil(t, cfg.Catalog)
	assert.Equal(t, "../../../configs", loader.BasePath())
}

func TestCatalogConfig_Find(t *testing.T) {
	cfg := &CatalogConfig{Bugs: []BugConfig{{ID: "a"}, {ID: "b", Name: "Bee"}}}

	b, ok := cfg.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "Bee", b.Name)

	_, ok = cfg.Find("z")
	assert.False(t, ok)
}
