package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"rgb with hash", "#1a1a2e", color.RGBA{26, 26, 46, 255}, false},
		{"rgb without hash", "ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"rgba", "#00ff0080", color.RGBA{0, 255, 0, 128}, false},
		{"too short", "#fff", color.RGBA{}, true},
		{"not hex", "#gggggg", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorsConfig_Palette(t *testing.T) {
	p, err := DefaultViewer().Colors.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{100, 200, 100, 255}, p.Pattern)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, p.Text)

	bad := DefaultViewer().Colors
	bad.Mask = "blue"
	_, err = bad.Palette()
	assert.ErrorContains(t, err, "mask")
}
