package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ViewerConfig is the root config for viewer.json
type ViewerConfig struct {
	Display  DisplayConfig  `json:"display" yaml:"display"`
	Grid     GridConfig     `json:"grid" yaml:"grid"`
	Colors   ColorsConfig   `json:"colors" yaml:"colors"`
	Controls ControlsConfig `json:"controls" yaml:"controls"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// GridConfig controls how bug cells are laid out on screen
type GridConfig struct {
	CellSize int `json:"cellSize" yaml:"cellSize"` // Pixels per bug cell
	Gap      int `json:"gap" yaml:"gap"`           // Pixels between cells
}

// ColorsConfig holds "#rrggbb" or "#rrggbbaa" strings
type ColorsConfig struct {
	Background string `json:"background" yaml:"background"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	Mask       string `json:"mask" yaml:"mask"`
	Overlap    string `json:"overlap" yaml:"overlap"`
	Text       string `json:"text" yaml:"text"`
}

// ControlsConfig bounds the interactive scale and margin controls
type ControlsConfig struct {
	MaxScale  int `json:"maxScale" yaml:"maxScale"`
	MaxMargin int `json:"maxMargin" yaml:"maxMargin"`
}

// Palette is the parsed form of ColorsConfig
type Palette struct {
	Background color.RGBA
	Pattern    color.RGBA
	Mask       color.RGBA
	Overlap    color.RGBA
	Text       color.RGBA
}

// Palette parses every configured color
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &p.Background},
		{"pattern", c.Pattern, &p.Pattern},
		{"mask", c.Mask, &p.Mask},
		{"overlap", c.Overlap, &p.Overlap},
		{"text", c.Text, &p.Text},
	}
	for _, f := range fields {
		rgba, err := ParseHexColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("failed to parse %s color: %w", f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// DefaultViewer returns the settings used when viewer.json leaves fields empty
func DefaultViewer() ViewerConfig {
	return ViewerConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Grid: GridConfig{
			CellSize: 6,
			Gap:      1,
		},
		Colors: ColorsConfig{
			Background: "#1a1a2e",
			Pattern:    "#64c864",
			Mask:       "#5050a0",
			Overlap:    "#c8c864",
			Text:       "#ffffff",
		},
		Controls: ControlsConfig{
			MaxScale:  4,
			MaxMargin: 4,
		},
	}
}

// applyDefaults fills zero-valued fields from DefaultViewer
func (v *ViewerConfig) applyDefaults() {
	d := DefaultViewer()
	if v.Display.ScreenWidth == 0 {
		v.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if v.Display.ScreenHeight == 0 {
		v.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if v.Display.Scale == 0 {
		v.Display.Scale = d.Display.Scale
	}
	if v.Display.Framerate == 0 {
		v.Display.Framerate = d.Display.Framerate
	}
	if v.Grid.CellSize == 0 {
		v.Grid.CellSize = d.Grid.CellSize
	}
	if v.Colors.Background == "" {
		v.Colors.Background = d.Colors.Background
	}
	if v.Colors.Pattern == "" {
		v.Colors.Pattern = d.Colors.Pattern
	}
	if v.Colors.Mask == "" {
		v.Colors.Mask = d.Colors.Mask
	}
	if v.Colors.Overlap == "" {
		v.Colors.Overlap = d.Colors.Overlap
	}
	if v.Colors.Text == "" {
		v.Colors.Text = d.Colors.Text
	}
	if v.Controls.MaxScale == 0 {
		v.Controls.MaxScale = d.Controls.MaxScale
	}
	if v.Controls.MaxMargin == 0 {
		v.Controls.MaxMargin = d.Controls.MaxMargin
	}
}
