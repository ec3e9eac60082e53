package config

// CatalogConfig is the root config for a bugs/<name>.json or .yaml file
type CatalogConfig struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Bugs []BugConfig `json:"bugs" yaml:"bugs"`
}

// BugConfig describes one bug as rows of characters.
// Pixels maps a single character to a pixel value; when empty, '.' and ' '
// are background and every other character is 1.
type BugConfig struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Pattern    []string          `json:"pattern" yaml:"pattern"`
	Mask       []string          `json:"mask,omitempty" yaml:"mask,omitempty"`
	Pixels     map[string]int    `json:"pixels,omitempty" yaml:"pixels,omitempty"`
	Transforms []TransformConfig `json:"transforms,omitempty" yaml:"transforms,omitempty"`
}

// TransformConfig is one step of a bug's transform pipeline.
// Op is one of: rotate, hflip, vflip, scale, margin, total, fit.
type TransformConfig struct {
	Op     string `json:"op" yaml:"op"`
	Angle  int    `json:"angle,omitempty" yaml:"angle,omitempty"`
	X      int    `json:"x,omitempty" yaml:"x,omitempty"`
	Y      int    `json:"y,omitempty" yaml:"y,omitempty"`
	Margin int    `json:"margin,omitempty" yaml:"margin,omitempty"`
}

// Find returns the bug config with the given id
func (c *CatalogConfig) Find(id string) (BugConfig, bool) {
	for _, b := range c.Bugs {
		if b.ID == id {
			return b, true
		}
	}
	return BugConfig{}, false
}
