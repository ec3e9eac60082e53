package replay

import "github.com/younwookim/bugland/internal/infrastructure/config"

// ScriptVersion is written into every saved script
const ScriptVersion = "1.0"

// StepRecord records one transform applied to a bug
type StepRecord struct {
	F      int    `json:"f"`                // Step number
	Op     string `json:"op"`               // rotate, hflip, vflip, scale, margin, total, fit
	Angle  int    `json:"angle,omitempty"`  // rotate
	X      int    `json:"x,omitempty"`      // scale
	Y      int    `json:"y,omitempty"`      // scale
	Margin int    `json:"margin,omitempty"` // margin
}

// Transform returns the step as a catalog transform
func (s StepRecord) Transform() config.TransformConfig {
	return config.TransformConfig{
		Op:     s.Op,
		Angle:  s.Angle,
		X:      s.X,
		Y:      s.Y,
		Margin: s.Margin,
	}
}

// ScriptData contains all data needed to replay a transform session
type ScriptData struct {
	Version   string       `json:"version"`
	ID        string       `json:"id,omitempty"`
	Bug       string       `json:"bug"`
	StartTime string       `json:"startTime"`
	Steps     []StepRecord `json:"steps"`
}
