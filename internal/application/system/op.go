package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/bugland/internal/domain/bug"
	"github.com/younwookim/bugland/internal/infrastructure/config"
)

// ErrUnknownOp is returned by ParseOp for an unrecognised op name
var ErrUnknownOp = errors.New("unknown transform op")

// Op is a single transform that derives a new Bug from an existing one
type Op interface {
	// Apply returns the transformed bug; b is never modified
	Apply(b *bug.Bug) (*bug.Bug, error)
	// Config returns the catalog form of the op, the inverse of ParseOp
	Config() config.TransformConfig
	// String returns a short label for logs and the viewer HUD
	String() string
}

// Rotate rotates clockwise by Angle degrees
type Rotate struct {
	Angle int
}

// Apply rotates b by Angle
func (o Rotate) Apply(b *bug.Bug) (*bug.Bug, error) { return b.Rotate(o.Angle) }

// Config returns {op: rotate, angle: Angle}
func (o Rotate) Config() config.TransformConfig {
	return config.TransformConfig{Op: "rotate", Angle: o.Angle}
}

// String returns "rotate <angle>"
func (o Rotate) String() string { return fmt.Sprintf("rotate %d", o.Angle) }

// HFlip mirrors columns
type HFlip struct{}

// Apply mirrors b left to right
func (HFlip) Apply(b *bug.Bug) (*bug.Bug, error) { return b.HFlip(), nil }

// Config returns {op: hflip}
func (HFlip) Config() config.TransformConfig { return config.TransformConfig{Op: "hflip"} }

// String returns "hflip"
func (HFlip) String() string { return "hflip" }

// VFlip mirrors rows
type VFlip struct{}

// Apply mirrors b top to bottom
func (VFlip) Apply(b *bug.Bug) (*bug.Bug, error) { return b.VFlip(), nil }

// Config returns {op: vflip}
func (VFlip) Config() config.TransformConfig { return config.TransformConfig{Op: "vflip"} }

// String returns "vflip"
func (VFlip) String() string { return "vflip" }

// Scale upsamples by X columns and Y rows per pixel
type Scale struct {
	X, Y int
}

// Apply scales b by X and Y
func (o Scale) Apply(b *bug.Bug) (*bug.Bug, error) { return b.Scale(o.X, o.Y) }

// Config returns {op: scale, x: X, y: Y}
func (o Scale) Config() config.TransformConfig {
	return config.TransformConfig{Op: "scale", X: o.X, Y: o.Y}
}

// String returns "scale <x>x<y>"
func (o Scale) String() string { return fmt.Sprintf("scale %dx%d", o.X, o.Y) }

// Margin dilates the mask by Width pixels around the pattern
type Margin struct {
	Width int
}

// Apply rebuilds the mask of b with a margin of Width
func (o Margin) Apply(b *bug.Bug) (*bug.Bug, error) { return b.Margin(o.Width) }

// Config returns {op: margin, margin: Width}
func (o Margin) Config() config.TransformConfig {
	return config.TransformConfig{Op: "margin", Margin: o.Width}
}

// String returns "margin <width>"
func (o Margin) String() string { return fmt.Sprintf("margin %d", o.Width) }

// TotalMask claims the whole mask rectangle
type TotalMask struct{}

// Apply fills the mask of b
func (TotalMask) Apply(b *bug.Bug) (*bug.Bug, error) { return b.TotalMask(), nil }

// Config returns {op: total}
func (TotalMask) Config() config.TransformConfig { return config.TransformConfig{Op: "total"} }

// String returns "total"
func (TotalMask) String() string { return "total" }

// FitMask resets the mask to the pattern
type FitMask struct{}

// Apply sets the mask of b to its pattern
func (FitMask) Apply(b *bug.Bug) (*bug.Bug, error) { return b.FitMask(), nil }

// Config returns {op: fit}
func (FitMask) Config() config.TransformConfig { return config.TransformConfig{Op: "fit"} }

// String returns "fit"
func (FitMask) String() string { return "fit" }

// ParseOp converts a TransformConfig into an Op.
// A scale with no Y uses X for both axes.
func ParseOp(cfg config.TransformConfig) (Op, error) {
	switch cfg.Op {
	case "rotate":
		return Rotate{Angle: cfg.Angle}, nil
	case "hflip":
		return HFlip{}, nil
	case "vflip":
		return VFlip{}, nil
	case "scale":
		y := cfg.Y
		if y == 0 {
			y = cfg.X
		}
		return Scale{X: cfg.X, Y: y}, nil
	case "margin":
		return Margin{Width: cfg.Margin}, nil
	case "total":
		return TotalMask{}, nil
	case "fit":
		return FitMask{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, cfg.Op)
	}
}

// ParseOps converts a transform pipeline into ops
func ParseOps(cfgs []config.TransformConfig) ([]Op, error) {
	ops := make([]Op, 0, len(cfgs))
	for i, c := range cfgs {
		op, err := ParseOp(c)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ApplyOps applies ops left to right and stops at the first failure
func ApplyOps(b *bug.Bug, ops ...Op) (*bug.Bug, error) {
	cur := b
	for i, op := range ops {
		next, err := op.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, op, err)
		}
		cur = next
	}
	return cur, nil
}
