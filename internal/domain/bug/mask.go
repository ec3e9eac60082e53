package bug

import "fmt"

// Margin returns a Bug with the same pattern and a mask that is the pattern
// dilated by margin pixels on every side. The new mask has shape
// (Height+2*margin, Width+2*margin); margin 0 makes the mask equal the pattern.
func (b *Bug) Margin(margin int) (*Bug, error) {
	if margin < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMargin, margin)
	}
	return &Bug{
		name:    b.name,
		pattern: b.pattern.clone(),
		mask:    b.pattern.dilate(margin),
	}, nil
}

// TotalMask returns a Bug whose mask claims the whole rectangle of the
// current mask.
func (b *Bug) TotalMask() *Bug {
	return &Bug{
		name:    b.name,
		pattern: b.pattern.clone(),
		mask:    b.mask.filled(1),
	}
}

// FitMask returns a Bug whose mask is a copy of its pattern.
func (b *Bug) FitMask() *Bug {
	return &Bug{
		name:    b.name,
		pattern: b.pattern.clone(),
		mask:    b.pattern.clone(),
	}
}
