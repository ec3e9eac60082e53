package bug

import "fmt"

// HFlip returns a Bug mirrored across its vertical axis (columns reversed).
func (b *Bug) HFlip() *Bug {
	return &Bug{
		name:    b.name,
		pattern: b.pattern.reverseCols(),
		mask:    b.mask.reverseCols(),
	}
}

// VFlip returns a Bug mirrored across its horizontal axis (rows reversed).
func (b *Bug) VFlip() *Bug {
	return &Bug{
		name:    b.name,
		pattern: b.pattern.reverseRows(),
		mask:    b.mask.reverseRows(),
	}
}

// Rotate rotates the Bug clockwise by an orthogonal angle in degrees.
// The angle is reduced modulo 360, so -90 is the same as 270.
// Rotate(0) returns the receiver itself.
//
// 90 is a transpose followed by HFlip; 180 and 270 are HFlip().VFlip()
// followed by a rotation of angle-180.
func (b *Bug) Rotate(angle int) (*Bug, error) {
	a := ((angle % 360) + 360) % 360
	switch a {
	case 0:
		return b, nil
	case 90:
		t := &Bug{
			name:    b.name,
			pattern: b.pattern.transpose(),
			mask:    b.mask.transpose(),
		}
		return t.HFlip(), nil
	case 180, 270:
		return b.HFlip().VFlip().Rotate(a - 180)
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAngle, angle)
	}
}

// Scale maps every pixel to an xScale by yScale block. Pattern and mask are
// scaled independently against their own shapes.
func (b *Bug) Scale(xScale, yScale int) (*Bug, error) {
	if xScale <= 0 || yScale <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidScale, xScale, yScale)
	}
	return &Bug{
		name:    b.name,
		pattern: b.pattern.upsample(xScale, yScale),
		mask:    b.mask.upsample(xScale, yScale),
	}, nil
}

// ScaleUniform scales by the same factor on both axes
func (b *Bug) ScaleUniform(s int) (*Bug, error) {
	return b.Scale(s, s)
}
