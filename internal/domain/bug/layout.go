package bug

import "image"

// Bounds returns the rectangle covering both pattern and mask, in pattern
// coordinates. The mask is placed so that its cell (MarginHeight,
// MarginWidth) sits on pattern cell (0, 0).
func (b *Bug) Bounds() image.Rectangle {
	mh, mw := b.MarginHeight(), b.MarginWidth()
	return image.Rect(
		min(0, -mw),
		min(0, -mh),
		max(b.Width(), b.MaskWidth()-mw),
		max(b.Height(), b.MaskHeight()-mh),
	)
}

// CellAt returns the pattern pixel and mask cell at a pattern coordinate.
// Either value is 0 outside its grid.
func (b *Bug) CellAt(row, col int) (pattern, mask int) {
	return b.pattern.At(row, col), b.mask.At(row+b.MarginHeight(), col+b.MarginWidth())
}
