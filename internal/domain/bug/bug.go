// Package bug provides the Bug sprite: a pixel pattern plus the mask of
// territory it claims, and the transforms that derive new Bugs from it.
//
// A Bug is immutable. Every transform returns a new Bug with freshly
// allocated grids, so Bugs can be shared freely between goroutines.
//
// Pattern and mask are independent grids and may differ in shape. The
// margin accessors assume the mask is centred on the pattern and at least
// as large; Margin, TotalMask and FitMask keep that true, but the type
// itself does not enforce it.
package bug

import "strings"

// Bug is a named sprite with a pattern and an occupancy mask
type Bug struct {
	name    string
	pattern Grid
	mask    Grid
}

// New creates a Bug whose mask is the pattern itself.
func New(name string, pattern [][]int) (*Bug, error) {
	p, err := GridFromRows(pattern)
	if err != nil {
		return nil, err
	}
	return &Bug{name: name, pattern: p, mask: p}, nil
}

// NewWithMask creates a Bug with a separately shaped mask.
func NewWithMask(name string, pattern, mask [][]int) (*Bug, error) {
	p, err := GridFromRows(pattern)
	if err != nil {
		return nil, err
	}
	m, err := GridFromRows(mask)
	if err != nil {
		return nil, err
	}
	return &Bug{name: name, pattern: p, mask: m}, nil
}

// FromGrids creates a Bug from already built grids. Both grids are copied.
func FromGrids(name string, pattern, mask Grid) *Bug {
	return &Bug{name: name, pattern: pattern.clone(), mask: mask.clone()}
}

// Name returns the bug's label
func (b *Bug) Name() string {
	return b.name
}

// Pattern returns a copy of the pattern rows
func (b *Bug) Pattern() [][]int {
	return b.pattern.ToRows()
}

// Mask returns a copy of the mask rows
func (b *Bug) Mask() [][]int {
	return b.mask.ToRows()
}

// MaskGrid returns a copy of the mask grid
func (b *Bug) MaskGrid() Grid {
	return b.mask.clone()
}

// PatternAt returns the pattern value at (row, col), 0 outside the pattern.
func (b *Bug) PatternAt(row, col int) int {
	return b.pattern.At(row, col)
}

// MaskAt returns the mask value at (row, col), 0 outside the mask.
func (b *Bug) MaskAt(row, col int) int {
	return b.mask.At(row, col)
}

// Height returns the pattern's row count
func (b *Bug) Height() int {
	return b.pattern.rows
}

// Width returns the pattern's column count
func (b *Bug) Width() int {
	return b.pattern.cols
}

// MaskHeight returns the mask's row count
func (b *Bug) MaskHeight() int {
	return b.mask.rows
}

// MaskWidth returns the mask's column count
func (b *Bug) MaskWidth() int {
	return b.mask.cols
}

// MarginHeight returns (MaskHeight - Height) / 2, truncated toward zero.
func (b *Bug) MarginHeight() int {
	return (b.MaskHeight() - b.Height()) / 2
}

// MarginWidth returns (MaskWidth - Width) / 2, truncated toward zero.
func (b *Bug) MarginWidth() int {
	return (b.MaskWidth() - b.Width()) / 2
}

// Occupied returns the number of non-zero pattern pixels
func (b *Bug) Occupied() int {
	return b.pattern.Count()
}

// MaskOccupied returns the number of non-zero mask cells
func (b *Bug) MaskOccupied() int {
	return b.mask.Count()
}

// Equal reports whether two bugs have the same name, pattern and mask.
func (b *Bug) Equal(other *Bug) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.name == other.name && b.pattern.Equal(other.pattern) && b.mask.Equal(other.mask)
}

// String renders the name followed by one line per pattern row.
// Set pixels are drawn as 'x', background as ' ', columns separated by a space.
func (b *Bug) String() string {
	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteByte('\n')
	for r := 0; r < b.pattern.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.pattern.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.pattern.At(r, c) != 0 {
				sb.WriteByte('x')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
