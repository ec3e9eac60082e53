package bug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, name string, pattern [][]int) *Bug {
	t.Helper()
	b, err := New(name, pattern)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	b := mustNew(t, "beetle", [][]int{
		{0, 1, 0},
		{1, 1, 1},
	})

	assert.Equal(t, "beetle", b.Name())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.MaskHeight())
	assert.Equal(t, 3, b.MaskWidth())
	assert.Equal(t, b.Pattern(), b.Mask(), "mask defaults to the pattern")
	assert.Equal(t, 0, b.MarginHeight())
	assert.Equal(t, 0, b.MarginWidth())
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 0}, {0, 1}}
	b := mustNew(t, "tick", rows)

	rows[0][0] = 7
	assert.Equal(t, 1, b.PatternAt(0, 0), "bug must not alias caller storage")

	out := b.Pattern()
	out[1][1] = 9
	assert.Equal(t, 1, b.PatternAt(1, 1), "Pattern must return a copy")

	mask := b.Mask()
	mask[0][0] = 0
	assert.Equal(t, 1, b.MaskAt(0, 0), "Mask must return a copy")
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name    string
		pattern [][]int
		mask    [][]int
	}{
		{"ragged pattern", [][]int{{1, 0}, {1}}, nil},
		{"ragged mask", [][]int{{1}}, [][]int{{1, 1}, {1, 1, 1}}},
		{"short first row", [][]int{{1}, {1, 1}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.mask == nil {
				_, err = New("bad", tt.pattern)
			} else {
				_, err = NewWithMask("bad", tt.pattern, tt.mask)
			}
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestNew_NegativePixel(t *testing.T) {
	_, err := New("bad", [][]int{{1, -1}})
	assert.ErrorIs(t, err, ErrInvalidPixel)

	_, err = NewWithMask("bad", [][]int{{1}}, [][]int{{-3}})
	assert.ErrorIs(t, err, ErrInvalidPixel)
}

func TestNewWithMask(t *testing.T) {
	b, err := NewWithMask("moth",
		[][]int{{1}},
		[][]int{
			{0, 1, 0},
			{1, 1, 1},
			{0, 1, 0},
		})
	require.NoError(t, err)

	assert.Equal(t, 1, b.Height())
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, 3, b.MaskHeight())
	assert.Equal(t, 3, b.MaskWidth())
	assert.Equal(t, 1, b.MarginHeight())
	assert.Equal(t, 1, b.MarginWidth())
	assert.Equal(t, 5, b.MaskOccupied())
}

func TestMargins_TruncatingDivision(t *testing.T) {
	b, err := NewWithMask("odd", [][]int{{1}}, [][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 0, b.MarginHeight(), "(2-1)/2 truncates to 0")
	assert.Equal(t, 0, b.MarginWidth())

	b, err = NewWithMask("small", [][]int{{1, 1}, {1, 1}}, [][]int{{1}})
	require.NoError(t, err)
	assert.Equal(t, 0, b.MarginHeight(), "(1-2)/2 truncates toward zero")
}

func TestNew_Degenerate(t *testing.T) {
	empty := mustNew(t, "empty", nil)
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, 0, empty.Width())

	column := mustNew(t, "column", [][]int{{}, {}, {}})
	assert.Equal(t, 3, column.Height())
	assert.Equal(t, 0, column.Width())

	rotated, err := column.Rotate(90)
	require.NoError(t, err)
	assert.Equal(t, 0, rotated.Height())
	assert.Equal(t, 3, rotated.Width(), "degenerate shapes keep both dimensions")
}

func TestBug_PatternAt_OutOfBounds(t *testing.T) {
	b := mustNew(t, "mite", [][]int{{2}})

	assert.Equal(t, 2, b.PatternAt(0, 0))
	assert.Equal(t, 0, b.PatternAt(-1, 0))
	assert.Equal(t, 0, b.PatternAt(0, 1))
	assert.Equal(t, 0, b.MaskAt(5, 5))
}

func TestBug_String(t *testing.T) {
	tests := []struct {
		name    string
		pattern [][]int
		want    string
	}{
		{"diagonal", [][]int{{1, 0}, {0, 1}}, "ant\nx  \n  x"},
		{"non-binary values", [][]int{{3, 0, 2}}, "ant\nx   x"},
		{"empty", nil, "ant\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustNew(t, "ant", tt.pattern)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBug_Equal(t *testing.T) {
	a := mustNew(t, "a", [][]int{{1, 0}})
	same := mustNew(t, "a", [][]int{{1, 0}})
	renamed := mustNew(t, "b", [][]int{{1, 0}})
	otherMask := a.TotalMask()

	assert.True(t, a.Equal(same))
	assert.False(t, a.Equal(renamed))
	assert.False(t, a.Equal(otherMask))
	assert.False(t, a.Equal(nil))
}

func TestBug_Occupied(t *testing.T) {
	b := mustNew(t, "spider", [][]int{
		{1, 0, 1},
		{0, 5, 0},
	})
	assert.Equal(t, 3, b.Occupied())
	assert.Equal(t, 3, b.MaskOccupied())
}

func TestFromGrids_Copies(t *testing.T) {
	p, err := GridFromRows([][]int{{1, 1}})
	require.NoError(t, err)

	b := FromGrids("wasp", p, p)
	p.set(0, 0, 0)

	assert.Equal(t, 1, b.PatternAt(0, 0))
	assert.Equal(t, 1, b.MaskAt(0, 0))
}

func TestBug_MaskGrid_Copies(t *testing.T) {
	b := mustNew(t, "ant", [][]int{{1, 0}, {0, 1}})

	g := b.MaskGrid()
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, b.Mask(), g.ToRows())

	g.set(0, 0, 0)
	assert.Equal(t, 1, b.MaskAt(0, 0), "grid is a copy")
}
