package state

// ViewMode selects which layers of a bug the viewer draws
type ViewMode int

const (
	ViewOverlay ViewMode = iota
	ViewPattern
	ViewMask
)

// viewModeCount is the number of view modes cycled by Next
const viewModeCount = 3

// String returns the string representation of the view mode
func (m ViewMode) String() string {
	switch m {
	case ViewOverlay:
		return "Overlay"
	case ViewPattern:
		return "Pattern"
	case ViewMask:
		return "Mask"
	default:
		return "Unknown"
	}
}

// Next returns the following view mode, wrapping around
func (m ViewMode) Next() ViewMode {
	if m < 0 || m >= viewModeCount {
		return ViewOverlay
	}
	return (m + 1) % viewModeCount
}

// ShowsPattern reports whether pattern pixels are drawn in this mode
func (m ViewMode) ShowsPattern() bool {
	return m == ViewOverlay || m == ViewPattern
}

// ShowsMask reports whether mask cells are drawn in this mode
func (m ViewMode) ShowsMask() bool {
	return m == ViewOverlay || m == ViewMask
}
