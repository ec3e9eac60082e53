package bug

import "errors"

// Validation errors returned by construction and transforms.
var (
	ErrInvalidShape  = errors.New("rows have inconsistent lengths")
	ErrInvalidPixel  = errors.New("pixel values must be non-negative")
	ErrInvalidAngle  = errors.New("angle must be one of: 0, 90, 180, 270")
	ErrInvalidScale  = errors.New("scale factors must be positive integers")
	ErrInvalidMargin = errors.New("margin must be a non-negative integer")
)
