package life

import "errors"

var (
	// ErrZeroDimension is returned when a grid is constructed with a
	// non-positive width or height.
	ErrZeroDimension = errors.New("life: width and height must be positive")
	// ErrStateSize is returned when an injected state does not hold exactly
	// width*height cells.
	ErrStateSize = errors.New("life: state size does not match width*height")
	// ErrCellValue is returned when an injected state holds a value other
	// than 0 or 1.
	ErrCellValue = errors.New("life: cell values must be 0 or 1")
	// ErrUnknownPattern is returned when a named starting pattern does not exist.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
