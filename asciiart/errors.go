package asciiart

import "errors"

var (
	// ErrGradientTooShort is returned when a gradient holds fewer than 2 characters.
	ErrGradientTooShort = errors.New("gradient length must be at least 2")

	// ErrInvalidScale is returned when the size multiplier is not a positive, finite number.
	ErrInvalidScale = errors.New("size multiplier must be a positive number")

	// ErrAcquire wraps failures to read an image from the filesystem or the network.
	ErrAcquire = errors.New("i/o error")

	// ErrDecode wraps failures to decode image bytes.
	ErrDecode = errors.New("unsupported format or corrupted image file")
)
