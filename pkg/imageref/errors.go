package imageref

import (
	"errors"
)

var (
	// ErrInvalidFormat is the error for when a string could not be
	// decomposed into a valid registry/name/tag/digest tuple. Every
	// parse or validation failure returned by this package wraps it, so
	// callers may treat all of them uniformly with errors.Is.
	ErrInvalidFormat = errors.New("invalid reference format")
)
