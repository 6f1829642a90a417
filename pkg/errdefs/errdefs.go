// Package errdefs defines shared error sentinels and operations to wrap
// them.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupported indicates that the requested action or value is
	// not supported.
	ErrUnsupported = errors.New("unsupported")
)

// Newf wraps the base error and a formatted error created by
// fmt.Errorf, returns the error joined.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE wraps the base error and the input error, returns the error
// joined.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}
