// Package naverrors defines the error taxonomy shared by the navigation
// stack: grid/position range errors, I/O and parse failures from map and
// config loaders, and a catch-all for external capability failures.
package naverrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel kinds usable with errors.Is.
var (
	// ErrOutOfRangeGrid marks a cell lookup or mutation off the map.
	ErrOutOfRangeGrid = errors.New("out of range grid")
	// ErrOutOfRangePosition marks a world-to-grid conversion off the map.
	ErrOutOfRangePosition = errors.New("out of range position")
	// ErrIO marks a failure reading a map, image, or config source.
	ErrIO = errors.New("io error")
	// ErrParse marks malformed configuration text.
	ErrParse = errors.New("parse error")
)

// GridError reports that a Grid coordinate fell outside a map's extent.
type GridError struct {
	X, Y uint
}

func (e *GridError) Error() string {
	return fmt.Sprintf("out of range grid: (%d, %d)", e.X, e.Y)
}

// Unwrap lets errors.Is(err, ErrOutOfRangeGrid) succeed.
func (e *GridError) Unwrap() error { return ErrOutOfRangeGrid }

// OutOfRangeGrid builds the error raised when a grid coordinate is off-map.
func OutOfRangeGrid(x, y uint) error {
	return &GridError{X: x, Y: y}
}

// PositionError reports that a world-frame position fell outside a map's extent.
type PositionError struct {
	X, Y float64
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("out of range position: (%g, %g)", e.X, e.Y)
}

// Unwrap lets errors.Is(err, ErrOutOfRangePosition) succeed.
func (e *PositionError) Unwrap() error { return ErrOutOfRangePosition }

// OutOfRangePosition builds the error raised when a world position is off-map.
func OutOfRangePosition(x, y float64) error {
	return &PositionError{X: x, Y: y}
}

// IO wraps an underlying error from a map/image/config loader.
func IO(cause error) error {
	return fmt.Errorf("%w: %w", ErrIO, cause)
}

// Parse builds a parse failure carrying a human-readable message.
func Parse(msg string) error {
	return errors.Wrap(ErrParse, msg)
}

// Parsef is Parse with fmt-style formatting.
func Parsef(format string, args ...interface{}) error {
	return Parse(fmt.Sprintf(format, args...))
}

// Other is the catch-all for capability failures (localization, base drivers)
// that don't fit the other kinds.
func Other(msg string) error {
	return errors.New(msg)
}

// Otherf is Other with fmt-style formatting.
func Otherf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
