package brandkit

import (
	"errors"
	"strconv"
)

// Sentinel errors for brandkit.
var (
	// ErrInvalidLayout is returned when a Layout fails validation.
	ErrInvalidLayout = errors.New("brandkit: invalid layout")

	// ErrNoInk is returned when a layout draws nothing visible, so there is
	// no content to crop to.
	ErrNoInk = errors.New("brandkit: layout produced no visible content")

	// ErrNotPNG is returned when a written file does not sniff as image/png.
	ErrNotPNG = errors.New("brandkit: output is not a PNG image")

	// ErrEmptyPath is returned when a Request has no output path.
	ErrEmptyPath = errors.New("brandkit: empty output path")
)

// ColorError is returned when a color string cannot be parsed.
type ColorError struct {
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	if e.Err != nil {
		return "brandkit: invalid color " + strconv.Quote(e.Value) + ": " + e.Err.Error()
	}
	return "brandkit: invalid color " + strconv.Quote(e.Value)
}

func (e *ColorError) Unwrap() error { return e.Err }

// FontError is returned when an explicitly requested font file cannot be
// loaded.
type FontError struct {
	Path string
	Err  error
}

func (e *FontError) Error() string {
	return "brandkit: load font " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }
