package brandkit

import (
	"fmt"
	"math"
	"strings"
)

// Family is a generic font family. Concrete fonts are picked by the
// FontResolver from whatever is installed.
type Family string

// Generic font families.
const (
	Serif     Family = "serif"
	SansSerif Family = "sans-serif"
	Monospace Family = "monospace"
)

// ParseFamily parses a family name. "sans" is accepted for SansSerif.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serif":
		return Serif, nil
	case "sans-serif", "sans":
		return SansSerif, nil
	case "monospace", "mono":
		return Monospace, nil
	}
	return "", fmt.Errorf("%w: unknown font family %q", ErrInvalidLayout, s)
}

// Weight is a font weight.
type Weight int

// Font weights.
const (
	Regular Weight = iota
	Bold
)

// String implements fmt.Stringer.
func (w Weight) String() string {
	switch w {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// ParseWeight parses "regular" (or "normal") and "bold".
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "normal", "":
		return Regular, nil
	case "bold":
		return Bold, nil
	}
	return Regular, fmt.Errorf("%w: unknown font weight %q", ErrInvalidLayout, s)
}

// Element is one centered line of text.
type Element struct {
	Text   string
	Size   float64 // points
	Family Family
	Weight Weight

	// X and Y position the element's center as fractions of the figure.
	// Y grows upward, so 0.6 is above the middle.
	X, Y float64

	// FontFile, if set, is loaded instead of searching for Family.
	FontFile string
}

// Layout describes the logo figure.
type Layout struct {
	Width, Height float64 // inches
	DPI           float64
	Pad           float64 // inches of background kept around the content
	Elements      []Element
}

// Default figure geometry.
const (
	DefaultWidth  = 8.0
	DefaultHeight = 4.0
	DefaultDPI    = 300.0
	DefaultPad    = 0.1
)

// MaxCanvasPixels bounds the full canvas before cropping. Each render keeps
// two RGBA canvases of this size alive, so the limit is about 2 GB.
const MaxCanvasPixels = 1 << 28

// Wordmark is the brand name drawn as the title.
const Wordmark = "ShiftCrew"

// DefaultLayout returns the ShiftCrew logo: the wordmark in 60pt bold
// serif above the letter-spaced tagline in 12pt sans-serif.
func DefaultLayout() Layout {
	return Layout{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		DPI:    DefaultDPI,
		Pad:    DefaultPad,
		Elements: []Element{
			{Text: Wordmark, Size: 60, Family: Serif, Weight: Bold, X: 0.5, Y: 0.6},
			{Text: LetterSpace(Tagline), Size: 12, Family: SansSerif, Weight: Regular, X: 0.5, Y: 0.4},
		},
	}
}

// Validate reports whether the layout can be rendered.
func (l Layout) Validate() error {
	if !(l.Width > 0) || !(l.Height > 0) {
		return fmt.Errorf("%w: figure size %gx%g in", ErrInvalidLayout, l.Width, l.Height)
	}
	if !(l.DPI > 0) {
		return fmt.Errorf("%w: dpi %g", ErrInvalidLayout, l.DPI)
	}
	if l.Pad < 0 {
		return fmt.Errorf("%w: negative padding %g", ErrInvalidLayout, l.Pad)
	}
	if px := l.Width * l.DPI * l.Height * l.DPI; px > MaxCanvasPixels {
		return fmt.Errorf("%w: canvas of %.0f px exceeds %d", ErrInvalidLayout, px, MaxCanvasPixels)
	}
	if w, h := l.PixelSize(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: canvas %dx%d px", ErrInvalidLayout, w, h)
	}
	if len(l.Elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidLayout)
	}
	for i, e := range l.Elements {
		if !(e.Size > 0) {
			return fmt.Errorf("%w: element %d: font size %g", ErrInvalidLayout, i, e.Size)
		}
		if _, err := ParseFamily(string(e.Family)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if e.Weight != Regular && e.Weight != Bold {
			return fmt.Errorf("%w: element %d: weight %v", ErrInvalidLayout, i, e.Weight)
		}
	}
	return nil
}

// PixelSize returns the canvas size in pixels.
func (l Layout) PixelSize() (w, h int) {
	return int(math.Round(l.Width * l.DPI)), int(math.Round(l.Height * l.DPI))
}

// PadPixels returns the crop padding in pixels.
func (l Layout) PadPixels() int {
	return int(math.Round(l.Pad * l.DPI))
}

// pixels converts a point size to pixels at the layout's DPI.
func (l Layout) pixels(points float64) float64 {
	return points * l.DPI / 72
}
