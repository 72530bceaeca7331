package brandkit

import (
	"errors"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var errUnknownColor = errors.New("not a color name or #rgb/#rrggbb hex value")

// ParseColor parses a color the way brand assets write them: a CSS/X11
// color name ("white", "DarkSlateGray") or a hex triplet ("#22c55e", "#fff").
// The result is always opaque.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return color.NRGBA{}, &ColorError{Value: s, Err: errUnknownColor}
	}

	if strings.HasPrefix(v, "#") {
		if (len(v) != 4 && len(v) != 7) || !isHex(v[1:]) {
			return color.NRGBA{}, &ColorError{Value: s, Err: errUnknownColor}
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return color.NRGBA{}, &ColorError{Value: s, Err: err}
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	named, ok := colornames.Map[v]
	if !ok {
		return color.NRGBA{}, &ColorError{Value: s, Err: errUnknownColor}
	}
	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 0xff}, nil
}

// MustParseColor is like ParseColor but panics on error.
// It is meant for package-level literals.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toRGBA converts a color to gg's float representation without
// premultiplying.
func toRGBA(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		default:
			return false
		}
	}
	return true
}
