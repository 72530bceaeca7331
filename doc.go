// Package brandkit renders the ShiftCrew logo to PNG files.
//
// # Overview
//
// The logo is pure typography: the "ShiftCrew" wordmark in a bold serif
// face above the letter-spaced tagline "B U I L T   B Y ...", centered on a
// solid background. brandkit draws it with the gg 2D graphics library,
// crops the result to the text plus a small margin and writes a PNG tagged
// with its resolution.
//
// # Quick Start
//
//	r, err := brandkit.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	err = r.RenderFile(ctx, brandkit.Request{
//	    Background: "white",
//	    Foreground: "#22c55e",
//	    Path:       "ShiftCrew_Primary.png",
//	})
//
// # Layout
//
// A Layout is a figure size in inches, a DPI, a padding and a list of
// Elements. Each Element is a line of text centered on a point given as a
// fraction of the figure, with Y growing upward. DefaultLayout is an 8x4 in
// figure at 300 DPI, giving a 2400x1200 canvas before cropping.
//
// # Fonts
//
// Elements ask for a generic Family (serif, sans-serif, monospace) and a
// Weight. The FontResolver looks for well-known font files in the system
// font directories. If none is installed it falls back to an embedded Go
// font and logs a warning, so rendering never fails for lack of a font.
// Set Element.FontFile to use an exact typeface.
//
// # Colors
//
// Colors are CSS/X11 names or #rgb / #rrggbb hex values; see ParseColor.
//
// # Output
//
// RenderFile replaces the target atomically and checks that the result
// sniffs as image/png. The parent directory must already exist.
package brandkit
