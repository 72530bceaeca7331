package brandkit

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// Request asks for one logo file: a background color, a text color and
// an output path. Colors use ParseColor syntax.
type Request struct {
	Background string
	Foreground string
	Path       string
}

// Renderer draws a Layout and writes it out as cropped PNG files.
//
// Each call draws on canvases it owns and releases them before returning.
// The only state shared between calls is the font cache.
type Renderer struct {
	layout Layout
	fonts  *FontResolver
}

// NewRenderer returns a Renderer for the ShiftCrew layout unless
// WithLayout says otherwise.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := o.layout
	l.Elements = append([]Element(nil), l.Elements...)
	if o.dpi != 0 {
		l.DPI = o.dpi
	}
	if o.pad != nil {
		l.Pad = *o.pad
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		layout: l,
		fonts:  NewFontResolver(o.fontDirs),
	}, nil
}

// Layout returns the layout the renderer draws.
func (r *Renderer) Layout() Layout {
	l := r.layout
	l.Elements = append([]Element(nil), l.Elements...)
	return l
}

// Close releases the fonts loaded by the renderer.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

// RenderFile renders req and writes the PNG to req.Path, overwriting any
// existing file.
func (r *Renderer) RenderFile(ctx context.Context, req Request) error {
	if req.Path == "" {
		return ErrEmptyPath
	}
	bg, err := ParseColor(req.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := ParseColor(req.Foreground)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}

	img, err := r.Render(ctx, bg, fg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := WriteFile(req.Path, img, r.layout.DPI); err != nil {
		return err
	}

	b := img.Bounds()
	Logger().Info("logo written", "path", req.Path, "width", b.Dx(), "height", b.Dy())
	return nil
}

// Render draws the layout with the given colors and returns the image
// cropped to the drawn text plus the layout's padding.
//
// The crop box comes from a separate white-on-black coverage pass, so it
// depends only on the layout and fonts. Renders that differ only in color
// have the same size and text placement.
func (r *Renderer) Render(ctx context.Context, bg, fg color.Color) (*image.RGBA, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	faces, err := r.faces()
	if err != nil {
		return nil, err
	}

	mask := r.paint(faces, gg.Black, gg.White)
	box := inkBounds(mask)
	if box.Empty() {
		return nil, ErrNoInk
	}
	pad := r.layout.PadPixels()
	box = box.Inset(-pad)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	art := r.paint(faces, toRGBA(bg), toRGBA(fg))
	out := cropTo(art, box, bg)

	Logger().Debug("logo rendered",
		"canvas", mask.Bounds().Size().String(),
		"crop", box.String(),
		"elapsed", time.Since(start))
	return out, nil
}

// faces resolves one face per element, sized for the layout's DPI.
func (r *Renderer) faces() ([]text.Face, error) {
	faces := make([]text.Face, len(r.layout.Elements))
	for i, e := range r.layout.Elements {
		face, err := r.fonts.Face(e, r.layout.pixels(e.Size))
		if err != nil {
			return nil, fmt.Errorf("element %d (%q): %w", i, e.Text, err)
		}
		faces[i] = face
	}
	return faces, nil
}

// paint draws every element on a full-size canvas filled with bg.
func (r *Renderer) paint(faces []text.Face, bg, fg gg.RGBA) *image.RGBA {
	w, h := r.layout.PixelSize()
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(bg)
	dc.SetRGBA(fg.R, fg.G, fg.B, fg.A)

	for i, e := range r.layout.Elements {
		face := faces[i]
		dc.SetFont(face)

		// Center horizontally on the advance width and vertically on the
		// midpoint between ascent and descent.
		tw, _ := dc.MeasureString(e.Text)
		m := face.Metrics()
		cx := e.X * float64(w)
		cy := (1 - e.Y) * float64(h)
		dc.DrawString(e.Text, cx-tw/2, cy+(m.Ascent-m.Descent)/2)
	}

	return asRGBA(dc.Image())
}

func asRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
