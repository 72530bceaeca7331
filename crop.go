package brandkit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// inkBounds returns the smallest rectangle holding every pixel of a
// coverage mask (white ink on black) with non-zero coverage. It returns the
// empty rectangle when nothing was drawn.
func inkBounds(mask *image.RGBA) image.Rectangle {
	b := mask.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			i := (x - b.Min.X) * 4
			if row[i] == 0 && row[i+1] == 0 && row[i+2] == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// cropTo copies the part of src inside box onto a new image whose origin
// is box.Min. Any part of box outside src is filled with bg.
func cropTo(src image.Image, box image.Rectangle, bg color.Color) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	inter := box.Intersect(src.Bounds())
	if !inter.Empty() {
		draw.Draw(out, inter.Sub(box.Min), src, inter.Min, draw.Src)
	}
	return out
}
