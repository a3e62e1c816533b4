package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

const outline = 2

// TokenSprite is a white disc with a dark rim, tinted per player when drawn.
func TokenSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(outline)
	r := float64(size) / 2
	draw2dkit.Circle(gc, r, r, r-outline)
	gc.FillStroke()
	return img
}

// PanelSprite is a white rounded square meant to be cut as a nine-patch:
// corners of size corner stay fixed, the middle stretches.
func PanelSprite(corner int) *image.RGBA {
	size := corner*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	arc := float64(corner) * 2
	draw2dkit.RoundedRectangle(gc, 0, 0, float64(size), float64(size), arc, arc)
	gc.Fill()
	return img
}
