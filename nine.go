package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a sprite over a rectangle keeping its corners intact.
// positions are the source cut lines: outer min, inner min, inner max, outer max.
type Nine struct {
	image     *ebiten.Image
	positions [4][2]int
	target    [4][2]float64
}

func NewNine(img *ebiten.Image, corner int) *Nine {
	w, h := img.Size()
	return &Nine{
		image:     img,
		positions: [4][2]int{{0, 0}, {corner, corner}, {w - corner, h - corner}, {w, h}},
	}
}

// Place computes the target cut lines for r, shrinking corners that would overlap.
func (n *Nine) Place(r image.Rectangle) {
	cx := min(n.positions[1][0]-n.positions[0][0], r.Dx()/2)
	cy := min(n.positions[1][1]-n.positions[0][1], r.Dy()/2)
	n.target[0] = [2]float64{float64(r.Min.X), float64(r.Min.Y)}
	n.target[1] = [2]float64{float64(r.Min.X + cx), float64(r.Min.Y + cy)}
	n.target[2] = [2]float64{float64(r.Max.X - cx), float64(r.Max.Y - cy)}
	n.target[3] = [2]float64{float64(r.Max.X), float64(r.Max.Y)}
}

func (n *Nine) Draw(screen *ebiten.Image, clr color.Color) {
	cr, cg, cb, ca := colorScale(clr)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			w := n.target[col+1][0] - n.target[col][0]
			h := n.target[row+1][1] - n.target[row][1]
			if w <= 0 || h <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
			op.GeoM.Translate(n.target[col][0], n.target[row][1])
			op.ColorM.Scale(cr, cg, cb, ca)
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
