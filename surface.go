package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/snakeladder/render"
)

const (
	fontSize    = 16
	tokenSize   = 28
	panelCorner = 10
)

// Surface draws on the ebiten screen of the current frame.
type Surface struct {
	Target *ebiten.Image
	Face   font.Face
	pixel  *ebiten.Image
	token  *ebiten.Image
	panel  *Nine
}

var _ render.Surface = (*Surface)(nil)

func NewSurface() (*Surface, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    fontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	pixel, err := ebiten.NewImage(1, 1, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := pixel.Fill(color.White); err != nil {
		return nil, err
	}
	token, err := ebiten.NewImageFromImage(render.TokenSprite(tokenSize), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	panel, err := ebiten.NewImageFromImage(render.PanelSprite(panelCorner), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Surface{
		Face:  face,
		pixel: pixel,
		token: token,
		panel: NewNine(panel, panelCorner),
	}, nil
}

func colorScale(clr color.Color) (r, g, b, a float64) {
	cr, cg, cb, ca := clr.RGBA()
	return float64(cr) / 0xffff, float64(cg) / 0xffff, float64(cb) / 0xffff, float64(ca) / 0xffff
}

func (s *Surface) Fill(clr color.Color) {
	if err := s.Target.Fill(clr); err != nil {
		log.Warnf("Surface.Fill %v", err)
	}
}

func (s *Surface) DrawRect(r image.Rectangle, clr color.Color, width int) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	if width <= 0 {
		ebitenutil.DrawRect(s.Target, x, y, w, h, clr)
		return
	}
	t := float64(width)
	ebitenutil.DrawRect(s.Target, x, y, w, t, clr)
	ebitenutil.DrawRect(s.Target, x, y+h-t, w, t, clr)
	ebitenutil.DrawRect(s.Target, x, y, t, h, clr)
	ebitenutil.DrawRect(s.Target, x+w-t, y, t, h, clr)
}

// DrawLine stretches a white pixel along the segment so lines get a width.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, clr color.Color, width float64) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, width)
	op.GeoM.Translate(0, -width/2)
	op.GeoM.Rotate(math.Atan2(y2-y1, x2-x1))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(colorScale(clr))
	s.Target.DrawImage(s.pixel, op)
}

func (s *Surface) Text(str string, clr color.Color, x, y int) {
	m := s.Face.Metrics()
	line := m.Height.Ceil()
	for i, l := range strings.Split(str, "\n") {
		text.Draw(s.Target, l, s.Face, x, y+m.Ascent.Ceil()+i*line, clr)
	}
}

func (s *Surface) Token(x, y float64, clr color.Color) {
	r, g, b, _ := colorScale(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-tokenSize/2, y-tokenSize/2)
	op.ColorM.Scale(r, g, b, 1)
	s.Target.DrawImage(s.token, op)
}

func (s *Surface) Panel(r image.Rectangle, clr color.Color) {
	s.panel.Place(r)
	s.panel.Draw(s.Target, clr)
}
