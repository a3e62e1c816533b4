package render

import (
	"image"

	"github.com/zucenko/snakeladder/anim"
	"github.com/zucenko/snakeladder/board"
)

// Layout places the 100 squares and the controls on a w by h window.
type Layout struct {
	Size          int
	Width, Height int
	Squares       [board.Squares]image.Rectangle
	RollButton    image.Rectangle
	PromptBox     image.Rectangle
}

func NewLayout(w, h int) *Layout {
	s := h / 12
	l := &Layout{
		Size:       s,
		Width:      w,
		Height:     h,
		RollButton: Rect(s*12, s*1, s*4, s),
		PromptBox:  Rect(s*12, s*3, s*4, s*4),
	}
	for pos := range l.Squares {
		row, col := board.CoordinateOf(pos)
		l.Squares[pos] = Rect(s+col*s, h-2*s-row*s, s, s)
	}
	return l
}

// Center is the pixel point a token rests on at pos.
func (l *Layout) Center(pos int) anim.Point {
	x, y := Center(l.Squares[pos])
	return anim.Point{X: x, Y: y}
}

// Path lists the square centers walked from one position to another, both included.
func (l *Layout) Path(from, to int) []anim.Point {
	step := 1
	if to < from {
		step = -1
	}
	points := make([]anim.Point, 0)
	for pos := from; ; pos += step {
		points = append(points, l.Center(pos))
		if pos == to {
			break
		}
	}
	return points
}
