// Package render draws the board scene through a Surface, so the game logic
// never touches the window directly.
package render

import (
	"image"
	"image/color"
)

// Surface is the drawing collaborator handed to the board scene and to every minigame.
type Surface interface {
	Fill(clr color.Color)
	// DrawRect strokes r with the given line width, or fills it when width is 0.
	DrawRect(r image.Rectangle, clr color.Color, width int)
	DrawLine(x1, y1, x2, y2 float64, clr color.Color, width float64)
	// Text draws s with its top-left corner at x, y.
	Text(s string, clr color.Color, x, y int)
	// Token draws a player token centered at x, y.
	Token(x, y float64, clr color.Color)
	// Panel draws a rounded button or box background.
	Panel(r image.Rectangle, clr color.Color)
}

// Center is the middle of r in float coordinates.
func Center(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

func Rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
