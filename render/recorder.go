package render

import (
	"fmt"
	"image"
	"image/color"
)

// Call is one recorded Surface operation.
type Call struct {
	Op    string
	Rect  image.Rectangle
	Color color.Color
	Text  string
	X, Y  float64
	X2    float64
	Y2    float64
	Width float64
}

func (c Call) String() string {
	switch c.Op {
	case "text":
		return fmt.Sprintf("text(%q)", c.Text)
	case "rect", "panel":
		return fmt.Sprintf("%s(%v)", c.Op, c.Rect)
	default:
		return fmt.Sprintf("%s(%.0f,%.0f)", c.Op, c.X, c.Y)
	}
}

var _ Surface = (*Recorder)(nil)

// Recorder is a Surface that keeps every call, for headless tests.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Fill(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill", Color: clr})
}

func (r *Recorder) DrawRect(rect image.Rectangle, clr color.Color, width int) {
	r.Calls = append(r.Calls, Call{Op: "rect", Rect: rect, Color: clr, Width: float64(width)})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, clr color.Color, width float64) {
	r.Calls = append(r.Calls, Call{Op: "line", X: x1, Y: y1, X2: x2, Y2: y2, Color: clr, Width: width})
}

func (r *Recorder) Text(s string, clr color.Color, x, y int) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: s, Color: clr, X: float64(x), Y: float64(y)})
}

func (r *Recorder) Token(x, y float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "token", X: x, Y: y, Color: clr})
}

func (r *Recorder) Panel(rect image.Rectangle, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "panel", Rect: rect, Color: clr})
}

// Ops lists the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// Texts lists every drawn string in call order.
func (r *Recorder) Texts() []string {
	texts := make([]string, 0)
	for _, c := range r.Calls {
		if c.Op == "text" {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

// Filter keeps the calls of one operation.
func (r *Recorder) Filter(op string) []Call {
	calls := make([]Call, 0)
	for _, c := range r.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}
