package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/zucenko/snakeladder/input"
)

// PointSource is an input device that can press on the screen.
type PointSource interface {
	Position() (int, int)
	IsJustPressed() bool
}

// MouseSource is a PointSource implementation of mouse.
type MouseSource struct{}

func (m *MouseSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseSource) IsJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// TouchSource is a PointSource implementation of touch.
type TouchSource struct {
	ID int
}

func (t *TouchSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchSource) IsJustPressed() bool {
	return inpututil.TouchPressDuration(t.ID) == 1
}

var keys = []struct {
	from ebiten.Key
	to   input.Key
}{
	{ebiten.KeyLeft, input.KeyLeft},
	{ebiten.KeyRight, input.KeyRight},
	{ebiten.KeyUp, input.KeyUp},
	{ebiten.KeyDown, input.KeyDown},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyBackspace, input.KeyBackspace},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeySpace, input.KeySpace},
}

// Poller collects the frame's input as input.Events.
type Poller struct {
	mouse *MouseSource
}

func NewPoller() *Poller {
	return &Poller{mouse: &MouseSource{}}
}

func (p *Poller) Poll() []input.Event {
	events := make([]input.Event, 0)

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return append(events, input.Quit())
	}

	sources := []PointSource{p.mouse}
	for _, id := range inpututil.JustPressedTouchIDs() {
		sources = append(sources, &TouchSource{ID: id})
	}
	for _, s := range sources {
		if s.IsJustPressed() {
			events = append(events, input.Click(s.Position()))
		}
	}

	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.from) {
			ev := input.Press(k.to)
			if k.to == input.KeySpace {
				ev.Char = ' '
			}
			events = append(events, ev)
		}
	}
	for _, r := range ebiten.InputChars() {
		if r != ' ' {
			events = append(events, input.Type(r))
		}
	}
	return events
}
