// Package input holds the per-frame event queue shared by the board and the minigames.
package input

import (
	"errors"
	"fmt"
	"image"
)

// ErrQuit is returned from a frame update when the player asked to leave.
var ErrQuit = errors.New("quit requested")

type Kind int

const (
	QUIT Kind = iota + 1
	KEY_DOWN
	MOUSE_DOWN
)

func (k Kind) Name() string {
	switch k {
	case QUIT:
		return "QUIT"
	case KEY_DOWN:
		return "KEY_DOWN"
	case MOUSE_DOWN:
		return "MOUSE_DOWN"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyBackspace
	KeyEscape
	KeySpace
)

// Event is one polled input. KEY_DOWN carries Key and, for printable keys, Char;
// MOUSE_DOWN carries the cursor position.
type Event struct {
	Kind Kind
	Key  Key
	Char rune
	X, Y int
}

func Quit() Event {
	return Event{Kind: QUIT}
}

func Click(x, y int) Event {
	return Event{Kind: MOUSE_DOWN, X: x, Y: y}
}

func Press(k Key) Event {
	return Event{Kind: KEY_DOWN, Key: k}
}

func Type(r rune) Event {
	return Event{Kind: KEY_DOWN, Key: KeyOther, Char: r}
}

// Text turns a string into one typed event per rune.
func Text(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, Type(r))
	}
	return events
}

func (e Event) Point() image.Point {
	return image.Pt(e.X, e.Y)
}

// ClickedIn reports whether any MOUSE_DOWN falls inside r.
func ClickedIn(events []Event, r image.Rectangle) bool {
	for _, e := range events {
		if e.Kind == MOUSE_DOWN && e.Point().In(r) {
			return true
		}
	}
	return false
}

func HasQuit(events []Event) bool {
	for _, e := range events {
		if e.Kind == QUIT {
			return true
		}
	}
	return false
}

// AnyKey reports whether a key went down this frame.
func AnyKey(events []Event) bool {
	for _, e := range events {
		if e.Kind == KEY_DOWN {
			return true
		}
	}
	return false
}
