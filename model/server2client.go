package model

import "fmt"

type EventKind int

const (
	EV_ROLLED EventKind = iota + 1
	EV_MOVED
	EV_LANDED
	EV_MINIGAME
	EV_SLID
	EV_REROLL
	EV_TURN
	EV_WON
)

func (k EventKind) Name() string {
	switch k {
	case EV_ROLLED:
		return "ROLLED"
	case EV_MOVED:
		return "MOVED"
	case EV_LANDED:
		return "LANDED"
	case EV_MINIGAME:
		return "MINIGAME"
	case EV_SLID:
		return "SLID"
	case EV_REROLL:
		return "REROLL"
	case EV_TURN:
		return "TURN"
	case EV_WON:
		return "WON"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Event is one observable step of a turn.
type Event struct {
	Kind       EventKind
	Player     int
	From, To   int
	Roll       int
	Square     string
	Minigame   string
	Difficulty Difficulty
	Won        bool
	Prompt     string
}

type ServerMessage struct {
	Setup  []Setup
	Events []Event
}

type Setup struct {
	Snakes  map[int]int
	Ladders map[int]int
	Special []int
	Players []Player
	History []Event
}
