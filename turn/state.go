package turn

import "fmt"

type State int

const (
	AWAITING_ROLL State = iota + 1
	MOVING
	RESOLVING
	AWAITING_MINIGAME
	PLAYING_MINIGAME
	SLIDING
	GAME_OVER
)

func (s State) Name() string {
	switch s {
	case AWAITING_ROLL:
		return "AWAITING_ROLL"
	case MOVING:
		return "MOVING"
	case RESOLVING:
		return "RESOLVING"
	case AWAITING_MINIGAME:
		return "AWAITING_MINIGAME"
	case PLAYING_MINIGAME:
		return "PLAYING_MINIGAME"
	case SLIDING:
		return "SLIDING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}
