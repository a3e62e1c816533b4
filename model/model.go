package model

import "fmt"

const (
	MinPlayers = 2
	MaxPlayers = 4
	// Last is the final square, reaching it wins the game.
	Last = 99
)

type GameColor struct {
	R, G, B float64
	Id      int
}

// RGBA returns the color as 8 bit channels, used by surfaces that want image/color.
func (c GameColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*0xff) * 0x101
	g = uint32(c.G*0xff) * 0x101
	b = uint32(c.B*0xff) * 0x101
	return r, g, b, 0xffff
}

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

var (
	RichBlack       = HexToF32(0x011627, 0)
	RedCrayola      = HexToF32(0xef2d56, 1)
	PrincetonOrange = HexToF32(0xed7d3a, 2)
	Azure           = HexToF32(0xe6fafc, 3)
	Mantis          = HexToF32(0x8cd867, 4)
	Emerald         = HexToF32(0x2fbf71, 5)
)

// COLORS are the token tints handed out to players in seat order.
var COLORS = []GameColor{
	HexToF32(0xfa3636, 11),
	HexToF32(0x321ecc, 12),
	HexToF32(0x0abd38, 13),
	HexToF32(0xcb18dd, 14),
}

type Player struct {
	Id       int
	Position int
	Color    GameColor
}

// Name is the label used in prompts, P1 for the first seat.
func (p *Player) Name() string {
	return fmt.Sprintf("P%d", p.Id+1)
}

type Difficulty int

const (
	EASY Difficulty = iota + 1
	MEDIUM
	HARD
)

func (d Difficulty) Name() string {
	switch d {
	case EASY:
		return "easy"
	case MEDIUM:
		return "medium"
	case HARD:
		return "hard"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (d Difficulty) String() string {
	return d.Name()
}

// DifficultyFor maps a board position to its minigame tier.
func DifficultyFor(pos int) Difficulty {
	switch {
	case pos < 33:
		return EASY
	case pos < 66:
		return MEDIUM
	default:
		return HARD
	}
}

// Pick returns one of three values by tier, the shape every minigame uses for its knobs.
func Pick[T any](d Difficulty, easy, medium, hard T) T {
	switch d {
	case EASY:
		return easy
	case MEDIUM:
		return medium
	default:
		return hard
	}
}
