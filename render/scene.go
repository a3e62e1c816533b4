package render

import (
	"sort"
	"strconv"

	"github.com/zucenko/snakeladder/anim"
	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/model"
)

const (
	gridWidth   = 3
	pairWidth   = 4
	markerWidth = 4
	textMargin  = 5
)

// Scene is everything the board screen shows in one frame.
type Scene struct {
	Board   *board.Board
	Players []*model.Player
	// Tokens holds the pixel point of every player, in seat order
	Tokens []anim.Point
	Prompt string
	Button string
}

// DrawScene paints one frame: background, grid, snakes, ladders, special
// squares, tokens, roll button, then the prompt last.
func DrawScene(s Surface, l *Layout, sc *Scene) {
	s.Fill(model.Azure)

	for i, sq := range l.Squares {
		s.DrawRect(sq, model.RichBlack, gridWidth)
		s.Text(strconv.Itoa(i+1), model.RichBlack, sq.Min.X+textMargin, sq.Min.Y+textMargin)
	}

	for _, head := range sortedKeys(sc.Board.Snakes) {
		drawPair(s, l, head, sc.Board.Snakes[head], model.Emerald)
	}
	for _, bottom := range sortedKeys(sc.Board.Ladders) {
		drawPair(s, l, bottom, sc.Board.Ladders[bottom], model.PrincetonOrange)
	}
	for _, pos := range sc.Board.SpecialSquares() {
		s.DrawRect(l.Squares[pos], model.RedCrayola, markerWidth)
	}

	for i, p := range sc.Players {
		at := l.Center(p.Position)
		if i < len(sc.Tokens) {
			at = sc.Tokens[i]
		}
		s.Token(at.X, at.Y, p.Color)
	}

	s.Panel(l.RollButton, model.RedCrayola)
	x, y := Center(l.RollButton)
	s.Text(sc.Button, model.Azure, int(x), int(y))
	s.Text(sc.Prompt, model.RichBlack, l.PromptBox.Min.X, l.PromptBox.Min.Y)
}

func drawPair(s Surface, l *Layout, from, to int, clr model.GameColor) {
	a, b := l.Center(from), l.Center(to)
	s.DrawLine(a.X, a.Y, b.X, b.Y, clr, pairWidth)
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
