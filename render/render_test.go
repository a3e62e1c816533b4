package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/snakeladder/anim"
	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/model"
)

func TestLayout(t *testing.T) {
	l := NewLayout(1280, 720)
	require.Equal(t, 60, l.Size)

	// bottom row starts at the left, second row comes back from the right
	assert.Equal(t, image.Rect(60, 600, 120, 660), l.Squares[0])
	assert.Equal(t, image.Rect(600, 600, 660, 660), l.Squares[9])
	assert.Equal(t, image.Rect(600, 540, 660, 600), l.Squares[10])
	assert.Equal(t, image.Rect(60, 60, 120, 120), l.Squares[99])

	assert.Equal(t, image.Rect(720, 60, 960, 120), l.RollButton)
	assert.Equal(t, image.Rect(720, 180, 960, 420), l.PromptBox)
	assert.Equal(t, anim.Point{X: 90, Y: 630}, l.Center(0))
}

func TestLayoutPath(t *testing.T) {
	l := NewLayout(1280, 720)
	assert.Equal(t, []anim.Point{l.Center(8), l.Center(9), l.Center(10)}, l.Path(8, 10))
	assert.Equal(t, []anim.Point{l.Center(3), l.Center(2)}, l.Path(3, 2))
	assert.Equal(t, []anim.Point{l.Center(0)}, l.Path(0, 0))
}

func TestDrawSceneOrder(t *testing.T) {
	b, err := board.NewWithSpecial(map[int]int{96: 77}, map[int]int{1: 37, 3: 13}, []int{50})
	require.NoError(t, err)
	players, err := model.NewPlayers(2)
	require.NoError(t, err)
	players[1].Position = 12

	l := NewLayout(1280, 720)
	rec := &Recorder{}
	DrawScene(rec, l, &Scene{
		Board:   b,
		Players: players,
		Tokens:  []anim.Point{{X: 1, Y: 2}},
		Prompt:  "P1's turn",
		Button:  "Roll",
	})

	ops := rec.Ops()
	require.Equal(t, "fill", ops[0])

	// 100 squares, each an outline and a number
	grid := ops[1 : 1+2*board.Squares]
	for i := 0; i < len(grid); i += 2 {
		assert.Equal(t, []string{"rect", "text"}, grid[i:i+2])
	}
	rest := ops[1+2*board.Squares:]
	// one snake, two ladders, one special square, two tokens, button, prompt last
	assert.Equal(t, []string{
		"line",
		"line", "line",
		"rect",
		"token", "token",
		"panel", "text", "text",
	}, rest)

	lines := rec.Filter("line")
	assert.Equal(t, model.Emerald, lines[0].Color)
	assert.Equal(t, model.PrincetonOrange, lines[1].Color)
	assert.Equal(t, l.Center(1).X, lines[1].X, "ladders drawn in square order")

	tokens := rec.Filter("token")
	assert.Equal(t, 1.0, tokens[0].X, "animated token position wins")
	assert.Equal(t, l.Center(12).X, tokens[1].X)

	texts := rec.Texts()
	assert.Equal(t, "1", texts[0])
	assert.Equal(t, "100", texts[99])
	assert.Equal(t, []string{"Roll", "P1's turn"}, texts[100:])
}
