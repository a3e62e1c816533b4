package minigame

import (
	"fmt"
	"image/color"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	SNAKE = "snake"

	SnakeBlock = 40
)

var (
	snakeGreen = color.RGBA{0, 51, 0, 0xff}
	snakeFont  = color.RGBA{51, 90, 45, 0xff}
	snakeBg    = color.RGBA{90, 138, 83, 0xff}
	snakeFood  = color.RGBA{0, 0xff, 0, 0xff}
)

type cell struct {
	Col, Row int
}

func (c cell) add(d cell) cell {
	return cell{c.Col + d.Col, c.Row + d.Row}
}

var (
	still = cell{}
	up    = cell{0, -1}
	down  = cell{0, 1}
	left  = cell{-1, 0}
	right = cell{1, 0}
)

// SnakeGame is the classic: eat enough food without hitting a wall or yourself.
type SnakeGame struct {
	outcome
	env        Env
	cols, rows int
	body       []cell
	length     int
	dir        cell
	moved      cell
	food       cell
	foodLeft   int
	growth     int
	speed      int
	acc        int
}

func NewSnakeGame(d model.Difficulty, env Env) Minigame {
	env = env.ready()
	cols, rows := env.Width/SnakeBlock, env.Height/SnakeBlock
	g := &SnakeGame{
		env:      env,
		cols:     cols,
		rows:     rows,
		body:     []cell{{cols / 2, rows / 2}},
		length:   1,
		foodLeft: model.Pick(d, 8, 7, 6),
		growth:   model.Pick(d, 2, 3, 5),
		speed:    model.Pick(d, 15, 18, 21),
	}
	g.placeFood()
	return g
}

func (g *SnakeGame) Name() string {
	return SNAKE
}

func (g *SnakeGame) head() cell {
	return g.body[len(g.body)-1]
}

func (g *SnakeGame) occupied(c cell) bool {
	for _, b := range g.body {
		if b == c {
			return true
		}
	}
	return false
}

func (g *SnakeGame) placeFood() {
	free := g.cols*g.rows - len(g.body)
	if free <= 0 {
		return
	}
	for {
		c := cell{g.env.Rand.Intn(g.cols), g.env.Rand.Intn(g.rows)}
		if !g.occupied(c) {
			g.food = c
			return
		}
	}
}

// turn changes direction unless it would reverse into the body. The last
// step taken counts, not the last key, since several keys can land between steps.
func (g *SnakeGame) turn(k input.Key) {
	var d cell
	switch k {
	case input.KeyUp:
		d = up
	case input.KeyDown:
		d = down
	case input.KeyLeft:
		d = left
	case input.KeyRight:
		d = right
	default:
		return
	}
	if d.add(g.moved) == still && g.length > 1 {
		return
	}
	g.dir = d
}

func (g *SnakeGame) Update(events []input.Event) {
	if g.ended() {
		return
	}
	for _, e := range events {
		if e.Kind == input.KEY_DOWN {
			g.turn(e.Key)
		}
	}
	// speed is in steps per second
	g.acc += g.speed
	for g.acc >= g.env.FPS && !g.over {
		g.acc -= g.env.FPS
		g.step()
	}
}

func (g *SnakeGame) step() {
	if g.dir == still {
		return
	}
	next := g.head().add(g.dir)
	if next.Col < 0 || next.Row < 0 || next.Col >= g.cols || next.Row >= g.rows {
		g.finish(false, g.env.Ticks(1.5))
		return
	}
	g.body = append(g.body, next)
	g.moved = g.dir
	if len(g.body) > g.length {
		g.body = g.body[1:]
	}
	for _, b := range g.body[:len(g.body)-1] {
		if b == next {
			g.finish(false, g.env.Ticks(1.5))
			return
		}
	}
	if next == g.food {
		g.length += g.growth
		g.foodLeft--
		if g.foodLeft == 0 {
			g.finish(true, g.env.Ticks(1.5))
			return
		}
		g.placeFood()
	}
}

func (g *SnakeGame) Draw(s render.Surface) {
	s.Fill(snakeBg)
	s.DrawRect(render.Rect(g.food.Col*SnakeBlock, g.food.Row*SnakeBlock, SnakeBlock, SnakeBlock), snakeFood, 0)
	for _, b := range g.body {
		s.DrawRect(render.Rect(b.Col*SnakeBlock, b.Row*SnakeBlock, SnakeBlock, SnakeBlock), snakeGreen, 0)
	}
	s.Text(fmt.Sprintf("Food needed to win: %d", g.foodLeft), snakeFont, 0, 0)
	if g.dir == still && !g.over {
		s.Text("Use the arrow keys to move and collect food!", snakeFont, g.env.Width/2, g.env.Height/3)
	}
	g.banner(s, g.env, color.White)
}
