package minigame

import (
	"image"
	"image/color"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	SIMON = "simon"

	simonSize  = 100
	simonGap   = 10
	simonStart = 40
)

var (
	simonPink  = color.RGBA{150, 0, 150, 0xff}
	simonDark  = color.RGBA{0, 0, 0, 0xff}
	simonGood  = color.RGBA{0, 0, 0xff, 0xff}
	simonBad   = color.RGBA{0xff, 0, 0, 0xff}
	simonPlayB = color.RGBA{0, 200, 220, 0xff}
)

type simonPhase int

const (
	SIMON_START simonPhase = iota + 1
	SIMON_PREVIEW
	SIMON_FLASH
	SIMON_INPUT
)

// SimonSays flashes squares one after the other; they must be clicked back in order.
type SimonSays struct {
	outcome
	env      Env
	phase    simonPhase
	rects    []image.Rectangle
	sequence []int
	flashing int
	timer    int
	cur      int
	lit      int
	litColor color.Color
	litTimer int
	play     image.Rectangle
}

func NewSimonSays(d model.Difficulty, env Env) Minigame {
	env = env.ready()
	grid := model.Pick(d, 3, 4, 5)
	k := model.Pick(d, 3, 4, 5)
	rects := make([]image.Rectangle, 0, grid*grid)
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			x := simonStart + i*(simonSize+simonGap)
			y := simonStart + j*(simonSize+simonGap)
			rects = append(rects, render.Rect(x, y, simonSize, simonSize))
		}
	}
	return &SimonSays{
		env:      env,
		phase:    SIMON_START,
		rects:    rects,
		sequence: env.Rand.Perm(len(rects))[:k],
		lit:      -1,
		play:     render.Rect(150, 225, 250, 100),
	}
}

func (g *SimonSays) Name() string {
	return SIMON
}

func (g *SimonSays) rectAt(p image.Point) (int, bool) {
	for i, r := range g.rects {
		if p.In(r) {
			return i, true
		}
	}
	return 0, false
}

func (g *SimonSays) Update(events []input.Event) {
	if g.litTimer > 0 {
		g.litTimer--
		if g.litTimer == 0 {
			g.lit = -1
		}
	}
	if g.ended() {
		return
	}
	switch g.phase {
	case SIMON_START:
		if input.ClickedIn(events, g.play) {
			g.phase = SIMON_PREVIEW
			g.timer = g.env.Ticks(3)
		}
	case SIMON_PREVIEW:
		g.timer--
		if g.timer <= 0 {
			g.phase = SIMON_FLASH
			g.flashing = 0
			g.timer = g.env.Ticks(1)
		}
	case SIMON_FLASH:
		g.timer--
		if g.timer <= 0 {
			g.flashing++
			g.timer = g.env.Ticks(1)
			if g.flashing == len(g.sequence) {
				g.phase = SIMON_INPUT
			}
		}
	case SIMON_INPUT:
		for _, e := range events {
			if e.Kind != input.MOUSE_DOWN {
				continue
			}
			i, ok := g.rectAt(e.Point())
			if !ok {
				continue
			}
			if i != g.sequence[g.cur] {
				g.light(i, simonBad, 0.5)
				g.finish(false, g.env.Ticks(0.5))
				return
			}
			g.light(i, simonGood, 0.2)
			g.cur++
			if g.cur == len(g.sequence) {
				g.finish(true, g.env.Ticks(0.5))
				return
			}
		}
	}
}

func (g *SimonSays) light(i int, clr color.Color, seconds float64) {
	g.lit = i
	g.litColor = clr
	g.litTimer = g.env.Ticks(seconds)
}

func (g *SimonSays) Draw(s render.Surface) {
	s.Fill(color.White)
	if g.phase == SIMON_START {
		s.Text("Welcome to Simon Says! You have to click the buttons in the", color.Black, 80, 90)
		s.Text("order they appear on the screen! Are you ready?", color.Black, 80, 115)
		s.DrawRect(g.play.Inset(-2), color.Black, 0)
		s.DrawRect(g.play, simonPlayB, 0)
		x, y := render.Center(g.play)
		s.Text("Play game", color.Black, int(x), int(y))
		return
	}
	for i, r := range g.rects {
		clr := color.Color(simonPink)
		switch {
		case i == g.lit:
			clr = g.litColor
		case g.phase == SIMON_FLASH && i == g.sequence[g.flashing]:
			clr = simonDark
		}
		s.DrawRect(r, clr, 0)
	}
	g.banner(s, g.env, color.Black)
}
