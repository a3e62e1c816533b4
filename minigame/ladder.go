package minigame

import (
	"fmt"
	"image"
	"image/color"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	LADDER = "ladder"

	lanes        = 3
	ladderWidth  = 150
	ladderHeight = 600
	rungGap      = 50
	climberW     = 100
	climberH     = 40
)

type rock struct {
	lane int
	y    float64
}

// LadderClimb has rocks falling down three ladders; switch ladders to dodge them until time runs out.
type LadderClimb struct {
	outcome
	env        Env
	ladders    [lanes]image.Rectangle
	lane       int
	rocks      []rock
	ticks      int
	survive    int
	spawnEvery int
	speed      float64
}

func NewLadderClimb(d model.Difficulty, env Env) Minigame {
	env = env.ready()
	cx, cy := env.Width/2, env.Height/2
	hw, hh := ladderWidth/2, ladderHeight/2
	g := &LadderClimb{
		env:        env,
		lane:       1,
		survive:    env.Ticks(model.Pick(d, 10.0, 12.0, 15.0)),
		spawnEvery: max(env.Ticks(model.Pick(d, 1.0, 0.8, 0.6)), 1),
		// pixels per tick
		speed: model.Pick(d, 240.0, 300.0, 360.0) / float64(env.FPS),
	}
	for i := range g.ladders {
		g.ladders[i] = render.Rect(cx+(2*i-3)*hw, cy-hh, ladderWidth, ladderHeight)
	}
	return g
}

func (g *LadderClimb) Name() string {
	return LADDER
}

func (g *LadderClimb) climber() image.Rectangle {
	l := g.ladders[g.lane]
	return render.Rect(l.Min.X+(ladderWidth-climberW)/2, l.Max.Y-climberH-rungGap, climberW, climberH)
}

func (g *LadderClimb) rockRect(r rock) image.Rectangle {
	l := g.ladders[r.lane]
	return render.Rect(l.Min.X+(ladderWidth-climberW)/2, int(r.y), climberW, climberH)
}

func (g *LadderClimb) Update(events []input.Event) {
	if g.ended() {
		return
	}
	for _, e := range events {
		if e.Kind != input.KEY_DOWN {
			continue
		}
		switch e.Key {
		case input.KeyLeft:
			g.lane = max(g.lane-1, 0)
		case input.KeyRight:
			g.lane = min(g.lane+1, lanes-1)
		}
	}

	g.ticks++
	if g.ticks%g.spawnEvery == 0 {
		g.rocks = append(g.rocks, rock{lane: g.env.Rand.Intn(lanes), y: float64(g.ladders[0].Min.Y)})
	}

	me := g.climber()
	kept := g.rocks[:0]
	for _, r := range g.rocks {
		r.y += g.speed
		if g.rockRect(r).Overlaps(me) {
			g.finish(false, g.env.Ticks(1))
			return
		}
		if int(r.y) < g.ladders[0].Max.Y {
			kept = append(kept, r)
		}
	}
	g.rocks = kept

	if g.ticks >= g.survive {
		g.finish(true, g.env.Ticks(1))
	}
}

func (g *LadderClimb) Draw(s render.Surface) {
	s.Fill(color.White)
	for _, l := range g.ladders {
		s.DrawRect(l, color.Black, 3)
		for y := l.Min.Y + rungGap; y < l.Max.Y; y += rungGap {
			s.DrawLine(float64(l.Min.X), float64(y), float64(l.Max.X), float64(y), color.Black, 2)
		}
	}
	for _, r := range g.rocks {
		s.DrawRect(g.rockRect(r), model.PrincetonOrange, 0)
	}
	s.DrawRect(g.climber(), model.Emerald, 0)
	left := max(g.survive-g.ticks, 0)
	s.Text(fmt.Sprintf("Hold on: %.1f", float64(left)/float64(g.env.FPS)), color.Black, 20, 20)
	g.banner(s, g.env, color.Black)
}
