package anim

import "github.com/tanema/gween"

// Action is what happens while a tween runs and once it finishes.
type Action struct {
	nexts    []func(a *Animator)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start when the current tween finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(an *Animator), 0)
	}
	a.nexts = append(a.nexts,
		func(an *Animator) {
			an.Tweens[t] = action
		})
	return action
}

type Point struct {
	X, Y float64
}

func Lerp(from, to Point, s float64) Point {
	return Point{from.X + (to.X-from.X)*s, from.Y + (to.Y-from.Y)*s}
}

// Animator drives the token of the moving player. One tick per frame.
type Animator struct {
	Tweens     map[*gween.Tween]*Action
	HopTicks   float32
	SlideTicks float32
	At         Point
}

const (
	HopSeconds   = 0.2
	SlideSeconds = 1.0
)

func NewAnimator(fps int) *Animator {
	return &Animator{
		Tweens:     make(map[*gween.Tween]*Action),
		HopTicks:   float32(HopSeconds * float64(fps)),
		SlideTicks: float32(SlideSeconds * float64(fps)),
	}
}

func (an *Animator) Busy() bool {
	return len(an.Tweens) > 0
}

// Update advances every live tween by dt ticks. Chained tweens start on the next call.
func (an *Animator) Update(dt float32) {
	nexts := make([]func(an *Animator), 0)
	for t, a := range an.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			nexts = append(nexts, a.nexts...)
			delete(an.Tweens, t)
		}
	}
	for _, next := range nexts {
		next(an)
	}
}

// Hop moves square to square through points, one eased hop each.
func (an *Animator) Hop(points []Point) {
	if len(points) == 0 {
		return
	}
	an.At = points[0]
	var prev *Action
	for i := 1; i < len(points); i++ {
		t := gween.New(0, 1, an.HopTicks, SmoothEase)
		var action *Action
		if prev == nil {
			action = &Action{}
			an.Tweens[t] = action
		} else {
			action = prev.next(t)
		}
		an.follow(action, points[i-1], points[i])
		prev = action
	}
}

// Slide moves straight from one point to another, used for snakes and ladders.
func (an *Animator) Slide(from, to Point) {
	an.At = from
	action := &Action{}
	an.follow(action, from, to)
	an.Tweens[gween.New(0, 1, an.SlideTicks, SmoothEase)] = action
}

func (an *Animator) follow(action *Action, from, to Point) {
	action.onChange = func(s float32) {
		an.At = Lerp(from, to, float64(s))
	}
	action.addOnFinish(func() {
		an.At = to
	})
}
