// Package minigame holds the arcade games played on snake, ladder and special
// squares. Every game is frame driven: Update once per tick, Draw once per
// frame, and Done/Won once it is over.
package minigame

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

var ErrUnknown = errors.New("unknown minigame")

const DefaultFPS = 30

type Minigame interface {
	Name() string
	Update(events []input.Event)
	Draw(s render.Surface)
	Done() bool
	Won() bool
}

// Env is what a minigame shares with the board: window size, frame rate,
// randomness and the logger.
type Env struct {
	Width, Height int
	FPS           int
	Rand          *rand.Rand
	Log           *log.Entry
}

// ready fills in a logger and a random source when the caller left them out.
func (e Env) ready() Env {
	if e.Log == nil {
		e.Log = log.NewEntry(log.StandardLogger())
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.FPS <= 0 {
		e.FPS = DefaultFPS
	}
	return e
}

// Ticks converts seconds to frames.
func (e Env) Ticks(seconds float64) int {
	return int(seconds * float64(e.FPS))
}

type Factory func(d model.Difficulty, env Env) Minigame

// Registry picks and builds minigames.
type Registry struct {
	env       Env
	names     []string
	factories map[string]Factory
	pool      []string
}

// NewRegistry knows every minigame of the game.
func NewRegistry(env Env) *Registry {
	env = env.ready()
	r := &Registry{env: env, factories: make(map[string]Factory)}
	r.Register(TILES, NewTileMemory)
	r.Register(SIMON, NewSimonSays)
	r.Register(SNAKE, NewSnakeGame)
	r.Register(CHARMER, NewSnakeCharmer)
	r.Register(LADDER, NewLadderClimb)
	return r
}

func (r *Registry) Register(name string, f Factory) {
	if _, found := r.factories[name]; !found {
		r.names = append(r.names, name)
	}
	r.factories[name] = f
	r.pool = append([]string(nil), r.names...)
}

// Only restricts Start to the named games.
func (r *Registry) Only(names ...string) error {
	if len(names) == 0 {
		r.pool = append([]string(nil), r.names...)
		return nil
	}
	for _, name := range names {
		if _, found := r.factories[name]; !found {
			return fmt.Errorf("%w: %q", ErrUnknown, name)
		}
	}
	r.pool = append([]string(nil), names...)
	return nil
}

// Names is the current pool in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.pool...)
}

// Start builds a uniformly chosen minigame from the pool.
func (r *Registry) Start(d model.Difficulty) Minigame {
	name := r.pool[r.env.Rand.Intn(len(r.pool))]
	r.env.Log.WithFields(log.Fields{"minigame": name, "difficulty": d.Name()}).Info("minigame start")
	return r.factories[name](d, r.env)
}

// outcome is the win/lose bookkeeping shared by every game. After the game
// ends the result stays on screen for hold ticks.
type outcome struct {
	over bool
	won  bool
	hold int
}

func (o *outcome) finish(won bool, hold int) {
	if o.over {
		return
	}
	o.over = true
	o.won = won
	o.hold = hold
}

// ended counts down the result screen and reports whether play is over.
func (o *outcome) ended() bool {
	if !o.over {
		return false
	}
	if o.hold > 0 {
		o.hold--
	}
	return true
}

func (o *outcome) Done() bool {
	return o.over && o.hold <= 0
}

func (o *outcome) Won() bool {
	return o.won
}

func (o *outcome) banner(s render.Surface, env Env, clr color.Color) {
	if !o.over {
		return
	}
	msg := "You lose!"
	if o.won {
		msg = "You win!"
	}
	s.Text(msg, clr, env.Width/2, env.Height/2)
}
