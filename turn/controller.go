// Package turn runs the board: roll, move, resolve the square, maybe play a
// minigame, then pass the dice. It is driven one frame at a time.
package turn

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snakeladder/anim"
	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/minigame"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	ButtonRoll     = "Roll"
	ButtonMinigame = "Play Minigame"

	DefaultMaxRerolls = 3
)

var ErrSetup = errors.New("invalid turn controller setup")

// Dispatcher builds the minigame for a difficulty tier.
type Dispatcher interface {
	Start(d model.Difficulty) minigame.Minigame
}

type Observer interface {
	Notify(ev model.Event)
}

type ObserverFunc func(ev model.Event)

func (f ObserverFunc) Notify(ev model.Event) {
	f(ev)
}

type Options struct {
	Board   *board.Board
	Players []*model.Player
	Layout  *render.Layout
	Dice    Dice
	Games   Dispatcher
	FPS     int
	// MaxRerolls caps the special square rerolls of a single turn
	MaxRerolls int
	Log        *log.Entry
}

type Controller struct {
	State      State
	Board      *board.Board
	Players    []*model.Player
	Current    int
	Prompt     string
	Button     string
	Winner     *model.Player
	MaxRerolls int

	layout     *render.Layout
	dice       Dice
	games      Dispatcher
	anim       *anim.Animator
	observers  []Observer
	backwards  bool
	rerolls    int
	square     board.Kind
	difficulty model.Difficulty
	active     minigame.Minigame
	log        *log.Entry
}

func New(o Options) (*Controller, error) {
	if o.Board == nil || o.Layout == nil || o.Dice == nil || o.Games == nil {
		return nil, fmt.Errorf("%w: board, layout, dice and minigames are required", ErrSetup)
	}
	if n := len(o.Players); n < model.MinPlayers || n > model.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", model.ErrPlayerCount, n)
	}
	if o.MaxRerolls <= 0 {
		o.MaxRerolls = DefaultMaxRerolls
	}
	if o.FPS <= 0 {
		o.FPS = minigame.DefaultFPS
	}
	if o.Log == nil {
		o.Log = log.NewEntry(log.StandardLogger())
	}
	c := &Controller{
		State:      AWAITING_ROLL,
		Board:      o.Board,
		Players:    o.Players,
		Button:     ButtonRoll,
		MaxRerolls: o.MaxRerolls,
		layout:     o.Layout,
		dice:       o.Dice,
		games:      o.Games,
		anim:       anim.NewAnimator(o.FPS),
		log:        o.Log,
	}
	c.Prompt = fmt.Sprintf("%s's turn", c.player().Name())
	return c, nil
}

func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) player() *model.Player {
	return c.Players[c.Current]
}

// Active is the running minigame, nil on the board screen.
func (c *Controller) Active() minigame.Minigame {
	return c.active
}

// Update advances one frame with the events polled for it.
// It returns input.ErrQuit when the player closes the game.
func (c *Controller) Update(events []input.Event) error {
	if input.HasQuit(events) {
		c.log.Info("quit requested")
		return input.ErrQuit
	}
	switch c.State {
	case AWAITING_ROLL:
		if input.ClickedIn(events, c.layout.RollButton) {
			c.roll()
		}
	case MOVING:
		c.anim.Update(1)
		if !c.anim.Busy() {
			c.arrive()
		}
	case RESOLVING:
		c.resolve()
	case AWAITING_MINIGAME:
		if input.ClickedIn(events, c.layout.RollButton) {
			c.startMinigame()
		}
	case PLAYING_MINIGAME:
		c.active.Update(events)
		if c.active.Done() {
			c.minigameOver(c.active.Won())
		}
	case SLIDING:
		c.anim.Update(1)
		if !c.anim.Busy() {
			c.endTurn()
		}
	case GAME_OVER:
	}
	return nil
}

func (c *Controller) roll() {
	p := c.player()
	n := c.dice.Roll()
	if c.backwards {
		n = -n
	}
	from := p.Position
	p.Position = model.Clamp(from + n)
	c.Prompt = fmt.Sprintf("%s rolled a %d", p.Name(), n)
	c.anim.Hop(c.layout.Path(from, p.Position))
	c.State = MOVING
	c.emit(model.Event{Kind: model.EV_ROLLED, Roll: n, From: from, To: p.Position})
}

func (c *Controller) arrive() {
	p := c.player()
	c.emit(model.Event{Kind: model.EV_MOVED, To: p.Position})
	if p.Position >= model.Last {
		c.win()
		return
	}
	c.State = RESOLVING
}

func (c *Controller) resolve() {
	p := c.player()
	c.square = c.Board.Classify(p.Position)
	switch c.square {
	case board.SNAKE:
		c.Prompt = fmt.Sprintf("%s landed on a snake! Play a minigame.", p.Name())
	case board.LADDER:
		c.Prompt = fmt.Sprintf("%s has landed on a ladder! Play a minigame.", p.Name())
	case board.SPECIAL:
		c.Prompt = fmt.Sprintf("%s landed on a special square! Play a minigame.", p.Name())
	default:
		c.endTurn()
		return
	}
	c.Button = ButtonMinigame
	c.State = AWAITING_MINIGAME
	c.emit(model.Event{Kind: model.EV_LANDED, To: p.Position, Square: c.square.Name()})
}

func (c *Controller) startMinigame() {
	c.difficulty = model.DifficultyFor(c.player().Position)
	c.active = c.games.Start(c.difficulty)
	c.State = PLAYING_MINIGAME
}

func (c *Controller) minigameOver(won bool) {
	p := c.player()
	name := c.active.Name()
	c.active = nil
	c.Button = ButtonRoll
	c.emit(model.Event{Kind: model.EV_MINIGAME, To: p.Position, Minigame: name, Difficulty: c.difficulty, Won: won})

	switch c.square {
	case board.SNAKE:
		if won {
			c.Prompt = fmt.Sprintf("%s won the minigame and gets to stay put", p.Name())
			c.endTurn()
			return
		}
		c.Prompt = fmt.Sprintf("%s lost the minigame and slides down the snake", p.Name())
		c.slide()
	case board.LADDER:
		if !won {
			c.Prompt = fmt.Sprintf("%s lost the minigame and has to stay put", p.Name())
			c.endTurn()
			return
		}
		c.Prompt = fmt.Sprintf("%s won the minigame and gets to climb the ladder", p.Name())
		c.slide()
	case board.SPECIAL:
		if c.rerolls >= c.MaxRerolls {
			c.Prompt = fmt.Sprintf("%s is out of rerolls", p.Name())
			c.endTurn()
			return
		}
		c.rerolls++
		c.backwards = !won
		if won {
			c.Prompt = fmt.Sprintf("%s won the minigame and gets to roll again to go forwards", p.Name())
		} else {
			c.Prompt = fmt.Sprintf("%s lost the minigame and has to roll again to go backwards", p.Name())
		}
		c.State = AWAITING_ROLL
		c.emit(model.Event{Kind: model.EV_REROLL, To: p.Position, Won: won})
	}
}

// slide follows the snake or ladder under the current player.
func (c *Controller) slide() {
	p := c.player()
	from := p.Position
	to, ok := c.Board.Destination(from)
	if !ok {
		c.endTurn()
		return
	}
	c.anim.Slide(c.layout.Center(from), c.layout.Center(to))
	p.Position = to
	c.State = SLIDING
	c.emit(model.Event{Kind: model.EV_SLID, From: from, To: to, Square: c.square.Name()})
}

func (c *Controller) endTurn() {
	c.backwards = false
	c.rerolls = 0
	c.Current = (c.Current + 1) % len(c.Players)
	next := fmt.Sprintf("%s's turn", c.player().Name())
	if c.Prompt == "" {
		c.Prompt = next
	} else {
		c.Prompt += ", " + next
	}
	c.State = AWAITING_ROLL
	c.emit(model.Event{Kind: model.EV_TURN, To: c.player().Position})
}

func (c *Controller) win() {
	p := c.player()
	c.Winner = p
	c.State = GAME_OVER
	c.Prompt = fmt.Sprintf("%s won the game!", p.Name())
	c.emit(model.Event{Kind: model.EV_WON, To: p.Position})
}

func (c *Controller) emit(ev model.Event) {
	ev.Player = c.player().Id
	ev.Prompt = c.Prompt
	c.log.WithFields(log.Fields{
		"player": ev.Player,
		"from":   ev.From,
		"to":     ev.To,
		"state":  c.State.Name(),
	}).Info(ev.Kind.Name())
	for _, o := range c.observers {
		o.Notify(ev)
	}
}

// Scene is the board screen as it should look this frame.
func (c *Controller) Scene() *render.Scene {
	tokens := make([]anim.Point, len(c.Players))
	for i, p := range c.Players {
		tokens[i] = c.layout.Center(p.Position)
		if i == c.Current && c.anim.Busy() {
			tokens[i] = c.anim.At
		}
	}
	return &render.Scene{
		Board:   c.Board,
		Players: c.Players,
		Tokens:  tokens,
		Prompt:  c.Prompt,
		Button:  c.Button,
	}
}

// Draw shows the running minigame, or the board when none runs.
func (c *Controller) Draw(s render.Surface) {
	if c.active != nil {
		c.active.Draw(s)
		return
	}
	render.DrawScene(s, c.layout, c.Scene())
}
