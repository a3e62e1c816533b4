package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/snakeladder/board"
	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/minigame"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

// rigged is a minigame that ends on its first update with a fixed result.
type rigged struct {
	won     bool
	updates int
}

func (g *rigged) Name() string                { return "RIGGED" }
func (g *rigged) Update(events []input.Event) { g.updates++ }
func (g *rigged) Draw(s render.Surface)       {}
func (g *rigged) Done() bool                  { return g.updates > 0 }
func (g *rigged) Won() bool                   { return g.won }

type riggedGames struct {
	won     bool
	started []model.Difficulty
}

func (r *riggedGames) Start(d model.Difficulty) minigame.Minigame {
	r.started = append(r.started, d)
	return &rigged{won: r.won}
}

type fixture struct {
	c      *Controller
	games  *riggedGames
	layout *render.Layout
	events []model.Event
}

func newFixture(t *testing.T, b *board.Board, won bool, rolls ...int) *fixture {
	t.Helper()
	players, err := model.NewPlayers(2)
	require.NoError(t, err)
	f := &fixture{games: &riggedGames{won: won}, layout: render.NewLayout(1280, 720)}
	f.c, err = New(Options{
		Board:   b,
		Players: players,
		Layout:  f.layout,
		Dice:    &Loaded{Rolls: rolls},
		Games:   f.games,
		FPS:     30,
	})
	require.NoError(t, err)
	f.c.Observe(ObserverFunc(func(ev model.Event) { f.events = append(f.events, ev) }))
	return f
}

func (f *fixture) click(t *testing.T) {
	t.Helper()
	x, y := render.Center(f.layout.RollButton)
	require.NoError(t, f.c.Update([]input.Event{input.Click(int(x), int(y))}))
}

// settle ticks without input until the controller waits on the player.
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	for n := 0; ; n++ {
		switch f.c.State {
		case AWAITING_ROLL, AWAITING_MINIGAME, GAME_OVER:
			return
		}
		require.Less(t, n, 10000, "stuck in %s", f.c.State.Name())
		require.NoError(t, f.c.Update(nil))
	}
}

func (f *fixture) kinds() []model.EventKind {
	kinds := make([]model.EventKind, 0, len(f.events))
	for _, ev := range f.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func mustBoard(t *testing.T, snakes, ladders map[int]int, special ...int) *board.Board {
	t.Helper()
	b, err := board.NewWithSpecial(snakes, ladders, special)
	require.NoError(t, err)
	return b
}

func TestNewRejectsBadSetup(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrSetup)

	players, _ := model.NewPlayers(2)
	_, err = New(Options{
		Board:   mustBoard(t, nil, nil),
		Players: players[:1],
		Layout:  render.NewLayout(1280, 720),
		Dice:    &Loaded{Rolls: []int{1}},
		Games:   &riggedGames{},
	})
	assert.ErrorIs(t, err, model.ErrPlayerCount)
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 1)
	assert.Equal(t, AWAITING_ROLL, f.c.State)
	assert.Equal(t, "P1's turn", f.c.Prompt)
	assert.Equal(t, ButtonRoll, f.c.Button)
	assert.Equal(t, DefaultMaxRerolls, f.c.MaxRerolls)
}

func TestClickOutsideButtonDoesNotRoll(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 4)
	require.NoError(t, f.c.Update([]input.Event{input.Click(1, 1), input.Press(input.KeySpace)}))
	assert.Equal(t, AWAITING_ROLL, f.c.State)
	assert.Empty(t, f.events)
}

func TestQuitFromAnyState(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 4)
	f.click(t)
	require.Equal(t, MOVING, f.c.State)
	assert.ErrorIs(t, f.c.Update([]input.Event{input.Quit()}), input.ErrQuit)
}

func TestNormalSquarePassesTurn(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 4)
	f.click(t)
	assert.Equal(t, "P1 rolled a 4", f.c.Prompt)
	f.settle(t)

	assert.Equal(t, 4, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
	assert.Equal(t, AWAITING_ROLL, f.c.State)
	assert.Equal(t, "P1 rolled a 4, P2's turn", f.c.Prompt)
	assert.Equal(t, []model.EventKind{model.EV_ROLLED, model.EV_MOVED, model.EV_TURN}, f.kinds())
	assert.Empty(t, f.games.started)
}

func TestTurnsRotate(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 2)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i%2, f.c.Current)
		f.click(t)
		f.settle(t)
	}
	assert.Equal(t, 4, f.c.Players[0].Position)
	assert.Equal(t, 4, f.c.Players[1].Position)
}

func TestLadderWonClimbs(t *testing.T) {
	f := newFixture(t, mustBoard(t, map[int]int{96: 77}, map[int]int{1: 37}), true, 1)
	f.click(t)
	f.settle(t)

	require.Equal(t, AWAITING_MINIGAME, f.c.State)
	assert.Equal(t, "P1 has landed on a ladder! Play a minigame.", f.c.Prompt)
	assert.Equal(t, ButtonMinigame, f.c.Button)

	f.click(t)
	require.Equal(t, PLAYING_MINIGAME, f.c.State)
	assert.Equal(t, []model.Difficulty{model.EASY}, f.games.started)
	assert.NotNil(t, f.c.Active())

	f.settle(t)
	assert.Nil(t, f.c.Active())
	assert.Equal(t, 37, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
	assert.Equal(t, ButtonRoll, f.c.Button)
	assert.Equal(t, []model.EventKind{
		model.EV_ROLLED, model.EV_MOVED, model.EV_LANDED, model.EV_MINIGAME, model.EV_SLID, model.EV_TURN,
	}, f.kinds())
}

func TestLadderLostStays(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, map[int]int{1: 37}), false, 1)
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)
	assert.Equal(t, 1, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
}

func TestSnakeLostSlides(t *testing.T) {
	f := newFixture(t, mustBoard(t, map[int]int{96: 77}, map[int]int{1: 37}), false, 6)
	f.c.Players[0].Position = 90
	f.click(t)
	f.settle(t)
	require.Equal(t, AWAITING_MINIGAME, f.c.State)
	assert.Equal(t, "P1 landed on a snake! Play a minigame.", f.c.Prompt)

	f.click(t)
	f.settle(t)
	assert.Equal(t, []model.Difficulty{model.HARD}, f.games.started)
	assert.Equal(t, 77, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
	assert.Contains(t, f.c.Prompt, "slides down the snake")
}

func TestSnakeWonStays(t *testing.T) {
	f := newFixture(t, mustBoard(t, map[int]int{50: 10}, nil), true, 5)
	f.c.Players[0].Position = 45
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)
	assert.Equal(t, []model.Difficulty{model.MEDIUM}, f.games.started)
	assert.Equal(t, 50, f.c.Players[0].Position)
}

func TestReachingLastSquareWins(t *testing.T) {
	b := mustBoard(t, nil, nil)
	// a mark on the last square is never resolved
	b.Snakes[model.Last] = 50
	f := newFixture(t, b, false, 6)
	f.c.Players[0].Position = 95
	f.click(t)
	f.settle(t)

	assert.Equal(t, GAME_OVER, f.c.State)
	assert.Equal(t, model.Last, f.c.Players[0].Position)
	assert.Same(t, f.c.Players[0], f.c.Winner)
	assert.Equal(t, "P1 won the game!", f.c.Prompt)
	assert.Empty(t, f.games.started)
	assert.Equal(t, model.EV_WON, f.events[len(f.events)-1].Kind)

	// nothing moves once the game is over
	f.click(t)
	assert.Equal(t, GAME_OVER, f.c.State)
}

func TestSpecialLostRollsBackwards(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil, 3), false, 3, 2)
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)

	require.Equal(t, AWAITING_ROLL, f.c.State)
	assert.Equal(t, 0, f.c.Current, "same player rerolls")
	assert.Equal(t, "P1 lost the minigame and has to roll again to go backwards", f.c.Prompt)

	f.click(t)
	assert.Equal(t, "P1 rolled a -2", f.c.Prompt)
	f.settle(t)
	assert.Equal(t, 1, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
}

func TestSpecialBackwardsClampsAtStart(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil, 2), false, 2, 6)
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)
	assert.Equal(t, 0, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
}

func TestSpecialWonRollsForwards(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil, 3), true, 3, 4)
	f.click(t)
	f.settle(t)
	f.click(t)
	f.settle(t)
	assert.Equal(t, "P1 won the minigame and gets to roll again to go forwards", f.c.Prompt)
	f.click(t)
	f.settle(t)
	assert.Equal(t, 7, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
}

func TestSpecialRerollsAreCapped(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil, 2, 4, 6), true, 2)
	f.c.MaxRerolls = 2
	for i := 0; i < 3; i++ {
		f.click(t)
		f.settle(t)
		require.Equal(t, AWAITING_MINIGAME, f.c.State)
		f.click(t)
		f.settle(t)
	}
	assert.Equal(t, 6, f.c.Players[0].Position)
	assert.Equal(t, 1, f.c.Current)
	assert.Equal(t, "P1 is out of rerolls, P2's turn", f.c.Prompt)
	assert.Len(t, f.games.started, 3)
}

func TestTokensFollowAnimation(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, nil), true, 3)
	f.click(t)
	require.NoError(t, f.c.Update(nil))
	sc := f.c.Scene()
	require.Len(t, sc.Tokens, 2)
	assert.Equal(t, f.layout.Center(0), sc.Tokens[1])
	assert.NotEqual(t, f.layout.Center(3), sc.Tokens[0], "still hopping")

	f.settle(t)
	sc = f.c.Scene()
	assert.Equal(t, f.layout.Center(3), sc.Tokens[0])
}

func TestDrawSwitchesToMinigame(t *testing.T) {
	f := newFixture(t, mustBoard(t, nil, map[int]int{1: 37}), true, 1)
	rec := &render.Recorder{}
	f.c.Draw(rec)
	assert.NotEmpty(t, rec.Texts())

	f.click(t)
	f.settle(t)
	f.click(t)
	rec.Reset()
	f.c.Draw(rec)
	assert.Empty(t, rec.Ops(), "rigged minigame draws nothing")
}
