package minigame

import (
	_ "embed"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/zucenko/snakeladder/input"
	"github.com/zucenko/snakeladder/model"
	"github.com/zucenko/snakeladder/render"
)

const (
	CHARMER = "charmer"

	slots          = 4
	spawnDelay     = 0.25
	clearDelay     = 0.75
	secondsPerRune = 0.5
	recentWords    = 4
	placeholder    = "Start Typing..."
	healthBar      = 400
)

//go:embed words.txt
var wordList string

// Words is the dictionary the charmer draws from.
var Words = strings.Fields(wordList)

type slot struct {
	word string
	born float64
}

// SnakeCharmer is a typing game: type the words before they fade to wear the snake down.
type SnakeCharmer struct {
	outcome
	env       Env
	started   bool
	ticks     int
	words     []string
	slots     [slots]slot
	recent    []string
	blocked   int
	blockTill float64
	lastSpawn float64
	typed     string
	hp        int
	maxHP     int
	damage    int
	limit     float64
}

func NewSnakeCharmer(d model.Difficulty, env Env) Minigame {
	env = env.ready()
	fits := model.Pick(d,
		func(w string) bool { return len(w) < 6 },
		func(w string) bool { return len(w) < 9 },
		func(w string) bool { return len(w) > 6 })
	words := make([]string, 0, len(Words))
	for _, w := range Words {
		if fits(w) {
			words = append(words, w)
		}
	}
	hp := model.Pick(d, 1000, 1200, 1400)
	return &SnakeCharmer{
		env:     env,
		words:   words,
		blocked: -1,
		typed:   placeholder,
		hp:      hp,
		maxHP:   hp,
		damage:  model.Pick(d, 30, 25, 20),
		limit:   model.Pick(d, 15.0, 18.0, 20.0),
	}
}

func (g *SnakeCharmer) Name() string {
	return CHARMER
}

// elapsed is the play time in seconds.
func (g *SnakeCharmer) elapsed() float64 {
	return float64(g.ticks) / float64(g.env.FPS)
}

func (g *SnakeCharmer) remember(word string) {
	if word == "" {
		return
	}
	if len(g.recent) == recentWords {
		g.recent = g.recent[1:]
	}
	g.recent = append(g.recent, word)
}

func (g *SnakeCharmer) inUse(word string) bool {
	for _, s := range g.slots {
		if s.word == word {
			return true
		}
	}
	for _, w := range g.recent {
		if w == word {
			return true
		}
	}
	return false
}

// freeSlot skips the slot a word was just typed out of.
func (g *SnakeCharmer) freeSlot() int {
	for i, s := range g.slots {
		if s.word == "" && i != g.blocked {
			return i
		}
	}
	return -1
}

func (g *SnakeCharmer) spawn(now float64) {
	i := g.freeSlot()
	if i < 0 {
		return
	}
	for _, j := range g.env.Rand.Perm(len(g.words)) {
		if !g.inUse(g.words[j]) {
			g.slots[i] = slot{word: g.words[j], born: now}
			return
		}
	}
}

func (g *SnakeCharmer) expire(now float64) {
	for i, s := range g.slots {
		if s.word != "" && now-s.born > secondsPerRune*float64(len(s.word)) {
			g.remember(s.word)
			g.slots[i] = slot{}
		}
	}
}

func (g *SnakeCharmer) submit(now float64) {
	typed := strings.ToLower(g.typed)
	g.typed = ""
	if typed == "" {
		return
	}
	for i, s := range g.slots {
		if s.word != "" && strings.ToLower(s.word) == typed {
			g.slots[i] = slot{}
			g.blocked = i
			g.blockTill = now + clearDelay
			g.remember(s.word)
			g.hp = max(g.hp-len(typed)*g.damage, 0)
			g.env.Log.WithField("hp", g.hp).Debug("charmer hit")
			return
		}
	}
}

func (g *SnakeCharmer) key(e input.Event, now float64) {
	switch e.Key {
	case input.KeyEnter:
		g.submit(now)
	case input.KeyBackspace:
		if g.typed == placeholder {
			g.typed = ""
		}
		_, size := utf8.DecodeLastRuneInString(g.typed)
		g.typed = g.typed[:len(g.typed)-size]
	case input.KeyEscape:
		g.typed = ""
	default:
		if e.Char == 0 {
			return
		}
		if g.typed == placeholder {
			g.typed = ""
		}
		g.typed += string(e.Char)
	}
}

func (g *SnakeCharmer) Update(events []input.Event) {
	if g.ended() {
		return
	}
	if !g.started {
		g.started = input.AnyKey(events)
		return
	}
	g.ticks++
	now := g.elapsed()
	if now > g.limit {
		g.finish(false, g.env.Ticks(1))
		return
	}
	if g.blocked >= 0 && now >= g.blockTill {
		g.blocked = -1
	}
	g.expire(now)
	if now-g.lastSpawn >= spawnDelay {
		g.lastSpawn = now
		g.spawn(now)
	}
	for _, e := range events {
		if e.Kind == input.KEY_DOWN {
			g.key(e, now)
		}
	}
	if g.hp <= 0 {
		g.finish(true, g.env.Ticks(1))
	}
}

// wordColor fades from green to orange to red over a word's life.
func (g *SnakeCharmer) wordColor(s slot, now float64) color.Color {
	life := secondsPerRune * float64(len(s.word))
	switch age := now - s.born; {
	case age < life/3:
		return model.Emerald
	case age < life/3*2:
		return model.PrincetonOrange
	default:
		return model.RedCrayola
	}
}

func (g *SnakeCharmer) wordPos(i int) (int, int) {
	w, h := g.env.Width, g.env.Height
	switch i {
	case 0:
		return w / 5 * 2, h / 3 * 2
	case 1:
		return w / 5 * 3, h / 3 * 2
	case 2:
		return w / 5 * 2, h / 7 * 6
	default:
		return w / 5 * 3, h / 7 * 6
	}
}

func (g *SnakeCharmer) Draw(s render.Surface) {
	s.Fill(model.RichBlack)
	w, h := g.env.Width, g.env.Height
	if !g.started {
		s.Text("Welcome to Snake Charmer! Press any key to start", model.Azure, w/2, h/4)
		return
	}
	now := g.elapsed()
	s.Text(fmt.Sprintf("Time Left: %.1f", max(g.limit-now, 0)), model.Azure, w/12, h/20)

	bar := render.Rect((w-healthBar)/2, h/20, healthBar, 25)
	fill := bar
	fill.Max.X = bar.Min.X + healthBar*g.hp/g.maxHP
	s.DrawRect(fill, model.RedCrayola, 0)
	s.DrawRect(bar, model.Azure, 3)
	s.Text(fmt.Sprintf("HP: %d", g.hp), model.Azure, w/2, h/20)

	for i, sl := range g.slots {
		x, y := g.wordPos(i)
		s.DrawRect(render.Rect(x-120, y-60, 240, 120), model.Azure, 4)
		if sl.word != "" {
			s.Text(sl.word, g.wordColor(sl, now), x, y-20)
			s.Text(fmt.Sprint(len(sl.word)*g.damage), model.Azure, x, y+20)
		}
	}

	s.Panel(render.Rect(w/2-125, h/2-22, 250, 45), model.Azure)
	s.Text(g.typed, model.RichBlack, w/2, h/2)
	g.banner(s, g.env, model.Azure)
}
