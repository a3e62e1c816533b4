package turn

import "math/rand"

// Dice rolls one six sided die.
type Dice interface {
	Roll() int
}

type die struct {
	r *rand.Rand
}

func NewDice(r *rand.Rand) Dice {
	return &die{r: r}
}

func (d *die) Roll() int {
	return 1 + d.r.Intn(6)
}

// Loaded replays fixed rolls in order, then repeats the last one. Used by tests and demos.
type Loaded struct {
	Rolls []int
	next  int
}

func (l *Loaded) Roll() int {
	roll := l.Rolls[min(l.next, len(l.Rolls)-1)]
	l.next++
	return roll
}
