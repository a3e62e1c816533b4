// Package board holds the topology of the 100 square track: snakes, ladders,
// special squares and the zigzag numbering.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

const (
	Cols    = 10
	Rows    = 10
	Squares = Cols * Rows

	// endpoints and special squares never sit on the start or the goal
	first = 1
	last  = Squares - 2

	MaxPerKind = 9
)

var (
	ErrOutOfRange       = errors.New("square out of range")
	ErrTooMany          = errors.New("too many entries")
	ErrNotEnoughSquares = errors.New("not enough unused squares")
)

type Kind int

const (
	NORMAL Kind = iota
	SNAKE
	LADDER
	SPECIAL
)

func (k Kind) Name() string {
	switch k {
	case NORMAL:
		return "normal"
	case SNAKE:
		return "snake"
	case LADDER:
		return "ladder"
	case SPECIAL:
		return "special"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

type Board struct {
	Snakes  map[int]int
	Ladders map[int]int
	Special map[int]struct{}
}

var (
	DefaultSnakes  = map[int]int{96: 77, 94: 55, 87: 23, 61: 17, 47: 25, 35: 5, 31: 9}
	DefaultLadders = map[int]int{1: 37, 3: 13, 7: 29, 27: 73, 20: 41, 49: 66, 70: 91, 79: 98}
)

// Default builds the classic layout with nspecial sampled special squares.
func Default(nspecial int, r *rand.Rand) (*Board, error) {
	return New(copyOf(DefaultSnakes), copyOf(DefaultLadders), nspecial, r)
}

// New validates snakes and ladders and samples nspecial special squares
// among the squares no snake or ladder touches.
func New(snakes, ladders map[int]int, nspecial int, r *rand.Rand) (*Board, error) {
	b, err := build(snakes, ladders)
	if err != nil {
		return nil, err
	}
	if nspecial < 0 || nspecial > MaxPerKind {
		return nil, fmt.Errorf("%w: %d special squares", ErrTooMany, nspecial)
	}
	picked, err := sample(b.unused(), nspecial, r)
	if err != nil {
		return nil, err
	}
	for _, pos := range picked {
		b.Special[pos] = struct{}{}
	}
	return b, nil
}

// sample draws n squares from pool uniformly without replacement.
func sample(pool []int, n int, r *rand.Rand) ([]int, error) {
	if len(pool) < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughSquares, n, len(pool))
	}
	picked := make([]int, len(pool))
	copy(picked, pool)
	r.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:n], nil
}

// NewWithSpecial uses the given special squares instead of sampling them.
func NewWithSpecial(snakes, ladders map[int]int, special []int) (*Board, error) {
	b, err := build(snakes, ladders)
	if err != nil {
		return nil, err
	}
	if len(special) > MaxPerKind {
		return nil, fmt.Errorf("%w: %d special squares", ErrTooMany, len(special))
	}
	for _, pos := range special {
		if pos < first || pos > last {
			return nil, fmt.Errorf("%w: special %d", ErrOutOfRange, pos)
		}
		b.Special[pos] = struct{}{}
	}
	return b, nil
}

func build(snakes, ladders map[int]int) (*Board, error) {
	if snakes == nil {
		snakes = map[int]int{}
	}
	if ladders == nil {
		ladders = map[int]int{}
	}
	if err := checkPairs("snake", snakes); err != nil {
		return nil, err
	}
	if err := checkPairs("ladder", ladders); err != nil {
		return nil, err
	}
	return &Board{Snakes: snakes, Ladders: ladders, Special: map[int]struct{}{}}, nil
}

func checkPairs(what string, pairs map[int]int) error {
	if len(pairs) > MaxPerKind {
		return fmt.Errorf("%w: %d %ss", ErrTooMany, len(pairs), what)
	}
	for from, to := range pairs {
		if from < first || from > last || to < first || to > last {
			return fmt.Errorf("%w: %s %d->%d", ErrOutOfRange, what, from, to)
		}
	}
	return nil
}

func (b *Board) used() map[int]struct{} {
	used := make(map[int]struct{})
	for from, to := range b.Snakes {
		used[from], used[to] = struct{}{}, struct{}{}
	}
	for from, to := range b.Ladders {
		used[from], used[to] = struct{}{}, struct{}{}
	}
	return used
}

// unused lists, in ascending order, the squares open for special placement.
func (b *Board) unused() []int {
	used := b.used()
	free := make([]int, 0, last)
	for pos := first; pos <= last; pos++ {
		if _, ok := used[pos]; !ok {
			free = append(free, pos)
		}
	}
	return free
}

// CoordinateOf maps a position to its row (0 at the bottom) and column.
// Even rows run left to right, odd rows right to left.
func CoordinateOf(pos int) (row, col int) {
	row = pos / Cols
	if row%2 == 0 {
		col = pos % Cols
	} else {
		col = Cols - 1 - pos%Cols
	}
	return row, col
}

// PositionOf is the inverse of CoordinateOf.
func PositionOf(row, col int) int {
	if row%2 == 0 {
		return row*Cols + col
	}
	return row*Cols + Cols - 1 - col
}

// Classify answers with precedence snake, ladder, special, normal.
func (b *Board) Classify(pos int) Kind {
	if _, ok := b.Snakes[pos]; ok {
		return SNAKE
	}
	if _, ok := b.Ladders[pos]; ok {
		return LADDER
	}
	if _, ok := b.Special[pos]; ok {
		return SPECIAL
	}
	return NORMAL
}

// Destination is the snake tail or ladder top reached from pos.
func (b *Board) Destination(pos int) (int, bool) {
	switch b.Classify(pos) {
	case SNAKE:
		return b.Snakes[pos], true
	case LADDER:
		return b.Ladders[pos], true
	default:
		return 0, false
	}
}

// SpecialSquares returns the special squares in ascending order.
func (b *Board) SpecialSquares() []int {
	special := make([]int, 0, len(b.Special))
	for pos := range b.Special {
		special = append(special, pos)
	}
	sort.Ints(special)
	return special
}

// Collisions lists squares claimed by more than one snake or ladder endpoint
// or special square. Classify still resolves them by precedence.
func (b *Board) Collisions() []int {
	seen := make(map[int]int)
	for from, to := range b.Snakes {
		seen[from]++
		seen[to]++
	}
	for from, to := range b.Ladders {
		seen[from]++
		seen[to]++
	}
	for pos := range b.Special {
		seen[pos]++
	}
	collisions := make([]int, 0)
	for pos, n := range seen {
		if n > 1 {
			collisions = append(collisions, pos)
		}
	}
	sort.Ints(collisions)
	return collisions
}

func copyOf(m map[int]int) map[int]int {
	c := make(map[int]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
