package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	log "github.com/sirupsen/logrus"
)

var ErrLayout = errors.New("bad board layout")

// Load reads a layout file. See Read for the format.
func Load(path string, nspecial int, r *rand.Rand) (*Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer file.Close()
	return Read(file, nspecial, r)
}

// Read parses ten lines, the top board row first. Cells sit at even
// character indexes:
//
//	.      normal square
//	*      special square
//	A..I   snake, two cells with the same letter; the higher square is the head
//	1..9   ladder, two cells with the same digit; the lower square is the bottom
//
// Without any '*' cell, nspecial special squares are sampled.
func Read(reader io.Reader, nspecial int, r *rand.Rand) (*Board, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	snakes := make(map[int]int)
	ladders := make(map[int]int)
	special := make([]int, 0)
	// first cell seen for each pairing mark
	pending := make(map[rune]int)
	lines := 0

	for scanner.Scan() {
		s := scanner.Text()
		if len(s) == 0 || s[0] == '#' {
			continue
		}
		if lines == Rows {
			return nil, fmt.Errorf("%w: more than %d rows", ErrLayout, Rows)
		}
		row := Rows - 1 - lines
		col := 0
		for i, char := range s {
			if i%2 != 0 {
				// separator
				continue
			}
			if col == Cols {
				return nil, fmt.Errorf("%w: row %d wider than %d", ErrLayout, lines+1, Cols)
			}
			pos := PositionOf(row, col)
			switch {
			case char == '.':
			case char == '*':
				special = append(special, pos)
			case char >= 'A' && char <= 'I', char >= '1' && char <= '9':
				prev, found := pending[char]
				if !found {
					pending[char] = pos
					break
				}
				lo, hi := min(prev, pos), max(prev, pos)
				if char >= 'A' {
					snakes[hi] = lo
				} else {
					ladders[lo] = hi
				}
				delete(pending, char)
			default:
				return nil, fmt.Errorf("%w: unknown mark %q at row %d", ErrLayout, char, lines+1)
			}
			col++
		}
		if col != Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrLayout, lines+1, col)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if lines != Rows {
		return nil, fmt.Errorf("%w: %d rows", ErrLayout, lines)
	}
	for char := range pending {
		return nil, fmt.Errorf("%w: unpaired mark %q", ErrLayout, char)
	}

	var b *Board
	var err error
	if len(special) > 0 {
		b, err = NewWithSpecial(snakes, ladders, special)
	} else {
		b, err = New(snakes, ladders, nspecial, r)
	}
	if err != nil {
		return nil, err
	}
	if collisions := b.Collisions(); len(collisions) > 0 {
		log.WithField("squares", collisions).Warn("board layout has overlapping squares")
	}
	return b, nil
}
