package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothMotionEndpoints(t *testing.T) {
	for _, c := range []float64{0, 1, 37.5, 600} {
		for _, b := range []float64{1, 6, 30, 0.2} {
			assert.InDelta(t, 0, SmoothMotion(0, b, c), 1e-9)
			assert.InDelta(t, c, SmoothMotion(b, b, c), 1e-9*max(c, 1))
			assert.InDelta(t, c/2, SmoothMotion(b/2, b, c), 1e-9*max(c, 1), "symmetric around the midpoint")
		}
	}
	assert.Equal(t, 5.0, SmoothMotion(0, 0, 5))
}

func TestSmoothMotionMonotonic(t *testing.T) {
	const b, c = 30.0, 120.0
	prev := 0.0
	for i := 0; i <= 300; i++ {
		d := SmoothMotion(b*float64(i)/300, b, c)
		require.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestSmoothMotionPreconditions(t *testing.T) {
	assert.Panics(t, func() { SmoothMotion(2, 1, 1) })
	assert.Panics(t, func() { SmoothMotion(-1, 1, 1) })
	assert.Panics(t, func() { SmoothMotion(0, -1, 1) })
	assert.Panics(t, func() { SmoothMotion(0, 1, -1) })
}

func TestSmoothEaseNegativeChange(t *testing.T) {
	assert.InDelta(t, 10, SmoothEase(0, 10, -4, 6), 1e-6)
	assert.InDelta(t, 6, SmoothEase(6, 10, -4, 6), 1e-6)
	assert.InDelta(t, 8, SmoothEase(3, 10, -4, 6), 1e-6)
}

func run(an *Animator, limit int) int {
	ticks := 0
	for an.Busy() && ticks < limit {
		an.Update(1)
		ticks++
	}
	return ticks
}

func TestHopVisitsEverySquare(t *testing.T) {
	an := NewAnimator(30)
	require.Equal(t, float32(6), an.HopTicks)

	points := []Point{{0, 0}, {10, 0}, {20, 0}, {20, 10}}
	an.Hop(points)
	require.True(t, an.Busy())

	visited := make([]Point, 0)
	ticks := 0
	for an.Busy() && ticks < 100 {
		an.Update(1)
		ticks++
		if int(an.HopTicks) > 0 && ticks%int(an.HopTicks) == 0 {
			visited = append(visited, an.At)
		}
	}
	assert.Equal(t, 18, ticks)
	assert.Equal(t, points[1:], visited)
	assert.Equal(t, Point{20, 10}, an.At)
}

func TestHopEasesWithinSquare(t *testing.T) {
	an := NewAnimator(30)
	an.Hop([]Point{{0, 0}, {60, 0}})
	steps := make([]float64, 0)
	last := 0.0
	for an.Busy() {
		an.Update(1)
		steps = append(steps, an.At.X-last)
		last = an.At.X
	}
	require.Len(t, steps, 6)
	// slow start, fast middle, slow end
	assert.Less(t, steps[0], steps[2])
	assert.Less(t, steps[5], steps[3])
}

func TestHopSinglePointIsIdle(t *testing.T) {
	an := NewAnimator(30)
	an.Hop([]Point{{5, 5}})
	assert.False(t, an.Busy())
	assert.Equal(t, Point{5, 5}, an.At)
}

func TestSlide(t *testing.T) {
	an := NewAnimator(30)
	an.Slide(Point{0, 100}, Point{50, 0})
	assert.Equal(t, 30, run(an, 1000))
	assert.Equal(t, Point{50, 0}, an.At)
}
