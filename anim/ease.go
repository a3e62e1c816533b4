// Package anim moves tokens across the board with an ease-in/ease-out cubic.
package anim

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// SmoothMotion is the distance covered at time t of a move of length c
// lasting b. Speed grows then shrinks linearly, so it is zero at both ends:
//
//	d(t) = -(a/3)t³ + (ab/2)t², a = 6c/b³
//
// It panics unless b >= 0, c >= 0 and 0 <= t <= b.
func SmoothMotion(t, b, c float64) float64 {
	if b < 0 || c < 0 || t < 0 || t > b {
		panic(fmt.Sprintf("anim: SmoothMotion(%v, %v, %v) outside 0 <= t <= b, c >= 0", t, b, c))
	}
	if b == 0 {
		return c
	}
	a := 6 * c / (b * b * b)
	return -a/3*t*t*t + a*b/2*t*t
}

// SmoothEase runs SmoothMotion as a gween easing: begin b, change c, duration d.
var SmoothEase ease.TweenFunc = func(t, b, c, d float32) float32 {
	t = min(max(t, 0), d)
	if c < 0 {
		return b - float32(SmoothMotion(float64(t), float64(d), float64(-c)))
	}
	return b + float32(SmoothMotion(float64(t), float64(d), float64(c)))
}
