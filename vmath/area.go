package vmath

import "github.com/lixenwraith/mcarea/core"

// RectRandomPoint returns a uniform point in [0,W) x [0,H) using provided RNG
// X is drawn before Y so a seeded stream maps to a fixed point sequence
func RectRandomPoint(r core.Rectangle, rng *FastRand) core.Point {
	x := rng.Float64() * r.Width
	y := rng.Float64() * r.Height
	return core.Point{X: x, Y: y}
}
