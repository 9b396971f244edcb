package vmath

import (
	"math"

	"github.com/lixenwraith/mcarea/core"
)

// InsideCircle reports whether p lies in the closed disc
// Compares squared distances; the rim counts as inside
func InsideCircle(p core.Point, c core.Circle) bool {
	return DistanceSq(p.X, p.Y, c.Center.X, c.Center.Y) <= c.Radius*c.Radius
}

// TriangleVertices derives A, B, C of an equilateral triangle from its centroid, side and angle
//
//	     C
//	    / \
//	   / . \
//	  A_____B
//
// Unrotated offsets from the centroid: A(-s/2, -h/3), B(s/2, -h/3), C(0, 2h/3) with h = sqrt(3)/2 * s
func TriangleVertices(t core.Triangle) (a, b, c core.Point) {
	h := Sqrt3 / 2 * t.Side
	sin, cos := sincosDeg(t.Angle)

	ax, ay := Rotate(-t.Side/2, -h/3, sin, cos)
	bx, by := Rotate(t.Side/2, -h/3, sin, cos)
	cx, cy := Rotate(0, 2*h/3, sin, cos)

	a = core.Point{X: t.Center.X + ax, Y: t.Center.Y + ay}
	b = core.Point{X: t.Center.X + bx, Y: t.Center.Y + by}
	c = core.Point{X: t.Center.X + cx, Y: t.Center.Y + cy}
	return a, b, c
}

// InsideTriangle reports whether p lies in the closed triangle
// Sign test over the oriented edges A->B, B->C, C->A: p is outside only when the
// edge cross products include both a strictly negative and a strictly positive value
// Vertices are recomputed per call
func InsideTriangle(p core.Point, t core.Triangle) bool {
	// Zero side collapses every edge vector to zero, which would zero all cross products
	if t.Side == 0 {
		return p == t.Center
	}

	a, b, c := TriangleVertices(t)

	dAB := Cross2D(b.X-a.X, b.Y-a.Y, p.X-a.X, p.Y-a.Y)
	dBC := Cross2D(c.X-b.X, c.Y-b.Y, p.X-b.X, p.Y-b.Y)
	dCA := Cross2D(a.X-c.X, a.Y-c.Y, p.X-c.X, p.Y-c.Y)

	hasNeg := dAB < 0 || dBC < 0 || dCA < 0
	hasPos := dAB > 0 || dBC > 0 || dCA > 0
	return !(hasNeg && hasPos)
}

// Inside dispatches on the shape kind
func Inside(p core.Point, s core.Shape) bool {
	switch s.Kind {
	case core.ShapeCircle:
		return InsideCircle(p, s.Circle)
	case core.ShapeTriangle:
		return InsideTriangle(p, s.Triangle)
	default:
		return false
	}
}

// InsideAny reports whether p lies in any shape, stopping at the first hit
func InsideAny(p core.Point, shapes []core.Shape) bool {
	for i := range shapes {
		if Inside(p, shapes[i]) {
			return true
		}
	}
	return false
}

// sincosDeg returns sin and cos of an angle given in degrees
func sincosDeg(deg float64) (sin, cos float64) {
	return math.Sincos(deg * DegToRad)
}
