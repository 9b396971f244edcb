// Package spawn generates random scenes within configured bounds.
package spawn

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/parameter"
	"github.com/lixenwraith/mcarea/vmath"
)

// Bounds limits the generated shape counts and sizes
type Bounds struct {
	MaxCircles      int
	MaxTriangles    int
	MaxCircleRadius float64
	MaxTriangleSide float64
}

// DefaultBounds returns the compile-time maxima
func DefaultBounds() Bounds {
	return Bounds{
		MaxCircles:      parameter.MaxCircles,
		MaxTriangles:    parameter.MaxTriangles,
		MaxCircleRadius: parameter.MaxCircleRadius,
		MaxTriangleSide: parameter.MaxTriangleSide,
	}
}

// Validate rejects non-positive counts and negative sizes
func (b Bounds) Validate() error {
	if b.MaxCircles < 1 || b.MaxTriangles < 1 {
		return errors.Wrapf(core.ErrInvalidShapeParameter, "spawn counts %d/%d", b.MaxCircles, b.MaxTriangles)
	}
	if !(b.MaxCircleRadius >= 0) || !(b.MaxTriangleSide >= 0) {
		return errors.Wrapf(core.ErrInvalidShapeParameter, "spawn sizes %g/%g", b.MaxCircleRadius, b.MaxTriangleSide)
	}
	return nil
}

// Generator draws scenes from a private stream
// Not safe for concurrent use
type Generator struct {
	bounds Bounds
	rng    *vmath.FastRand
}

// NewGenerator validates bounds and seeds the stream
func NewGenerator(bounds Bounds, seed uint64) (*Generator, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Generator{bounds: bounds, rng: vmath.NewFastRand(seed)}, nil
}

// Scene returns 1..MaxCircles circles then 1..MaxTriangles triangles centered inside rect
// Counts are drawn before shapes, circles before triangles
func (g *Generator) Scene(rect core.Rectangle) core.ShapeSet {
	nc := g.rng.Intn(g.bounds.MaxCircles) + 1
	nt := g.rng.Intn(g.bounds.MaxTriangles) + 1

	set := core.ShapeSet{
		Circles:   make([]core.Circle, nc),
		Triangles: make([]core.Triangle, nt),
	}
	for i := range set.Circles {
		set.Circles[i] = g.Circle(rect)
	}
	for i := range set.Triangles {
		set.Triangles[i] = g.Triangle(rect)
	}
	return set
}

// Circle returns one circle with center in rect and radius in [0, MaxCircleRadius)
func (g *Generator) Circle(rect core.Rectangle) core.Circle {
	return core.Circle{
		Center: vmath.RectRandomPoint(rect, g.rng),
		Radius: g.rng.Range(0, g.bounds.MaxCircleRadius),
	}
}

// Triangle returns one triangle with center in rect, side in [0, MaxTriangleSide) and angle in [0, 360)
func (g *Generator) Triangle(rect core.Rectangle) core.Triangle {
	return core.Triangle{
		Center: vmath.RectRandomPoint(rect, g.rng),
		Side:   g.rng.Range(0, g.bounds.MaxTriangleSide),
		Angle:  g.rng.Range(0, parameter.FullTurnDegrees),
	}
}
