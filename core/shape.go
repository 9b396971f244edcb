package core

import (
	"math"

	"github.com/pkg/errors"
)

// Circle is a disc; points on the rim belong to it
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns a validated circle
func NewCircle(center Point, radius float64) (Circle, error) {
	c := Circle{Center: center, Radius: radius}
	if err := c.Validate(); err != nil {
		return Circle{}, err
	}
	return c, nil
}

// Validate rejects negative or non-finite radius and non-finite center
func (c Circle) Validate() error {
	if !nonNegativeFinite(c.Radius) || !finite(c.Center.X) || !finite(c.Center.Y) {
		return errors.Wrapf(ErrInvalidShapeParameter, "circle center (%g, %g) radius %g", c.Center.X, c.Center.Y, c.Radius)
	}
	return nil
}

// Area returns the analytic area pi*r^2
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Triangle is an equilateral triangle described by its centroid, side length and rotation
// Vertices are never stored; vmath derives them from these three fields on every query
// Angle is in degrees, counter-clockwise; at 0 the base is flat at the bottom and the apex points up
type Triangle struct {
	Center Point
	Side   float64
	Angle  float64
}

// NewTriangle returns a validated triangle
func NewTriangle(center Point, side, angle float64) (Triangle, error) {
	t := Triangle{Center: center, Side: side, Angle: angle}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// Validate rejects negative or non-finite side and non-finite center or angle
func (t Triangle) Validate() error {
	if !nonNegativeFinite(t.Side) || !finite(t.Center.X) || !finite(t.Center.Y) || !finite(t.Angle) {
		return errors.Wrapf(ErrInvalidShapeParameter, "triangle center (%g, %g) side %g angle %g", t.Center.X, t.Center.Y, t.Side, t.Angle)
	}
	return nil
}

// Height returns the altitude (sqrt(3)/2) * side
func (t Triangle) Height() float64 {
	return math.Sqrt(3) / 2 * t.Side
}

// Area returns the analytic area (sqrt(3)/4) * side^2
func (t Triangle) Area() float64 {
	return math.Sqrt(3) / 4 * t.Side * t.Side
}

// ShapeKind tags the active member of Shape
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeTriangle
)

// String returns the lowercase kind name
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is a closed variant over the supported shape kinds
// Only the member selected by Kind is meaningful
type Shape struct {
	Kind     ShapeKind
	Circle   Circle
	Triangle Triangle
}

// CircleShape wraps a circle as a Shape
func CircleShape(c Circle) Shape {
	return Shape{Kind: ShapeCircle, Circle: c}
}

// TriangleShape wraps a triangle as a Shape
func TriangleShape(t Triangle) Shape {
	return Shape{Kind: ShapeTriangle, Triangle: t}
}

// Area returns the analytic area of the active member
func (s Shape) Area() float64 {
	if s.Kind == ShapeTriangle {
		return s.Triangle.Area()
	}
	return s.Circle.Area()
}

// ShapeSet holds the excluded shapes of one estimation run
type ShapeSet struct {
	Circles   []Circle
	Triangles []Triangle
}

// Len returns the total number of shapes
func (s ShapeSet) Len() int {
	return len(s.Circles) + len(s.Triangles)
}

// Validate checks every member, reporting the first failure with its index
func (s ShapeSet) Validate() error {
	for i, c := range s.Circles {
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "circle %d", i)
		}
	}
	for i, t := range s.Triangles {
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "triangle %d", i)
		}
	}
	return nil
}

// Flatten returns the set as variants, circles first, preserving order within each kind
// The returned slice is a copy; callers may share it across goroutines read-only
func (s ShapeSet) Flatten() []Shape {
	out := make([]Shape, 0, s.Len())
	for _, c := range s.Circles {
		out = append(out, CircleShape(c))
	}
	for _, t := range s.Triangles {
		out = append(out, TriangleShape(t))
	}
	return out
}

// TotalArea sums analytic member areas, ignoring overlap and clipping
func (s ShapeSet) TotalArea() float64 {
	var sum float64
	for _, c := range s.Circles {
		sum += c.Area()
	}
	for _, t := range s.Triangles {
		sum += t.Area()
	}
	return sum
}
