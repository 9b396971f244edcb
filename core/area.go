package core

import (
	"math"

	"github.com/pkg/errors"
)

// Point is a real-valued 2D coordinate
type Point struct {
	X, Y float64
}

// Rectangle is the sampling domain, anchored at the origin
// Width and Height must be positive and finite
type Rectangle struct {
	Width, Height float64
}

// NewRectangle validates dimensions and returns the rectangle
func NewRectangle(width, height float64) (Rectangle, error) {
	r := Rectangle{Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// Validate reports non-positive or non-finite dimensions
func (r Rectangle) Validate() error {
	if !positiveFinite(r.Width) || !positiveFinite(r.Height) {
		return errors.Wrapf(ErrInvalidShapeParameter, "rectangle %gx%g", r.Width, r.Height)
	}
	return nil
}

// Area returns width * height
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Contains checks if point lies in the half-open rectangle [0,W) x [0,H)
func (r Rectangle) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
