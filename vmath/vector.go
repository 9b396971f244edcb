package vmath

import "math"

// RotateVector rotates (x, y) counter-clockwise by rad radians around the origin
func RotateVector(x, y, rad float64) (rx, ry float64) {
	sin, cos := math.Sincos(rad)
	return Rotate(x, y, sin, cos)
}

// Rotate applies a precomputed rotation matrix to (x, y)
// Use when several vectors share one angle
func Rotate(x, y, sin, cos float64) (rx, ry float64) {
	rx = x*cos - y*sin
	ry = x*sin + y*cos
	return rx, ry
}

// Cross2D returns the z component of (x1, y1) x (x2, y2)
func Cross2D(x1, y1, x2, y2 float64) float64 {
	return x1*y2 - y1*x2
}

// DistanceSq returns squared euclidean distance without sqrt
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
