package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/mcarea/core"
)

// TestInsideCircleBoundary verifies rim points count as inside
func TestInsideCircleBoundary(t *testing.T) {
	c := core.Circle{Center: core.Point{X: 10, Y: 12}, Radius: 5}

	rim := []core.Point{
		{X: 15, Y: 12},
		{X: 5, Y: 12},
		{X: 10, Y: 17},
		{X: 10, Y: 7},
		{X: 13, Y: 16}, // 3-4-5
		{X: 7, Y: 8},
	}
	for _, p := range rim {
		if !InsideCircle(p, c) {
			t.Errorf("Expected rim point %v to be inside", p)
		}
	}
}

// TestInsideCircleStrict verifies strictly inside and strictly outside points
func TestInsideCircleStrict(t *testing.T) {
	c := core.Circle{Center: core.Point{X: 10, Y: 12}, Radius: 5}

	tests := []struct {
		name string
		p    core.Point
		want bool
	}{
		{"center", core.Point{X: 10, Y: 12}, true},
		{"near rim inside", core.Point{X: 14.999, Y: 12}, true},
		{"near rim outside", core.Point{X: 15.001, Y: 12}, false},
		{"diagonal outside", core.Point{X: 13, Y: 16.0001}, false},
		{"far", core.Point{X: 0, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideCircle(tt.p, c); got != tt.want {
				t.Errorf("InsideCircle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestInsideCircleZeroRadius verifies a point-sized circle only contains its center
func TestInsideCircleZeroRadius(t *testing.T) {
	c := core.Circle{Center: core.Point{X: 1, Y: 1}}
	if !InsideCircle(core.Point{X: 1, Y: 1}, c) {
		t.Error("Expected center to be inside zero-radius circle")
	}
	if InsideCircle(core.Point{X: 1, Y: 1.0000001}, c) {
		t.Error("Expected offset point to be outside zero-radius circle")
	}
}

// TestTriangleVerticesUnrotated checks vertex offsets at angle 0
func TestTriangleVerticesUnrotated(t *testing.T) {
	tri := core.Triangle{Center: core.Point{X: 1, Y: 2}, Side: 6}
	a, b, c := TriangleVertices(tri)
	h := math.Sqrt(3) / 2 * 6

	want := [3]core.Point{
		{X: 1 - 3, Y: 2 - h/3},
		{X: 1 + 3, Y: 2 - h/3},
		{X: 1, Y: 2 + 2*h/3},
	}
	got := [3]core.Point{a, b, c}
	for i := range want {
		if !pointNear(got[i], want[i], 1e-12) {
			t.Errorf("Vertex %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// Centroid of the vertices is the triangle center
	cx := (a.X + b.X + c.X) / 3
	cy := (a.Y + b.Y + c.Y) / 3
	if !pointNear(core.Point{X: cx, Y: cy}, tri.Center, 1e-12) {
		t.Errorf("Expected centroid %v, got (%f, %f)", tri.Center, cx, cy)
	}
}

// TestTriangleVerticesRotation verifies side lengths survive rotation
func TestTriangleVerticesRotation(t *testing.T) {
	for _, angle := range []float64{0, 30, 45, 90, 133.7, 270, 359.9} {
		tri := core.Triangle{Center: core.Point{X: 15, Y: 18}, Side: 6, Angle: angle}
		a, b, c := TriangleVertices(tri)
		for _, side := range []float64{
			math.Sqrt(DistanceSq(a.X, a.Y, b.X, b.Y)),
			math.Sqrt(DistanceSq(b.X, b.Y, c.X, c.Y)),
			math.Sqrt(DistanceSq(c.X, c.Y, a.X, a.Y)),
		} {
			if math.Abs(side-6) > 1e-9 {
				t.Errorf("Angle %v: expected side 6, got %f", angle, side)
			}
		}
	}
}

// TestInsideTriangleCentroid verifies the centroid is inside for any positive side
func TestInsideTriangleCentroid(t *testing.T) {
	for _, side := range []float64{1e-6, 0.5, 1, 4, 100} {
		tri := core.Triangle{Center: core.Point{X: 3, Y: 4}, Side: side}
		if !InsideTriangle(tri.Center, tri) {
			t.Errorf("Expected centroid inside for side %v", side)
		}
	}
}

// TestInsideTriangleUnrotated classifies points against the upright triangle
func TestInsideTriangleUnrotated(t *testing.T) {
	// Side 6 at origin: base y = -1.732, apex y = 3.464
	tri := core.Triangle{Side: 6}

	tests := []struct {
		name string
		p    core.Point
		want bool
	}{
		{"centroid", core.Point{X: 0, Y: 0}, true},
		{"near apex", core.Point{X: 0, Y: 3.4}, true},
		{"above apex", core.Point{X: 0, Y: 3.5}, false},
		{"below base", core.Point{X: 0, Y: -1.8}, false},
		{"base corner region", core.Point{X: 2.9, Y: -1.7}, true},
		{"outside right edge", core.Point{X: 2, Y: 1}, false},
		{"outside left edge", core.Point{X: -2, Y: 1}, false},
		{"far away", core.Point{X: 100, Y: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideTriangle(tt.p, tri); got != tt.want {
				t.Errorf("InsideTriangle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestInsideTriangleVertices verifies vertices are on the boundary and count as inside
func TestInsideTriangleVertices(t *testing.T) {
	tri := core.Triangle{Center: core.Point{X: 5, Y: 5}, Side: 4, Angle: 0}
	a, b, c := TriangleVertices(tri)
	for i, v := range []core.Point{a, b, c} {
		if !InsideTriangle(v, tri) {
			t.Errorf("Expected vertex %d %v to be inside", i, v)
		}
	}

	// Midpoint of the flat base has zero cross product on A->B
	mid := core.Point{X: (a.X + b.X) / 2, Y: a.Y}
	if !InsideTriangle(mid, tri) {
		t.Errorf("Expected base midpoint %v to be inside", mid)
	}
}

// TestInsideTriangleHalfTurn verifies a 180 degree rotation flips the apex down
func TestInsideTriangleHalfTurn(t *testing.T) {
	tri := core.Triangle{Side: 6, Angle: 180}
	if !InsideTriangle(core.Point{X: 0, Y: -3}, tri) {
		t.Error("Expected (0,-3) inside after half turn")
	}
	if InsideTriangle(core.Point{X: 0, Y: 3}, tri) {
		t.Error("Expected (0,3) outside after half turn")
	}
}

// TestInsideTriangleFullTurn verifies rotating by 360 degrees keeps every classification
func TestInsideTriangleFullTurn(t *testing.T) {
	for _, angle := range []float64{0, 17, 45, 90, 123.4, 270} {
		base := core.Triangle{Center: core.Point{X: 2, Y: -1}, Side: 5, Angle: angle}
		turned := base
		turned.Angle += 360

		a, b, c := TriangleVertices(base)
		for x := -4.0; x <= 8.0; x += 0.173 {
			for y := -7.0; y <= 5.0; y += 0.191 {
				p := core.Point{X: x, Y: y}
				if edgeDistance(p, a, b, c) < 1e-9 {
					continue
				}
				if InsideTriangle(p, base) != InsideTriangle(p, turned) {
					t.Fatalf("Angle %v: classification of %v changed after full turn", angle, p)
				}
			}
		}
	}
}

// TestInsideTriangleZeroSide verifies a degenerate triangle covers only its center
func TestInsideTriangleZeroSide(t *testing.T) {
	tri := core.Triangle{Center: core.Point{X: 1, Y: 1}, Angle: 30}
	if !InsideTriangle(tri.Center, tri) {
		t.Error("Expected center inside degenerate triangle")
	}
	if InsideTriangle(core.Point{X: 5, Y: 5}, tri) {
		t.Error("Expected distant point outside degenerate triangle")
	}
}

// TestInsideDispatch verifies variant dispatch and first-hit short circuit
func TestInsideDispatch(t *testing.T) {
	circle := core.CircleShape(core.Circle{Center: core.Point{X: 0, Y: 0}, Radius: 1})
	tri := core.TriangleShape(core.Triangle{Center: core.Point{X: 10, Y: 10}, Side: 3})

	if !Inside(core.Point{X: 0.5, Y: 0}, circle) {
		t.Error("Expected point inside circle variant")
	}
	if !Inside(core.Point{X: 10, Y: 10}, tri) {
		t.Error("Expected point inside triangle variant")
	}
	if Inside(core.Point{X: 0, Y: 0}, core.Shape{Kind: core.ShapeKind(99)}) {
		t.Error("Expected unknown kind to contain nothing")
	}

	shapes := []core.Shape{circle, tri}
	if !InsideAny(core.Point{X: 10, Y: 10}, shapes) {
		t.Error("Expected InsideAny to find the triangle")
	}
	if InsideAny(core.Point{X: 5, Y: 5}, shapes) {
		t.Error("Expected InsideAny to miss both shapes")
	}
	if InsideAny(core.Point{}, nil) {
		t.Error("Expected empty shape list to contain nothing")
	}
}

func pointNear(a, b core.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// edgeDistance returns the distance from p to the nearest edge line
func edgeDistance(p, a, b, c core.Point) float64 {
	d := math.Inf(1)
	for _, e := range [][2]core.Point{{a, b}, {b, c}, {c, a}} {
		ex, ey := e[1].X-e[0].X, e[1].Y-e[0].Y
		cross := Cross2D(ex, ey, p.X-e[0].X, p.Y-e[0].Y)
		dist := math.Abs(cross) / math.Hypot(ex, ey)
		if dist < d {
			d = dist
		}
	}
	return d
}
