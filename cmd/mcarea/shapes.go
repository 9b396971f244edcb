package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/mcarea/core"
)

// parseFields splits "a,b,c" into exactly n floats
func parseFields(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// parseCircle reads "x,y,radius"
func parseCircle(s string) (core.Circle, error) {
	v, err := parseFields(s, 3)
	if err != nil {
		return core.Circle{}, errors.Wrapf(err, "circle %q", s)
	}
	return core.NewCircle(core.Point{X: v[0], Y: v[1]}, v[2])
}

// parseTriangle reads "x,y,side,angle"
func parseTriangle(s string) (core.Triangle, error) {
	v, err := parseFields(s, 4)
	if err != nil {
		return core.Triangle{}, errors.Wrapf(err, "triangle %q", s)
	}
	return core.NewTriangle(core.Point{X: v[0], Y: v[1]}, v[2], v[3])
}

func parseShapes(circles, triangles []string) (core.ShapeSet, error) {
	var set core.ShapeSet
	for _, s := range circles {
		c, err := parseCircle(s)
		if err != nil {
			return core.ShapeSet{}, err
		}
		set.Circles = append(set.Circles, c)
	}
	for _, s := range triangles {
		t, err := parseTriangle(s)
		if err != nil {
			return core.ShapeSet{}, err
		}
		set.Triangles = append(set.Triangles, t)
	}
	return set, nil
}
