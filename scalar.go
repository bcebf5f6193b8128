package vec2

import (
	"math"
)

// Length returns the Euclidean length of v
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of v
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and u
func (v Vec2) Distance(u Vec2) float64 {
	return math.Sqrt(v.DistanceSquared(u))
}

// DistanceSquared returns the squared distance between v and u
func (v Vec2) DistanceSquared(u Vec2) float64 {
	dx := v.X - u.X
	dy := v.Y - u.Y
	return dx*dx + dy*dy
}

func (v Vec2) Dot(u Vec2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// DotPerpendicular returns the perp dot product, i.e. the z of the 3D cross product
func (v Vec2) DotPerpendicular(u Vec2) float64 {
	return v.X*u.Y - v.Y*u.X
}

// Angle returns the direction from v to u in radians
func (v Vec2) Angle(u Vec2) float64 {
	return math.Atan2(u.Y-v.Y, u.X-v.X)
}

// Equal reports whether both components are exactly equal
func (v Vec2) Equal(u Vec2) bool {
	return v.X == u.X && v.Y == u.Y
}

// ApproxEqual reports whether both components differ by less than precision.
// A zero precision compares exactly.
func (v Vec2) ApproxEqual(u Vec2, precision float64) bool {
	if precision == 0 {
		return v.Equal(u)
	}
	return math.Abs(v.X-u.X) < precision && math.Abs(v.Y-u.Y) < precision
}

// IsPointOnLine reports whether v is collinear with start and end
func (v Vec2) IsPointOnLine(start, end Vec2) bool {
	return (start.Y-v.Y)*(start.X-end.X) == (start.Y-end.Y)*(start.X-v.X)
}

// Nearest returns the candidate closest to v, the first one on ties.
// It returns nil if there are no candidates.
func Nearest(v Vec2, candidates []*Vec2) *Vec2 {
	var closest *Vec2
	best := math.Inf(1)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if d := v.DistanceSquared(*c); d < best {
			best = d
			closest = c
		}
	}

	return closest
}
