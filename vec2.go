package vec2

import (
	"strconv"
)

// Vec2 is a two component vector. X is component 0 and Y is component 1.
//
// A Vec2 obtained from a Pool is indistinguishable from one allocated directly.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// At returns component i (0 for X, anything else for Y)
func (v Vec2) At(i int) float64 {
	if i == 0 {
		return v.X
	}
	return v.Y
}

// SetAt sets component i (0 for X, anything else for Y)
func (v *Vec2) SetAt(i int, f float64) {
	if i == 0 {
		v.X = f
		return
	}
	v.Y = f
}

// String implements fmt.Stringer interface
func (v Vec2) String() string {
	b := make([]byte, 0, 48)
	b = append(b, '(')
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	b = append(b, ')')
	return string(b)
}
