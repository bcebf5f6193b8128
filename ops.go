package vec2

import (
	"math"
)

// The methods below share one calling convention. With clone false the
// primary operand is overwritten with the result and returned, so calls can be
// chained without allocating. With clone true the operands are left untouched
// and the result is returned in a vector acquired from p.
//
// None of them recycle anything; the caller owns every vector it gets back.

// Set sets v to (x, y)
func (p *Pool) Set(v *Vec2, x, y float64, clone bool) *Vec2 {
	if clone {
		return p.Acquire(x, y)
	}

	v.X = x
	v.Y = y
	return v
}

// SetScalar sets both components of v to s
func (p *Pool) SetScalar(v *Vec2, s float64, clone bool) *Vec2 {
	return p.Set(v, s, s, clone)
}

// Copy copies src into dst. In clone mode dst is left alone and a copy of src is returned.
func (p *Pool) Copy(dst, src *Vec2, clone bool) *Vec2 {
	if clone {
		return p.Acquire(src.X, src.Y)
	}

	dst.X = src.X
	dst.Y = src.Y
	return dst
}

// Negate computes -v
func (p *Pool) Negate(v *Vec2, clone bool) *Vec2 {
	return p.result(v, -v.X, -v.Y, clone)
}

// Add computes v1 + v2
func (p *Pool) Add(v1, v2 *Vec2, clone bool) *Vec2 {
	return p.result(v1, v1.X+v2.X, v1.Y+v2.Y, clone)
}

// Subtract computes v1 - v2
func (p *Pool) Subtract(v1, v2 *Vec2, clone bool) *Vec2 {
	return p.result(v1, v1.X-v2.X, v1.Y-v2.Y, clone)
}

// Multiply computes v1 * v2 component-wise
func (p *Pool) Multiply(v1, v2 *Vec2, clone bool) *Vec2 {
	return p.result(v1, v1.X*v2.X, v1.Y*v2.Y, clone)
}

// MultiplyScalar computes v * s
func (p *Pool) MultiplyScalar(v *Vec2, s float64, clone bool) *Vec2 {
	return p.result(v, v.X*s, v.Y*s, clone)
}

// Divide computes v1 / v2 component-wise
func (p *Pool) Divide(v1, v2 *Vec2, clone bool) *Vec2 {
	return p.result(v1, v1.X/v2.X, v1.Y/v2.Y, clone)
}

// DivideScalar computes v / s
func (p *Pool) DivideScalar(v *Vec2, s float64, clone bool) *Vec2 {
	return p.result(v, v.X/s, v.Y/s, clone)
}

// RotateOptions configures Rotate
type RotateOptions struct {
	// Inverse rotates clockwise instead of counter-clockwise
	Inverse bool
	// Clone returns the result in a new vector instead of overwriting v
	Clone bool
}

// Rotate rotates v by radians
func (p *Pool) Rotate(v *Vec2, radians float64, opts RotateOptions) *Vec2 {
	sin, cos := math.Sincos(radians)
	if opts.Inverse {
		sin = -sin
	}

	return p.result(v, cos*v.X-sin*v.Y, sin*v.X+cos*v.Y, opts.Clone)
}

// Normalize scales v to unit length. A zero vector stays zero.
func (p *Pool) Normalize(v *Vec2, clone bool) *Vec2 {
	var inv float64
	if l := v.Length(); l != 0 {
		inv = 1 / l
	}

	return p.result(v, v.X*inv, v.Y*inv, clone)
}

// Abs computes (|x|, |y|)
func (p *Pool) Abs(v *Vec2, clone bool) *Vec2 {
	return p.result(v, math.Abs(v.X), math.Abs(v.Y), clone)
}

// Clamp bounds each component of v by opts.Min and then opts.Max
func (p *Pool) Clamp(v *Vec2, opts ClampOptions) *Vec2 {
	x, y := opts.Min.lower(v.X, v.Y)
	x, y = opts.Max.upper(x, y)

	return p.result(v, x, y, opts.Clone)
}

// Lerp interpolates linearly from v1 towards v2. t is not range checked.
func (p *Pool) Lerp(v1, v2 *Vec2, t float64, clone bool) *Vec2 {
	x := v1.X + (v2.X-v1.X)*t
	y := v1.Y + (v2.Y-v1.Y)*t

	return p.result(v1, x, y, clone)
}

// Normal computes the counter-clockwise perpendicular (-y, x)
func (p *Pool) Normal(v *Vec2, clone bool) *Vec2 {
	return p.result(v, -v.Y, v.X, clone)
}

func (p *Pool) result(v *Vec2, x, y float64, clone bool) *Vec2 {
	if clone {
		return p.Acquire(x, y)
	}

	v.X = x
	v.Y = y
	return v
}
