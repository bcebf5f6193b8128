package vec2

type boundKind byte

const (
	noBound boundKind = iota
	scalarBound
	perAxisBound
)

// Bound is one side of a clamp. The zero value does not bound anything.
type Bound struct {
	kind boundKind
	x, y float64
}

// Scalar bounds both components by the same value
func Scalar(f float64) Bound {
	return Bound{kind: scalarBound, x: f, y: f}
}

// PerAxis bounds x and y separately
func PerAxis(x, y float64) Bound {
	return Bound{kind: perAxisBound, x: x, y: y}
}

// PerAxisVec bounds each component by the matching component of v
func PerAxisVec(v Vec2) Bound {
	return PerAxis(v.X, v.Y)
}

// IsSet reports whether b bounds anything
func (b Bound) IsSet() bool {
	return b.kind != noBound
}

func (b Bound) lower(x, y float64) (float64, float64) {
	if b.kind == noBound {
		return x, y
	}
	if x < b.x {
		x = b.x
	}
	if y < b.y {
		y = b.y
	}
	return x, y
}

func (b Bound) upper(x, y float64) (float64, float64) {
	if b.kind == noBound {
		return x, y
	}
	if x > b.x {
		x = b.x
	}
	if y > b.y {
		y = b.y
	}
	return x, y
}

// String implements fmt.Stringer interface
func (b Bound) String() string {
	switch b.kind {
	case scalarBound:
		return "scalar"
	case perAxisBound:
		return "per-axis"
	default:
		return "none"
	}
}

// ClampOptions configures Clamp
type ClampOptions struct {
	Min   Bound
	Max   Bound
	Clone bool
}
