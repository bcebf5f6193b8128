package vec2

import "errors"

// Pool errors
var (
	ErrDoubleRecycle = errors.New("vec2: vector recycled while already pooled")
)
