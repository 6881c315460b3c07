package core

import (
	"texquad/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// Vertex is the packed per-vertex layout uploaded to the GPU: position,
// color and texture coordinate as 8 contiguous float32s (32-byte stride,
// offsets 0 / 12 / 24). The field order must match the shader's attribute
// locations 0, 1 and 2.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec3
	UV       math.Vec2
}
