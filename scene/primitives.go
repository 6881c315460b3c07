package scene

import (
	"texquad/core"
	"texquad/math"
)

// CreateQuad builds the textured demo quad: four vertices carrying position,
// color and texture coordinate, with two triangles sharing the 0-3 diagonal.
// Texture coordinates span the full image, (0,0) at the lower-left corner.
func CreateQuad() *Mesh {
	vertices := []core.Vertex{
		{ // top right
			Position: math.Vec3{X: 0.5, Y: 0.5, Z: 0},
			Color:    math.Vec3{X: 1, Y: 0, Z: 0},
			UV:       math.Vec2{X: 1, Y: 1},
		},
		{ // bottom right
			Position: math.Vec3{X: 0.5, Y: -0.5, Z: 0},
			Color:    math.Vec3{X: 0, Y: 1, Z: 0},
			UV:       math.Vec2{X: 1, Y: 0},
		},
		{ // bottom left
			Position: math.Vec3{X: -0.5, Y: -0.5, Z: 0},
			Color:    math.Vec3{X: 0, Y: 0, Z: 1},
			UV:       math.Vec2{X: 0, Y: 0},
		},
		{ // top left
			Position: math.Vec3{X: -0.5, Y: 0.5, Z: 0},
			Color:    math.Vec3{X: 1, Y: 1, Z: 0},
			UV:       math.Vec2{X: 0, Y: 1},
		},
	}
	indices := []uint32{
		0, 1, 3, // first triangle
		1, 2, 3, // second triangle
	}
	return CreateMeshFromData("Quad", vertices, indices)
}
