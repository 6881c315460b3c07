package scene

import (
	"math"
	"testing"
)

func TestQuadShape(t *testing.T) {
	quad := CreateQuad()

	if len(quad.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(quad.Vertices))
	}
	if len(quad.Indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quad.Indices))
	}
	for i, idx := range quad.Indices {
		if idx >= uint32(len(quad.Vertices)) {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

// triArea returns the signed area of a triangle in the XY plane.
func triArea(quad *Mesh, i0, i1, i2 uint32) float32 {
	p0 := quad.Vertices[i0].Position
	p1 := quad.Vertices[i1].Position
	p2 := quad.Vertices[i2].Position
	return 0.5 * ((p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X))
}

// The two triangles must tile the unit quad exactly: consistent winding,
// total area 1.0, and a shared diagonal edge (no overlap, no gap).
func TestQuadTriangulation(t *testing.T) {
	quad := CreateQuad()
	idx := quad.Indices

	a1 := triArea(quad, idx[0], idx[1], idx[2])
	a2 := triArea(quad, idx[3], idx[4], idx[5])

	if a1*a2 <= 0 {
		t.Errorf("inconsistent winding: signed areas %v and %v", a1, a2)
	}
	total := math.Abs(float64(a1)) + math.Abs(float64(a2))
	if math.Abs(total-1.0) > 1e-6 {
		t.Errorf("expected total area 1.0, got %v", total)
	}

	// Both triangles must share exactly one edge (the diagonal).
	shared := 0
	for _, i := range idx[:3] {
		for _, j := range idx[3:] {
			if i == j {
				shared++
			}
		}
	}
	if shared != 2 {
		t.Errorf("expected 2 shared diagonal vertices, got %d", shared)
	}
}

func TestQuadTextureCoordinates(t *testing.T) {
	quad := CreateQuad()

	// UVs must span [0,1] and track the vertex corners: a vertex on the
	// right edge samples u=1, on the top edge v=1, and so on.
	for i, v := range quad.Vertices {
		wantU := v.Position.X + 0.5
		wantV := v.Position.Y + 0.5
		if v.UV.X != wantU || v.UV.Y != wantV {
			t.Errorf("vertex %d: expected UV (%v, %v), got (%v, %v)",
				i, wantU, wantV, v.UV.X, v.UV.Y)
		}
	}
}
