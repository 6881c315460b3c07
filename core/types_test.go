package core

import (
	"testing"
	"unsafe"
)

// The GL attribute pointers assume the exact packed layout below; a field
// reorder or padding change would silently corrupt rendering.
func TestVertexLayout(t *testing.T) {
	var v Vertex

	if size := unsafe.Sizeof(v); size != 32 {
		t.Errorf("Vertex size: expected 32 bytes, got %d", size)
	}
	if off := unsafe.Offsetof(v.Position); off != 0 {
		t.Errorf("Position offset: expected 0, got %d", off)
	}
	if off := unsafe.Offsetof(v.Color); off != 12 {
		t.Errorf("Color offset: expected 12, got %d", off)
	}
	if off := unsafe.Offsetof(v.UV); off != 24 {
		t.Errorf("UV offset: expected 24, got %d", off)
	}
}

func TestVertexArrayIsContiguous(t *testing.T) {
	verts := make([]Vertex, 2)
	stride := uintptr(unsafe.Pointer(&verts[1])) - uintptr(unsafe.Pointer(&verts[0]))
	if stride != 32 {
		t.Errorf("slice stride: expected 32 bytes, got %d", stride)
	}
}
