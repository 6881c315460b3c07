package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"texquad/core"
	"texquad/math"
)

// LoadMeshGLTF opens a .glb or .gltf file and returns its first mesh
// primitive as a Mesh. Positions are required; texture coordinates are taken
// from TEXCOORD_0 when present and the vertex color defaults to white.
// Only geometry is read — materials and the node hierarchy are ignored.
func LoadMeshGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := meshFromPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v\n", mi, pi, err)
				continue
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("gltf %q: no usable mesh primitive", path)
}

// meshFromPrimitive converts one glTF mesh primitive into a Mesh.
func meshFromPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return CreateMeshFromData(name, assembleVertices(positions, uvs), indices), nil
}

// assembleVertices zips parallel position/uv attribute slices into packed
// vertices. Missing texture coordinates default to (0,0); color is white so
// the fragment shader's color modulation is a no-op for loaded meshes.
func assembleVertices(positions [][3]float32, uvs [][2]float32) []core.Vertex {
	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Color:    math.Vec3One,
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}
	return verts
}
