// Package mesh loads triangle-list vertex arrays for the renderer.
//
// Every loader returns vertices in draw order: each 3 consecutive vertices form one
// triangle. Colors default to white; the renderer replaces them per draw.
package mesh

import (
	"path/filepath"
	"strings"

	"orrery/quarkgl"

	"github.com/pkg/errors"
)

// ErrNoTriangles is returned when a source parses but holds no complete triangle.
var ErrNoTriangles = errors.New("mesh has no triangles")

const (
	BuiltinSphere = "builtin:sphere"
	BuiltinShip   = "builtin:ship"
)

var white = quarkgl.RGB(0xFF, 0xFF, 0xFF)

// Load reads a mesh by name: a builtin, a Wavefront .obj, or a glTF .gltf/.glb file.
func Load(name string) ([]quarkgl.Vertex, error) {
	var (
		verts []quarkgl.Vertex
		err   error
	)
	switch {
	case name == BuiltinSphere:
		verts = Sphere(24, 32)
	case name == BuiltinShip:
		verts = Ship()
	default:
		switch strings.ToLower(filepath.Ext(name)) {
		case ".obj":
			verts, err = LoadOBJ(name)
		case ".gltf", ".glb":
			verts, err = LoadGLTF(name)
		default:
			return nil, errors.Errorf("mesh %q: unsupported format", name)
		}
	}
	if err != nil {
		return nil, err
	}
	verts = trimPartial(verts)
	if len(verts) == 0 {
		return nil, errors.Wrapf(ErrNoTriangles, "mesh %q", name)
	}
	return verts, nil
}

func trimPartial(v []quarkgl.Vertex) []quarkgl.Vertex {
	return v[:len(v)-len(v)%3]
}
