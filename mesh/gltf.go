package mesh

import (
	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads every triangle primitive of every mesh in a glTF document.
// Node transforms are not applied; the scene places meshes itself.
func LoadGLTF(path string) ([]quarkgl.Vertex, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open gltf")
	}

	var out []quarkgl.Vertex
	for mi, m := range doc.Meshes {
		for pi, p := range m.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			verts, err := readPrimitive(doc, p)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: mesh %d primitive %d", path, mi, pi)
			}
			out = append(out, verts...)
		}
	}
	return out, nil
}

func readPrimitive(doc *gltf.Document, p *gltf.Primitive) ([]quarkgl.Vertex, error) {
	posIdx, ok := p.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, errors.Wrap(err, "read positions")
	}

	var normals [][3]float32
	if idx, ok := p.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, errors.Wrap(err, "read normals")
		}
	}
	var uvs [][2]float32
	if idx, ok := p.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, errors.Wrap(err, "read texcoords")
		}
	}

	var indices []uint32
	if p.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil); err != nil {
			return nil, errors.Wrap(err, "read indices")
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	out := make([]quarkgl.Vertex, 0, len(indices))
	for _, i := range indices {
		if int(i) >= len(positions) {
			return nil, errors.Errorf("index %d out of range (%d positions)", i, len(positions))
		}
		v := quarkgl.Vertex{Position: mgl32.Vec3(positions[i]), Color: white}
		if int(i) < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if int(i) < len(uvs) {
			v.TexCoord = mgl32.Vec2(uvs[i])
		}
		out = append(out, v)
	}
	return trimPartial(out), nil
}
