package mesh

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) ([]quarkgl.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open obj")
	}
	defer f.Close()

	verts, err := ParseOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return verts, nil
}

// ParseOBJ reads v/vt/vn/f records. Polygons are fan-triangulated; negative indices
// count back from the latest element. Faces without normals get the face normal.
func ParseOBJ(r io.Reader) ([]quarkgl.Vertex, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		uvs       []mgl32.Vec2
		out       []quarkgl.Vertex
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})
		case "f":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: face needs 3 vertices", line)
			}
			face := make([]quarkgl.Vertex, 0, len(fields)-1)
			hasNormals := true
			for _, ref := range fields[1:] {
				v, hasN, err := resolveRef(ref, positions, uvs, normals)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", line)
				}
				hasNormals = hasNormals && hasN
				face = append(face, v)
			}
			for i := 1; i+1 < len(face); i++ {
				tri := [3]quarkgl.Vertex{face[0], face[i], face[i+1]}
				if !hasNormals {
					n := tri[1].Position.Sub(tri[0].Position).Cross(tri[2].Position.Sub(tri[0].Position))
					if l := n.Len(); l > 0 {
						n = n.Mul(1 / l)
					}
					for j := range tri {
						tri[j].Normal = n
					}
				}
				out = append(out, tri[:]...)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, errors.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

// resolveRef turns "p", "p/t", "p//n" or "p/t/n" into a vertex.
func resolveRef(ref string, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3) (quarkgl.Vertex, bool, error) {
	parts := strings.Split(ref, "/")
	v := quarkgl.Vertex{Color: white}

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return v, false, errors.Wrapf(err, "position %q", ref)
	}
	v.Position = positions[pi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(uvs))
		if err != nil {
			return v, false, errors.Wrapf(err, "texcoord %q", ref)
		}
		v.TexCoord = uvs[ti]
	}

	hasNormal := false
	if len(parts) > 2 && parts[2] != "" {
		ni, err := objIndex(parts[2], len(normals))
		if err != nil {
			return v, false, errors.Wrapf(err, "normal %q", ref)
		}
		v.Normal = normals[ni]
		hasNormal = true
	}
	return v, hasNormal, nil
}

func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, errors.New("index 0 is invalid")
	}
	if i < 0 || i >= n {
		return 0, errors.Errorf("index out of range (%d elements)", n)
	}
	return i, nil
}
