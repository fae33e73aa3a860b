// OBJ (Wavefront) geometry parser.

package formats

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// OBJ format errors.
var (
	ErrOBJSyntax      = errors.New("malformed OBJ statement")
	ErrOBJIndexZero   = errors.New("OBJ index 0 is not valid")
	ErrOBJIndexBounds = errors.New("OBJ index out of range")
)

// NoIndex marks a face-vertex component that is absent (e.g. "f 1//3" has no texcoord).
const NoIndex = -1

// OBJIndex references one face-vertex. All indices are 0-based after parsing.
type OBJIndex struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// OBJShape is one object/group of the file. Faces are triangulated on load,
// so Indices always holds 3 entries per face.
type OBJShape struct {
	Name        string
	Indices     []OBJIndex
	MaterialIDs []int // one per triangle, NoIndex when no material is bound

	materialNames []string
}

// TriangleCount returns the number of triangles in the shape.
func (s *OBJShape) TriangleCount() int {
	return len(s.Indices) / 3
}

// OBJ holds a parsed OBJ file.
type OBJ struct {
	Positions    []mgl32.Vec3
	Normals      []mgl32.Vec3
	TexCoords    []mgl32.Vec2
	Shapes       []OBJShape
	Materials    []Material
	MaterialLibs []string

	// Warnings collects non-fatal problems (missing material libraries, unknown materials).
	Warnings []string
}

// ParseOBJ parses OBJ data from r. Material libraries are recorded but not
// loaded; see LoadOBJFile.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	p := &objParser{obj: &OBJ{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		p.line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, errors.Wrapf(err, "line %d", p.line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading OBJ")
	}

	p.finishShape()
	if err := p.obj.validate(); err != nil {
		return nil, err
	}
	return p.obj, nil
}

// ParseOBJFile reads and parses an OBJ file without loading its materials.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseOBJ(f)
}

// LoadOBJFile parses an OBJ file and every material library it references.
// Library paths resolve against baseDir; an empty baseDir means the OBJ's directory.
// A material library that cannot be read only produces a warning.
func LoadOBJFile(path, baseDir string) (*OBJ, error) {
	obj, err := ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	if baseDir == "" {
		baseDir = filepath.Dir(path)
	}

	for _, lib := range obj.MaterialLibs {
		libPath := filepath.Join(baseDir, lib)
		mats, err := ParseMTLFile(libPath)
		if err != nil {
			obj.Warnings = append(obj.Warnings, errors.Wrapf(err, "material library %s", libPath).Error())
			continue
		}
		obj.Materials = append(obj.Materials, mats...)
	}

	obj.ResolveMaterials()
	return obj, nil
}

// ResolveMaterials binds each triangle's usemtl name to an index into Materials.
// Unknown names resolve to NoIndex and are reported in Warnings.
func (o *OBJ) ResolveMaterials() {
	byName := make(map[string]int, len(o.Materials))
	for i := range o.Materials {
		if _, dup := byName[o.Materials[i].Name]; !dup {
			byName[o.Materials[i].Name] = i
		}
	}

	missing := make(map[string]bool)
	for s := range o.Shapes {
		shape := &o.Shapes[s]
		shape.MaterialIDs = make([]int, len(shape.materialNames))
		for i, name := range shape.materialNames {
			shape.MaterialIDs[i] = NoIndex
			if name == "" {
				continue
			}
			if id, ok := byName[name]; ok {
				shape.MaterialIDs[i] = id
			} else if !missing[name] {
				missing[name] = true
				o.Warnings = append(o.Warnings, "unknown material "+strconv.Quote(name))
			}
		}
	}
}

// MaterialFor returns the material of the shape's first bound triangle, or nil.
func (o *OBJ) MaterialFor(shape *OBJShape) *Material {
	if len(shape.MaterialIDs) == 0 || len(o.Materials) == 0 {
		return nil
	}
	id := shape.MaterialIDs[0]
	if id < 0 || id >= len(o.Materials) {
		return nil
	}
	return &o.Materials[id]
}

// TriangleCount returns the total triangle count over all shapes.
func (o *OBJ) TriangleCount() int {
	n := 0
	for i := range o.Shapes {
		n += o.Shapes[i].TriangleCount()
	}
	return n
}

func (o *OBJ) validate() error {
	for s := range o.Shapes {
		for _, idx := range o.Shapes[s].Indices {
			if idx.Vertex < 0 || idx.Vertex >= len(o.Positions) {
				return errors.Wrapf(ErrOBJIndexBounds, "shape %q: vertex %d of %d", o.Shapes[s].Name, idx.Vertex+1, len(o.Positions))
			}
			if idx.TexCoord >= len(o.TexCoords) {
				return errors.Wrapf(ErrOBJIndexBounds, "shape %q: texcoord %d of %d", o.Shapes[s].Name, idx.TexCoord+1, len(o.TexCoords))
			}
			if idx.Normal >= len(o.Normals) {
				return errors.Wrapf(ErrOBJIndexBounds, "shape %q: normal %d of %d", o.Shapes[s].Name, idx.Normal+1, len(o.Normals))
			}
		}
	}
	return nil
}

type objParser struct {
	obj      *OBJ
	line     int
	current  *OBJShape
	material string
	face     []OBJIndex
}

func (p *objParser) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		v, err := parseVec(fields[1:], 3)
		if err != nil {
			return err
		}
		p.obj.Positions = append(p.obj.Positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vn":
		v, err := parseVec(fields[1:], 3)
		if err != nil {
			return err
		}
		p.obj.Normals = append(p.obj.Normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseVec(fields[1:], 2)
		if err != nil {
			return err
		}
		p.obj.TexCoords = append(p.obj.TexCoords, mgl32.Vec2{v[0], v[1]})
	case "f":
		return p.parseFace(fields[1:])
	case "o", "g":
		p.finishShape()
		p.current = &OBJShape{Name: strings.Join(fields[1:], " ")}
	case "usemtl":
		if len(fields) < 2 {
			return errors.Wrap(ErrOBJSyntax, "usemtl without name")
		}
		p.material = strings.Join(fields[1:], " ")
	case "mtllib":
		p.obj.MaterialLibs = append(p.obj.MaterialLibs, fields[1:]...)
	}
	// s, l, p and other statements are ignored.
	return nil
}

func (p *objParser) parseFace(fields []string) error {
	if len(fields) < 3 {
		return errors.Wrapf(ErrOBJSyntax, "face with %d vertices", len(fields))
	}

	p.face = p.face[:0]
	for _, f := range fields {
		idx, err := p.parseFaceVertex(f)
		if err != nil {
			return err
		}
		p.face = append(p.face, idx)
	}

	if p.current == nil {
		p.current = &OBJShape{}
	}
	// Fan triangulation: (0, i, i+1).
	for i := 1; i+1 < len(p.face); i++ {
		p.current.Indices = append(p.current.Indices, p.face[0], p.face[i], p.face[i+1])
		p.current.materialNames = append(p.current.materialNames, p.material)
	}
	return nil
}

func (p *objParser) parseFaceVertex(s string) (OBJIndex, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return OBJIndex{}, errors.Wrapf(ErrOBJSyntax, "face vertex %q", s)
	}

	idx := OBJIndex{Vertex: NoIndex, TexCoord: NoIndex, Normal: NoIndex}
	var err error
	if idx.Vertex, err = resolveIndex(parts[0], len(p.obj.Positions)); err != nil {
		return idx, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if idx.TexCoord, err = resolveIndex(parts[1], len(p.obj.TexCoords)); err != nil {
			return idx, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if idx.Normal, err = resolveIndex(parts[2], len(p.obj.Normals)); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

// finishShape closes the current shape, dropping it if it has no faces.
func (p *objParser) finishShape() {
	if p.current != nil && len(p.current.Indices) > 0 {
		p.obj.Shapes = append(p.obj.Shapes, *p.current)
	}
	p.current = nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index to 0-based.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrOBJSyntax, "index %q", s)
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		if count+i < 0 {
			return 0, errors.Wrapf(ErrOBJIndexBounds, "relative index %d with %d elements", i, count)
		}
		return count + i, nil
	default:
		return 0, ErrOBJIndexZero
	}
}

// parseVec parses at least n floats; extra components (e.g. the w of "v x y z w") are ignored.
func parseVec(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, errors.Wrapf(ErrOBJSyntax, "expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, errors.Wrapf(ErrOBJSyntax, "number %q", fields[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}
