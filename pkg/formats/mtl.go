// MTL (Wavefront material library) parser.

package formats

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrMTLNoMaterial is returned when a material property appears before any newmtl.
var ErrMTLNoMaterial = errors.New("MTL property outside newmtl block")

// Material is a surface material from an MTL file.
type Material struct {
	Name      string
	Ambient   mgl32.Vec3 // Ka
	Diffuse   mgl32.Vec3 // Kd
	Specular  mgl32.Vec3 // Ks
	Shininess float32    // Ns
	Dissolve  float32    // d (1 = opaque)
	Illum     int

	AmbientTexture  string // map_Ka
	DiffuseTexture  string // map_Kd
	SpecularTexture string // map_Ks
}

// ParseMTL parses an MTL material library. Materials are returned in file order.
func ParseMTL(r io.Reader) ([]Material, error) {
	var mats []Material
	var cur *Material

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "newmtl" {
			if len(fields) < 2 {
				return nil, errors.Errorf("line %d: newmtl without name", line)
			}
			mats = append(mats, Material{Name: strings.Join(fields[1:], " "), Dissolve: 1})
			cur = &mats[len(mats)-1]
			continue
		}
		if cur == nil {
			// Some exporters write a header before the first newmtl.
			if isMTLProperty(fields[0]) {
				return nil, errors.Wrapf(ErrMTLNoMaterial, "line %d: %s", line, fields[0])
			}
			continue
		}
		if err := cur.parseProperty(fields); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading MTL")
	}
	return mats, nil
}

// ParseMTLFile reads and parses an MTL file.
func ParseMTLFile(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMTL(f)
}

func (m *Material) parseProperty(fields []string) error {
	var err error
	switch fields[0] {
	case "Ka":
		m.Ambient, err = parseColor(fields[1:])
	case "Kd":
		m.Diffuse, err = parseColor(fields[1:])
	case "Ks":
		m.Specular, err = parseColor(fields[1:])
	case "Ns":
		m.Shininess, err = parseScalar(fields[1:])
	case "d":
		m.Dissolve, err = parseScalar(fields[1:])
	case "Tr":
		var tr float32
		if tr, err = parseScalar(fields[1:]); err == nil {
			m.Dissolve = 1 - tr
		}
	case "illum":
		if len(fields) < 2 {
			return errors.Wrap(ErrOBJSyntax, "illum without value")
		}
		m.Illum, err = strconv.Atoi(fields[1])
	case "map_Ka":
		m.AmbientTexture = texturePath(fields[1:])
	case "map_Kd":
		m.DiffuseTexture = texturePath(fields[1:])
	case "map_Ks":
		m.SpecularTexture = texturePath(fields[1:])
	}
	return err
}

// Textures returns the ambient, diffuse and specular texture paths in that order.
// An empty string means the slot has no texture.
func (m *Material) Textures() []string {
	return []string{m.AmbientTexture, m.DiffuseTexture, m.SpecularTexture}
}

func isMTLProperty(key string) bool {
	switch key {
	case "Ka", "Kd", "Ks", "Ns", "d", "Tr", "illum", "map_Ka", "map_Kd", "map_Ks":
		return true
	}
	return false
}

// texturePath drops map options ("-s 1 1 1", "-bm 0.5", ...) and keeps the file name,
// which is always the last field.
func texturePath(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func parseColor(fields []string) (mgl32.Vec3, error) {
	if len(fields) == 1 {
		// "Kd 0.5" is shorthand for a grey.
		f, err := parseScalar(fields)
		return mgl32.Vec3{f, f, f}, err
	}
	v, err := parseVec(fields, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

func parseScalar(fields []string) (float32, error) {
	v, err := parseVec(fields, 1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}
