// Package model loads OBJ meshes and answers walkable-surface height queries.
//
// A Model is built synchronously by Load (or New) and is immutable afterwards:
// sub-meshes and textures for rendering, the axis-aligned bounds, the set of
// walkable triangles and a uniform XZ grid over them.
package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/pkg/formats"
)

// Vertex is one emitted face-vertex. The layout matches the vertex
// attributes uploaded by the renderer (position, normal, texcoord).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// TextureRole names the material slot a texture is bound to. The values
// double as the sampler uniform names in the shaders.
type TextureRole string

const (
	RoleAmbient  TextureRole = "ambientTexture"
	RoleDiffuse  TextureRole = "diffuseTexture"
	RoleSpecular TextureRole = "specularTexture"
)

// materialRoles orders the roles the same way formats.Material.Textures does.
var materialRoles = [3]TextureRole{RoleAmbient, RoleDiffuse, RoleSpecular}

// Texture is a GPU texture handle bound to a material slot.
type Texture struct {
	ID   uint32
	Role TextureRole
	Path string
}

// SubMesh is the geometry of one OBJ object or group.
// Indices are sequential: one per emitted vertex.
type SubMesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Textures []Texture
	Material formats.Material
}

// TriangleCount returns the number of complete index triples.
func (m *SubMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// TextureLoader decodes and uploads a texture file, returning its handle.
// The GL implementation lives in the texture package.
type TextureLoader interface {
	Load(path string) (uint32, error)
	Release(id uint32)
}

// LoadOptions configures Load.
type LoadOptions struct {
	// BaseDir resolves material libraries and texture paths.
	// Empty means the directory of the OBJ file.
	BaseDir string

	// Cache shares textures between models. When nil, Load creates a
	// private cache around Loader that Destroy releases.
	Cache *TextureCache

	// Loader uploads textures for the private cache. A nil Loader loads
	// geometry only, which is what headless tools and tests use.
	Loader TextureLoader
}
