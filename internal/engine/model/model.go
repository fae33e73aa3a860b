package model

import "github.com/go-gl/mathgl/mgl32"

// Model is a loaded mesh with its walkable surface index.
type Model struct {
	path        string
	meshes      []SubMesh
	bounds      Bounds
	boundsValid bool
	walkable    []WalkTriangle
	grid        *WalkGrid

	cache     *TextureCache
	ownsCache bool
}

// New builds a Model from meshes already in memory, such as generated
// geometry. The meshes are not copied and must not be modified afterwards.
func New(meshes []SubMesh) *Model {
	bounds := EmptyBounds()
	for m := range meshes {
		for _, v := range meshes[m].Vertices {
			bounds.Extend(v.Position)
		}
	}
	return newModel(meshes, bounds)
}

func newModel(meshes []SubMesh, bounds Bounds) *Model {
	walkable := ExtractWalkSurface(meshes)
	return &Model{
		meshes:      meshes,
		bounds:      bounds,
		boundsValid: true,
		walkable:    walkable,
		grid:        BuildWalkGrid(walkable, bounds),
	}
}

// Path returns the file the model was loaded from, empty for New.
func (m *Model) Path() string { return m.path }

// Meshes returns the sub-meshes in file order.
func (m *Model) Meshes() []SubMesh { return m.meshes }

// Bounds returns the model-space bounding box. It is the inverted empty
// box when the model has no vertices.
func (m *Model) Bounds() Bounds { return m.bounds }

// BoundsValid reports whether the model finished loading.
func (m *Model) BoundsValid() bool { return m != nil && m.boundsValid }

// Walkable returns the triangles that qualify as floor.
func (m *Model) Walkable() []WalkTriangle { return m.walkable }

// Grid returns the walk grid, nil for a model without vertices.
func (m *Model) Grid() *WalkGrid { return m.grid }

// HeightAt returns the walkable height at model-space (x, z) closest to refY.
func (m *Model) HeightAt(x, z, refY float32) (float32, bool) {
	if m == nil {
		return 0, false
	}
	return m.grid.HeightAt(x, z, refY)
}

// TriangleCount returns the number of triangles over all sub-meshes.
func (m *Model) TriangleCount() int {
	n := 0
	for i := range m.meshes {
		n += m.meshes[i].TriangleCount()
	}
	return n
}

// Center returns the center of the bounds.
func (m *Model) Center() mgl32.Vec3 {
	return m.bounds.Center()
}

// Destroy releases the textures of a privately owned cache. Textures from
// a shared cache stay alive until the cache owner releases it.
func (m *Model) Destroy() {
	if m == nil {
		return
	}
	if m.ownsCache {
		m.cache.Release()
	}
	m.cache = nil
	for i := range m.meshes {
		m.meshes[i].Textures = nil
	}
}
