package model

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/galleon/internal/logger"
	"github.com/Faultbox/galleon/pkg/formats"
)

// Load reads an OBJ file with its material libraries and builds a Model.
// A file that cannot be read or parsed returns a *LoadError. Missing
// material libraries and unreadable textures are logged and skipped.
func Load(path string, opts LoadOptions) (*Model, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(path)
	}

	obj, err := formats.LoadOBJFile(path, baseDir)
	if err != nil {
		return nil, newLoadError(path, err)
	}

	log := logger.Named("model")
	for _, w := range obj.Warnings {
		log.Warn(w, zap.String("path", path))
	}

	cache, owned := opts.Cache, false
	if cache == nil {
		cache, owned = NewTextureCache(opts.Loader), true
	}

	meshes, bounds := buildMeshes(obj, baseDir, cache)
	m := newModel(meshes, bounds)
	m.path = path
	m.cache = cache
	m.ownsCache = owned

	log.Info("loaded model",
		zap.String("path", path),
		zap.Int("meshes", len(meshes)),
		zap.Int("materials", len(obj.Materials)),
		zap.Int("triangles", obj.TriangleCount()),
		zap.Int("walkable", len(m.walkable)),
		zap.Int("textures", cache.Len()))
	return m, nil
}

// buildMeshes emits one vertex per face-vertex of every shape and
// accumulates the bounds in the same pass.
func buildMeshes(obj *formats.OBJ, baseDir string, cache *TextureCache) ([]SubMesh, Bounds) {
	bounds := EmptyBounds()
	meshes := make([]SubMesh, 0, len(obj.Shapes))

	for s := range obj.Shapes {
		shape := &obj.Shapes[s]
		mesh := SubMesh{
			Name:     shape.Name,
			Vertices: make([]Vertex, 0, len(shape.Indices)),
			Indices:  make([]uint32, 0, len(shape.Indices)),
		}

		for _, idx := range shape.Indices {
			v := Vertex{Position: obj.Positions[idx.Vertex]}
			if idx.Normal != formats.NoIndex {
				v.Normal = obj.Normals[idx.Normal]
			}
			if idx.TexCoord != formats.NoIndex {
				v.TexCoord = obj.TexCoords[idx.TexCoord]
			}
			bounds.Extend(v.Position)
			mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
			mesh.Vertices = append(mesh.Vertices, v)
		}

		if mat := obj.MaterialFor(shape); mat != nil {
			mesh.Material = *mat
			for slot, name := range mat.Textures() {
				if name == "" {
					continue
				}
				if tex, ok := cache.Get(filepath.Join(baseDir, name), materialRoles[slot]); ok {
					mesh.Textures = append(mesh.Textures, tex)
				}
			}
		}
		meshes = append(meshes, mesh)
	}
	return meshes, bounds
}
