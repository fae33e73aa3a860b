package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/galleon/internal/config"
	"github.com/Faultbox/galleon/internal/engine/debug"
	"github.com/Faultbox/galleon/internal/engine/model"
	"github.com/Faultbox/galleon/internal/engine/renderer"
	"github.com/Faultbox/galleon/internal/engine/shader"
	"github.com/Faultbox/galleon/internal/engine/shaders"
	"github.com/Faultbox/galleon/internal/engine/shadow"
	"github.com/Faultbox/galleon/internal/engine/skybox"
	"github.com/Faultbox/galleon/internal/engine/texture"
	"github.com/Faultbox/galleon/internal/game/world"
	"github.com/Faultbox/galleon/internal/logger"
)

// sceneObject is a model uploaded for drawing at a fixed place.
type sceneObject struct {
	model     *model.Model
	mesh      *renderer.MeshRenderer
	transform world.Transform
}

func (o *sceneObject) matrix() mgl32.Mat4 {
	return o.transform.Matrix()
}

// sceneItem is an item waiting to be placed at deck coordinates.
type sceneItem struct {
	item *world.Item
	at   [2]float32
}

type programs struct {
	model, ocean, depth, sky, line *shader.Program
}

// Overlay colors.
var (
	walkLineColor   = mgl32.Vec3{0.1, 0.9, 0.3}
	boundsLineColor = mgl32.Vec3{0.9, 0.8, 0.2}
)

// scene holds the GPU resources of everything drawn.
type scene struct {
	log      *zap.Logger
	textures *texture.Loader
	cache    *model.TextureCache
	white    uint32
	programs programs

	ship  *sceneObject
	ocean *sceneObject // optional
	moon  *sceneObject // optional

	items      []sceneItem
	itemMeshes map[*model.Model]*renderer.MeshRenderer

	sky     *skybox.Skybox // optional
	shadows *shadow.Map    // nil when shadows are off

	// Ship-space debug lines, nil when there is nothing to outline.
	walkLines   *debug.Lines
	boundsLines *debug.Lines

	lightDir   mgl32.Vec3
	lightColor mgl32.Vec3
}

func loadScene(cfg *config.Config) (*scene, error) {
	s := &scene{
		log:        logger.Named("scene"),
		textures:   texture.NewLoader(),
		itemMeshes: make(map[*model.Model]*renderer.MeshRenderer),
		lightDir:   mgl32.Vec3(cfg.Render.LightDir).Normalize(),
		lightColor: mgl32.Vec3(cfg.Render.LightColor),
	}
	// All models share one texture cache, so a texture used by several
	// models is uploaded once.
	s.cache = model.NewTextureCache(s.textures)
	s.white = renderer.NewWhiteTexture()

	if err := s.compilePrograms(); err != nil {
		s.destroy()
		return nil, err
	}

	sc := cfg.Scene
	var err error
	s.ship, err = s.loadObject(sc.ShipModel, world.Transform{
		Position: mgl32.Vec3(sc.ShipPosition),
		Scale:    sc.ShipScale,
		Yaw:      sc.ShipYaw,
	})
	if err != nil {
		s.destroy()
		return nil, fmt.Errorf("failed to load ship: %w", err)
	}

	s.walkLines = debug.NewLines(debug.WalkLines(s.ship.model.Walkable(), 0.02), walkLineColor)
	s.boundsLines = debug.NewLines(debug.BoundsLines(s.ship.model.Bounds()), boundsLineColor)

	s.ocean = s.loadOptional("ocean", sc.OceanModel, world.Transform{Position: mgl32.Vec3(sc.OceanPosition), Scale: sc.OceanScale})
	s.moon = s.loadOptional("moon", sc.MoonModel, world.Transform{Position: mgl32.Vec3(sc.MoonPosition), Scale: sc.MoonScale})
	s.loadItems(sc.Items)

	if sc.SkyboxDir != "" {
		s.sky, err = skybox.Load(skybox.FacePaths(sc.SkyboxDir, ".png"))
		if err != nil {
			s.log.Warn("skybox not loaded", zap.String("dir", sc.SkyboxDir), zap.Error(err))
		}
	}

	if cfg.Render.Shadows {
		s.shadows, err = shadow.NewMap(cfg.Render.ShadowMapSize)
		if err != nil {
			s.log.Warn("shadows disabled", zap.Error(err))
		}
	}

	renderer.CheckError("scene load")
	s.log.Info("scene loaded",
		zap.Int("items", len(s.items)),
		zap.Int("textures", s.cache.Len()),
		zap.Int("uploads", s.textures.Uploaded()),
	)
	return s, nil
}

func (s *scene) compilePrograms() error {
	var err error
	if s.programs.model, err = shader.New("model", shaders.ModelVertexShader, shaders.ModelFragmentShader); err != nil {
		return err
	}
	if s.programs.ocean, err = shader.New("ocean", shaders.OceanVertexShader, shaders.ModelFragmentShader); err != nil {
		return err
	}
	if s.programs.depth, err = shader.New("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader); err != nil {
		return err
	}
	if s.programs.sky, err = shader.New("skybox", shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader); err != nil {
		return err
	}
	if s.programs.line, err = shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return err
	}
	return nil
}

func (s *scene) loadModel(path string) (*model.Model, error) {
	return model.Load(path, model.LoadOptions{Cache: s.cache})
}

func (s *scene) loadObject(path string, t world.Transform) (*sceneObject, error) {
	m, err := s.loadModel(path)
	if err != nil {
		return nil, err
	}
	return &sceneObject{model: m, mesh: renderer.NewMeshRenderer(m, s.white), transform: t}, nil
}

// loadOptional loads a backdrop model, logging instead of failing.
func (s *scene) loadOptional(what, path string, t world.Transform) *sceneObject {
	if path == "" {
		return nil
	}
	obj, err := s.loadObject(path, t)
	if err != nil {
		s.log.Warn("scene part skipped", zap.String("part", what), zap.Error(err))
		return nil
	}
	return obj
}

func (s *scene) loadItems(items []config.ItemConfig) {
	byPath := make(map[string]*model.Model)
	for _, ic := range items {
		m, ok := byPath[ic.Model]
		if !ok {
			var err error
			if m, err = s.loadModel(ic.Model); err != nil {
				s.log.Warn("item skipped", zap.String("item", ic.Name), zap.Error(err))
				continue
			}
			byPath[ic.Model] = m
			s.itemMeshes[m] = renderer.NewMeshRenderer(m, s.white)
		}
		s.items = append(s.items, sceneItem{
			item: &world.Item{Name: ic.Name, Model: m, Scale: ic.Scale},
			at:   ic.At,
		})
	}
}

// shipBounds returns the ship's world-space box under t.
func (s *scene) shipBounds(t world.Transform) model.Bounds {
	return s.ship.model.Bounds().Transform(t.Matrix())
}

func (s *scene) destroy() {
	for _, obj := range []*sceneObject{s.ship, s.ocean, s.moon} {
		if obj != nil {
			obj.mesh.Destroy()
			obj.model.Destroy()
		}
	}
	for m, mesh := range s.itemMeshes {
		mesh.Destroy()
		m.Destroy()
	}
	if s.sky != nil {
		s.sky.Destroy()
	}
	if s.shadows != nil {
		s.shadows.Destroy()
	}
	s.walkLines.Destroy()
	s.boundsLines.Destroy()
	for _, p := range []*shader.Program{s.programs.model, s.programs.ocean, s.programs.depth, s.programs.sky, s.programs.line} {
		if p != nil {
			p.Delete()
		}
	}
	// Models borrow from the shared cache; it goes last.
	s.cache.Release()
	texture.Delete(s.white)
}
