package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/renderer"
	"github.com/Faultbox/galleon/internal/engine/shader"
	"github.com/Faultbox/galleon/internal/engine/shadow"
	"github.com/Faultbox/galleon/internal/engine/skybox"
)

// render draws one frame: the shadow pass, the lit ship and items, the
// unlit moon, the ocean, the debug overlay and finally the sky.
func (a *App) render() {
	s := a.scene
	view, eye := a.viewMatrix()
	projection := a.renderer.Projection()
	shipMatrix := a.deck.Transform.Matrix()

	lightSpace := mgl32.Ident4()
	if s.shadows != nil {
		lightSpace = shadow.DirectionalLightMatrix(s.lightDir, s.shipBounds(a.deck.Transform))
		a.shadowPass(lightSpace, shipMatrix)
	}

	a.renderer.Begin()

	p := s.programs.model
	p.Use()
	a.setFrameUniforms(p, view, projection, lightSpace, eye)
	p.SetBool("unlit", false)
	s.ship.mesh.Draw(p, shipMatrix)
	for _, it := range a.inventory.Items() {
		s.itemMeshes[it.Model].Draw(p, it.Matrix(a.deck.Transform))
	}
	if s.moon != nil {
		p.SetBool("unlit", true)
		s.moon.mesh.Draw(p, s.moon.matrix())
	}

	if s.ocean != nil {
		o := s.programs.ocean
		o.Use()
		a.setFrameUniforms(o, view, projection, lightSpace, eye)
		o.SetBool("unlit", false)
		o.SetFloat("time", a.elapsed)
		o.SetFloat("waveAmplitude", a.cfg.Scene.WaveAmplitude)
		o.SetFloat("waveFrequency", a.cfg.Scene.WaveFrequency)
		o.SetFloat("waveSpeed", a.cfg.Scene.WaveSpeed)
		s.ocean.mesh.Draw(o, s.ocean.matrix())
	}

	if a.showOverlay {
		l := s.programs.line
		l.Use()
		l.SetMat4("view", view)
		l.SetMat4("projection", projection)
		s.walkLines.Draw(l, shipMatrix)
		s.boundsLines.Draw(l, shipMatrix)
	}

	if s.sky != nil {
		rc := a.cfg.Render
		s.sky.Draw(s.programs.sky, view, projection, skybox.Haze{
			Color:    mgl32.Vec3(rc.HazeColor),
			Height:   rc.HazeHeight,
			Strength: rc.HazeStrength,
		})
	}

	renderer.CheckError("frame")
}

// shadowPass renders the ship and the items on it into the shadow map.
// The backdrop is too far away to cast onto the deck.
func (a *App) shadowPass(lightSpace, shipMatrix mgl32.Mat4) {
	s := a.scene
	d := s.programs.depth

	s.shadows.Begin()
	d.Use()
	d.SetMat4("lightSpace", lightSpace)
	s.ship.mesh.DrawDepth(d, shipMatrix)
	for _, it := range a.inventory.Items() {
		s.itemMeshes[it.Model].DrawDepth(d, it.Matrix(a.deck.Transform))
	}
	s.shadows.End()

	renderer.CheckError("shadow pass")
}

// setFrameUniforms sets what every lit program shares in a frame. p must
// be in use.
func (a *App) setFrameUniforms(p *shader.Program, view, projection, lightSpace mgl32.Mat4, eye mgl32.Vec3) {
	s := a.scene
	rc := a.cfg.Render

	p.SetMat4("view", view)
	p.SetMat4("projection", projection)
	p.SetMat4("lightSpace", lightSpace)
	p.SetVec3("viewPos", eye)
	p.SetVec3("lightDir", s.lightDir)
	p.SetVec3("lightColor", s.lightColor)
	p.SetVec3("hazeColor", mgl32.Vec3(rc.HazeColor))
	p.SetFloat("hazeDensity", rc.HazeDensity)

	p.SetBool("shadowsEnabled", s.shadows != nil)
	p.SetInt("shadowMap", renderer.UnitShadow)
	if s.shadows != nil {
		s.shadows.BindDepth(renderer.UnitShadow)
	}
}
