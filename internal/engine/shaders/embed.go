// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ModelVertexShader transforms lit, textured meshes and their shadow-space position.
//
//go:embed model.vert
var ModelVertexShader string

// ModelFragmentShader shades meshes with the directional light, the
// shadow map and height haze.
//
//go:embed model.frag
var ModelFragmentShader string

// OceanVertexShader displaces the ocean surface with travelling sine waves.
// It pairs with ModelFragmentShader.
//
//go:embed ocean.vert
var OceanVertexShader string

// DepthVertexShader renders into the shadow map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader is the empty fragment stage of the depth pass.
//
//go:embed depth.frag
var DepthFragmentShader string

//go:embed skybox.vert
var SkyboxVertexShader string

//go:embed skybox.frag
var SkyboxFragmentShader string

// LineVertexShader and LineFragmentShader draw flat-colored debug lines.
//
//go:embed line.vert
var LineVertexShader string

//go:embed line.frag
var LineFragmentShader string
