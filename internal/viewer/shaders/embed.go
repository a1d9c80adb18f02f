// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WorldVertexShader transforms lit scene geometry.
//
//go:embed world.vert
var WorldVertexShader string

// WorldFragmentShader shades scene geometry with Blinn-Phong lighting.
//
//go:embed world.frag
var WorldFragmentShader string

// SkyVertexShader projects the skybox onto the far plane.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader colours the sky by view direction.
//
//go:embed sky.frag
var SkyFragmentShader string
