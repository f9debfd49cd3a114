// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PyramidVertexShader transforms the pyramid by u_projection, u_view and u_model.
//
//go:embed pyramid.vert
var PyramidVertexShader string

// PyramidFragmentShader applies the texture with flat diffuse shading.
//
//go:embed pyramid.frag
var PyramidFragmentShader string
