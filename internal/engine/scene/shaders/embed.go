// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TunnelVertexShader is the vertex shader for tunnel sections.
//
//go:embed tunnel.vert
var TunnelVertexShader string

// TunnelFragmentShader is the fragment shader for tunnel sections.
//
//go:embed tunnel.frag
var TunnelFragmentShader string
