// Package scene renders the tunnel: section meshes, the wall texture and
// distance fog, seen through the chase camera.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tunnel-rush/internal/engine/camera"
)

// Config contains scene configuration options.
type Config struct {
	FogEnabled bool
	FogColor   [3]float32
	FogNear    float32
	FogFar     float32
}

// DefaultConfig returns a scene configuration whose fog matches the
// renderer's clear color.
func DefaultConfig() Config {
	return Config{
		FogEnabled: true,
		FogColor:   [3]float32{0.02, 0.02, 0.05},
		FogNear:    20,
		FogFar:     110,
	}
}

// Scene owns the GPU-side tunnel state.
type Scene struct {
	config Config

	tunnel      *TunnelRenderer
	fallbackTex uint32
}

// New creates a new scene. Requires a current GL context.
func New(cfg Config) (*Scene, error) {
	s := &Scene{config: cfg}

	s.createFallbackTexture()

	var err error
	s.tunnel, err = NewTunnelRenderer(s.fallbackTex)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating tunnel renderer: %w", err)
	}

	return s, nil
}

// Tunnel returns the section mesh renderer.
func (s *Scene) Tunnel() *TunnelRenderer {
	return s.tunnel
}

// Render draws the tunnel from the camera's point of view.
func (s *Scene) Render(cam *camera.ChaseCamera) {
	fog := Fog{Color: s.config.FogColor, Near: s.config.FogNear, Far: s.config.FogFar}
	if !s.config.FogEnabled {
		// Push fog past the far plane
		fog.Near, fog.Far = cam.Far*2, cam.Far*3
	}
	s.tunnel.Render(cam.ViewProjection(), fog)
}

// FallbackTexture returns the 1x1 white texture used when the wall texture
// cannot be loaded.
func (s *Scene) FallbackTexture() uint32 {
	return s.fallbackTex
}

func (s *Scene) createFallbackTexture() {
	gl.GenTextures(1, &s.fallbackTex)
	gl.BindTexture(gl.TEXTURE_2D, s.fallbackTex)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.tunnel != nil {
		s.tunnel.Destroy()
		s.tunnel = nil
	}
	if s.fallbackTex != 0 {
		gl.DeleteTextures(1, &s.fallbackTex)
		s.fallbackTex = 0
	}
}
