package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tunnel-rush/internal/engine/scene/shaders"
	"github.com/Faultbox/tunnel-rush/internal/engine/shader"
	"github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
	"github.com/Faultbox/tunnel-rush/pkg/math"
)

// MeshHandle identifies a section mesh uploaded to the GPU.
type MeshHandle uint32

// TextureParams configures wrapping and filtering of the tunnel texture.
type TextureParams struct {
	WrapS      int32
	WrapT      int32
	MagFilter  int32
	MinFilter  int32
	Anisotropy float32 // 0 or 1 disables anisotropic filtering
}

// DefaultTextureParams returns the tiling, mipmapped setup the tunnel wall uses.
func DefaultTextureParams() TextureParams {
	return TextureParams{
		WrapS:      gl.REPEAT,
		WrapT:      gl.REPEAT,
		MagFilter:  gl.LINEAR,
		MinFilter:  gl.LINEAR_MIPMAP_LINEAR,
		Anisotropy: 10,
	}
}

// Fog fades distant geometry into the clear color.
type Fog struct {
	Color [3]float32
	Near  float32
	Far   float32
}

type sectionMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// TunnelRenderer owns the GPU copies of live section meshes and draws them
// with a shared texture.
type TunnelRenderer struct {
	program *shader.Program

	texture     uint32
	ownsTexture bool

	meshes map[MeshHandle]*sectionMesh
	next   MeshHandle
}

// NewTunnelRenderer compiles the tunnel shader. fallbackTex is used until
// SetTexture is called.
func NewTunnelRenderer(fallbackTex uint32) (*TunnelRenderer, error) {
	program, err := shader.NewProgram(shaders.TunnelVertexShader, shaders.TunnelFragmentShader,
		"uViewProj", "uTexture", "uFogColor", "uFogNear", "uFogFar")
	if err != nil {
		return nil, fmt.Errorf("tunnel shader: %w", err)
	}

	return &TunnelRenderer{
		program: program,
		texture: fallbackTex,
		meshes:  make(map[MeshHandle]*sectionMesh),
	}, nil
}

// SetTexture uploads img as the wall texture.
func (tr *TunnelRenderer) SetTexture(img *image.RGBA, params TextureParams) {
	tr.releaseTexture()

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, params.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, params.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, params.MagFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, params.MinFilter)
	if params.Anisotropy > 1 {
		gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, params.Anisotropy)
	}

	tr.texture = texID
	tr.ownsTexture = true

	logger.Debug("tunnel texture uploaded",
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Float32("anisotropy", params.Anisotropy),
	)
}

// Upload copies a section mesh to the GPU. The CPU-side mesh may be dropped
// afterwards.
func (tr *TunnelRenderer) Upload(mesh *tunnel.Mesh) MeshHandle {
	sm := &sectionMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &sm.vao)
	gl.BindVertexArray(sm.vao)

	gl.GenBuffers(1, &sm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sm.vbo)
	vertexSize := int(unsafe.Sizeof(tunnel.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Color (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// TexCoord (location 3)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, int32(vertexSize), 9*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &sm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	tr.next++
	tr.meshes[tr.next] = sm
	return tr.next
}

// Release frees the GPU buffers behind h. Unknown handles are ignored.
func (tr *TunnelRenderer) Release(h MeshHandle) {
	sm, ok := tr.meshes[h]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &sm.vao)
	gl.DeleteBuffers(1, &sm.vbo)
	gl.DeleteBuffers(1, &sm.ebo)
	delete(tr.meshes, h)
}

// Len returns the number of meshes resident on the GPU.
func (tr *TunnelRenderer) Len() int {
	return len(tr.meshes)
}

// Render draws every uploaded section.
func (tr *TunnelRenderer) Render(viewProj math.Mat4, fog Fog) {
	if len(tr.meshes) == 0 {
		return
	}

	tr.program.Use()
	gl.UniformMatrix4fv(tr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(tr.program.Uniform("uFogColor"), fog.Color[0], fog.Color[1], fog.Color[2])
	gl.Uniform1f(tr.program.Uniform("uFogNear"), fog.Near)
	gl.Uniform1f(tr.program.Uniform("uFogFar"), fog.Far)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.Uniform1i(tr.program.Uniform("uTexture"), 0)

	for _, sm := range tr.meshes {
		gl.BindVertexArray(sm.vao)
		gl.DrawElements(gl.TRIANGLES, sm.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

func (tr *TunnelRenderer) releaseTexture() {
	if tr.ownsTexture && tr.texture != 0 {
		gl.DeleteTextures(1, &tr.texture)
	}
	tr.texture = 0
	tr.ownsTexture = false
}

// Destroy releases all resources.
func (tr *TunnelRenderer) Destroy() {
	for h := range tr.meshes {
		tr.Release(h)
	}
	tr.releaseTexture()
	tr.program.Delete()
}
