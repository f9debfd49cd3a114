// Package renderer is the OpenGL backend of the render loop.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roonium/internal/engine/gpu"
	"github.com/Faultbox/roonium/internal/engine/mesh"
	"github.com/Faultbox/roonium/internal/engine/shader"
	"github.com/Faultbox/roonium/internal/logger"
	"github.com/Faultbox/roonium/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
	DepthTest  bool
	CullFaces  bool
}

// DefaultConfig returns the renderer state the pyramid is drawn with.
func DefaultConfig() Config {
	return Config{
		ClearColor: [4]float32{0.9, 0.9, 0.9, 1.0},
		DepthTest:  true,
		CullFaces:  true,
	}
}

// vertexData is the GPU side of an uploaded mesh.
type vertexData struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer handles all OpenGL calls.
type Renderer struct {
	config Config

	buffers  map[gpu.Buffer]vertexData
	uniforms map[gpu.Program]*shader.Uniforms
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		buffers:  make(map[gpu.Buffer]vertexData),
		uniforms: make(map[gpu.Program]*shader.Uniforms),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.CullFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	return r, nil
}

// CompileProgram compiles and links a shader program.
func (r *Renderer) CompileProgram(vertexSrc, fragmentSrc string) (gpu.Program, error) {
	p, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return p, err
	}
	r.uniforms[p] = shader.NewUniforms(p)
	logger.Debug("shader program created", zap.Uint32("program", uint32(p)))
	return p, nil
}

// ValidateProgram validates p with the vertex array of b bound, the state p
// is drawn in.
func (r *Renderer) ValidateProgram(p gpu.Program, b gpu.Buffer) error {
	d, ok := r.buffers[b]
	if !ok {
		return fmt.Errorf("validate against unknown buffer %d", b)
	}
	gl.BindVertexArray(d.vao)
	defer gl.BindVertexArray(0)
	return shader.Validate(p)
}

// UploadMesh creates a vertex array and buffer holding vertices.
func (r *Renderer) UploadMesh(vertices []mesh.Vertex) (gpu.Buffer, error) {
	if len(vertices) == 0 {
		return 0, fmt.Errorf("no vertices to upload")
	}

	var d vertexData
	d.count = int32(len(vertices))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(mesh.VertexStride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(mesh.PositionLocation)
	gl.VertexAttribPointerWithOffset(mesh.PositionLocation, 3, gl.FLOAT, false, mesh.VertexStride, mesh.PositionOffset)
	gl.EnableVertexAttribArray(mesh.NormalLocation)
	gl.VertexAttribPointerWithOffset(mesh.NormalLocation, 3, gl.FLOAT, false, mesh.VertexStride, mesh.NormalOffset)
	gl.EnableVertexAttribArray(mesh.TexCoordLocation)
	gl.VertexAttribPointerWithOffset(mesh.TexCoordLocation, 2, gl.FLOAT, false, mesh.VertexStride, mesh.TexCoordOffset)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	handle := gpu.Buffer(d.vao)
	r.buffers[handle] = d

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", d.vao),
		zap.Uint32("vbo", d.vbo),
		zap.Int32("vertices", d.count),
	)
	return handle, nil
}

// UploadTexture creates a mipmapped 2D texture from img.
func (r *Renderer) UploadTexture(img *image.RGBA) (gpu.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("empty texture")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("texture uploaded",
		zap.Uint32("texture", id),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return gpu.Texture(id), nil
}

// Viewport sets the drawable area.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears color and depth buffers.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UseProgram makes p the current program.
func (r *Renderer) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

// BindTexture binds t to texture unit 0. Zero unbinds.
func (r *Renderer) BindTexture(t gpu.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

// SetUniformMatrix4 uploads m to the named uniform of p.
// Missing uniforms are ignored, as OpenGL does for location -1.
func (r *Renderer) SetUniformMatrix4(p gpu.Program, name string, m math.Mat4) {
	u, ok := r.uniforms[p]
	if !ok {
		return
	}
	gl.UniformMatrix4fv(u.Location(name), 1, false, m.Ptr())
}

// SetUniformVec3 uploads v to the named uniform of p.
func (r *Renderer) SetUniformVec3(p gpu.Program, name string, v math.Vec3) {
	u, ok := r.uniforms[p]
	if !ok {
		return
	}
	gl.Uniform3f(u.Location(name), v.X, v.Y, v.Z)
}

// Draw draws count vertices of b as triangles.
func (r *Renderer) Draw(b gpu.Buffer, count int) {
	d, ok := r.buffers[b]
	if !ok {
		return
	}
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}

// DeleteProgram deletes a shader program.
func (r *Renderer) DeleteProgram(p gpu.Program) {
	if _, ok := r.uniforms[p]; !ok || !p.Valid() {
		return
	}
	gl.UseProgram(0)
	gl.DeleteProgram(uint32(p))
	delete(r.uniforms, p)
}

// DeleteBuffer deletes the vertex buffer and vertex array behind b.
func (r *Renderer) DeleteBuffer(b gpu.Buffer) {
	d, ok := r.buffers[b]
	if !ok {
		return
	}
	gl.DisableVertexAttribArray(mesh.PositionLocation)
	gl.DisableVertexAttribArray(mesh.NormalLocation)
	gl.DisableVertexAttribArray(mesh.TexCoordLocation)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	delete(r.buffers, b)
}

// DeleteTexture deletes a texture.
func (r *Renderer) DeleteTexture(t gpu.Texture) {
	if t == 0 {
		return
	}
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

// Close releases anything still held by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for b := range r.buffers {
		r.DeleteBuffer(b)
	}
	for p := range r.uniforms {
		r.DeleteProgram(p)
	}
}
