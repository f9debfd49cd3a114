package app

import (
	"image"

	"github.com/Faultbox/roonium/internal/engine/gpu"
	"github.com/Faultbox/roonium/internal/engine/input"
	"github.com/Faultbox/roonium/internal/engine/mesh"
	"github.com/Faultbox/roonium/pkg/math"
)

// Surface is the window the loop presents to.
type Surface interface {
	PollEvents() input.Events
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	SwapBuffers()
	SetTitle(title string)
	SetIcon(img image.Image) error
	Close()
}

// Backend issues GPU work.
type Backend interface {
	CompileProgram(vertexSrc, fragmentSrc string) (gpu.Program, error)
	// ValidateProgram validates p with the vertex data of b bound.
	ValidateProgram(p gpu.Program, b gpu.Buffer) error
	UploadMesh(vertices []mesh.Vertex) (gpu.Buffer, error)
	UploadTexture(img *image.RGBA) (gpu.Texture, error)

	Viewport(width, height int)
	Clear()
	UseProgram(p gpu.Program)
	BindTexture(t gpu.Texture)
	SetUniformMatrix4(p gpu.Program, name string, m math.Mat4)
	SetUniformVec3(p gpu.Program, name string, v math.Vec3)
	Draw(b gpu.Buffer, count int)

	DeleteProgram(p gpu.Program)
	DeleteBuffer(b gpu.Buffer)
	DeleteTexture(t gpu.Texture)
}

// Decoder turns encoded image bytes into pixels.
type Decoder interface {
	Decode(data []byte) (*image.RGBA, error)
}
