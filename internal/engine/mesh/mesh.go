// Package mesh builds the procedural geometry drawn by the render loop.
package mesh

import (
	"fmt"

	"github.com/Faultbox/roonium/internal/engine/gpu"
	"github.com/Faultbox/roonium/pkg/math"
)

// PyramidVertexCount is the number of vertices emitted by BuildPyramid:
// four slanted sides plus a bottom quad split in two, three vertices each.
const PyramidVertexCount = 18

// Vertex is a mesh vertex with position, normal, and texture coordinates.
// The layout is eight tightly packed float32 values.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Uploader sends vertex data to the GPU.
type Uploader interface {
	UploadMesh(vertices []Vertex) (gpu.Buffer, error)
}

// BufferDeleter releases GPU vertex data.
type BufferDeleter interface {
	DeleteBuffer(b gpu.Buffer)
}

// Mesh owns its vertex storage and, once uploaded, the GPU buffer built from it.
// Release both with Destroy.
type Mesh struct {
	vertices []Vertex
	alloc    Allocator

	buffer   gpu.Buffer
	uploaded bool
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Vertices returns the vertex data. Callers must not modify it.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Count returns the number of vertices.
func (m *Mesh) Count() int {
	return len(m.vertices)
}

// Upload hands the vertices to the GPU and keeps the returned buffer.
func (m *Mesh) Upload(u Uploader) error {
	if m.vertices == nil {
		return fmt.Errorf("upload of destroyed mesh")
	}
	if m.uploaded {
		return nil
	}
	buf, err := u.UploadMesh(m.vertices)
	if err != nil {
		return fmt.Errorf("uploading mesh: %w", err)
	}
	m.buffer = buf
	m.uploaded = true
	return nil
}

// Buffer returns the GPU buffer and whether the mesh has been uploaded.
func (m *Mesh) Buffer() (gpu.Buffer, bool) {
	return m.buffer, m.uploaded
}

// Destroy deletes the GPU buffer through d (if uploaded) and returns the
// vertex storage to its allocator. Safe to call more than once.
func (m *Mesh) Destroy(d BufferDeleter) {
	if m.uploaded && d != nil {
		d.DeleteBuffer(m.buffer)
	}
	m.uploaded = false
	m.buffer = 0

	if m.vertices != nil {
		m.alloc.Free(m.vertices)
		m.vertices = nil
	}
}

// Bounds computes the bounding box of the vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.vertices[0].Position, Max: m.vertices[0].Position}
	for _, v := range m.vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
