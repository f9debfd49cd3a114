package mesh

import "unsafe"

// Vertex attribute layout for GPU upload.
const (
	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = unsafe.Offsetof(Vertex{}.Position)
	NormalOffset   = unsafe.Offsetof(Vertex{}.Normal)
	TexCoordOffset = unsafe.Offsetof(Vertex{}.TexCoord)
)

// Attribute locations used by the shaders.
const (
	PositionLocation uint32 = 0
	NormalLocation   uint32 = 1
	TexCoordLocation uint32 = 2
)
