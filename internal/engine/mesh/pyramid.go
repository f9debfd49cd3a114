package mesh

import (
	"fmt"

	"github.com/Faultbox/roonium/pkg/math"
)

// triangle is one face of the pyramid before normals are attached.
type triangle struct {
	pos [3]math.Vec3
	uv  [3]math.Vec2
	// sharesNormal reuses the previous triangle's normal (second half of a quad).
	sharesNormal bool
}

// BuildPyramid builds a flat-shaded pyramid centered at the origin with its
// apex at +height/2 and its base at -height/2. Storage for exactly
// PyramidVertexCount vertices is taken from alloc.
func BuildPyramid(alloc Allocator, width, height, depth float32) (*Mesh, error) {
	x, y, z := width/2, height/2, depth/2

	apex := math.Vec3{X: 0, Y: y, Z: 0}
	frontLeft := math.Vec3{X: -x, Y: -y, Z: z}
	frontRight := math.Vec3{X: x, Y: -y, Z: z}
	backLeft := math.Vec3{X: -x, Y: -y, Z: -z}
	backRight := math.Vec3{X: x, Y: -y, Z: -z}

	sideUV := [3]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}

	faces := [...]triangle{
		{pos: [3]math.Vec3{frontLeft, frontRight, apex}, uv: sideUV},
		{pos: [3]math.Vec3{backRight, backLeft, apex}, uv: sideUV},
		{pos: [3]math.Vec3{backLeft, frontLeft, apex}, uv: sideUV},
		{pos: [3]math.Vec3{frontRight, backRight, apex}, uv: sideUV},
		{
			pos: [3]math.Vec3{backLeft, backRight, frontLeft},
			uv:  [3]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		},
		{
			pos:          [3]math.Vec3{frontLeft, backRight, frontRight},
			uv:           [3]math.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			sharesNormal: true,
		},
	}

	vertices, err := alloc.Alloc(PyramidVertexCount)
	if err != nil {
		return nil, fmt.Errorf("allocating pyramid: %w", err)
	}
	if len(vertices) < PyramidVertexCount {
		alloc.Free(vertices)
		return nil, fmt.Errorf("allocator returned %d of %d vertices: %w",
			len(vertices), PyramidVertexCount, ErrResourceExhausted)
	}

	var n math.Vec3
	for i, f := range faces {
		if !f.sharesNormal {
			n = math.Normal(f.pos[0], f.pos[1], f.pos[2])
		}
		for j := 0; j < 3; j++ {
			vertices[i*3+j] = Vertex{
				Position: f.pos[j],
				Normal:   n,
				TexCoord: f.uv[j],
			}
		}
	}

	return &Mesh{vertices: vertices, alloc: alloc}, nil
}
