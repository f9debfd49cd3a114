// Package math provides the vector and matrix types used by the renderer.
package math

// Vec2 is a 2D vector. Used for texture coordinates.
type Vec2 struct {
	X, Y float32
}
