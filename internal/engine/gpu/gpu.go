// Package gpu declares the opaque handles exchanged with the GPU backend.
package gpu

import "errors"

// ErrCompileFailure is returned when a shader fails to compile, link or validate.
var ErrCompileFailure = errors.New("shader compile failure")

// Program identifies a linked shader program.
type Program uint32

// InvalidProgram is the handle left behind by a failed compile.
// It never names a live program.
const InvalidProgram = ^Program(0)

// Valid reports whether p may be used for drawing.
func (p Program) Valid() bool {
	return p != 0 && p != InvalidProgram
}

// Buffer identifies uploaded vertex data (a vertex array plus its buffer).
type Buffer uint32

// Texture identifies an uploaded 2D texture. Zero means no texture.
type Texture uint32
