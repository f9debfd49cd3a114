// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roonium/internal/engine/gpu"
)

// CompileProgram compiles vertex and fragment shaders and links them.
// On failure it returns gpu.InvalidProgram and an error wrapping gpu.ErrCompileFailure.
// Validation is a separate step, see Validate.
func CompileProgram(vertexSrc, fragmentSrc string) (gpu.Program, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return gpu.InvalidProgram, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return gpu.InvalidProgram, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	if err := programStatus(program, gl.LINK_STATUS, "link"); err != nil {
		gl.DeleteProgram(program)
		return gpu.InvalidProgram, err
	}

	return gpu.Program(program), nil
}

// Validate checks that program can run in the current GL state. Core
// profiles fail validation without a bound vertex array, so bind the one the
// program will draw before calling it.
func Validate(program gpu.Program) error {
	p := uint32(program)
	gl.ValidateProgram(p)
	return programStatus(p, gl.VALIDATE_STATUS, "validate")
}

func programStatus(program uint32, param uint32, stage string) error {
	var status int32
	gl.GetProgramiv(program, param, &status)
	if status != gl.FALSE {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", stage, programLog(program), gpu.ErrCompileFailure)
}

func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "no info log"
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return string(log)
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := "no info log"
		if logLen > 0 {
			log := make([]byte, logLen)
			gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
			msg = string(log)
		}
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s: %w", name, msg, gpu.ErrCompileFailure)
	}

	return shader, nil
}

// Uniforms caches uniform locations of one program.
type Uniforms struct {
	program   uint32
	locations map[string]int32
}

// NewUniforms creates a location cache for program.
func NewUniforms(program gpu.Program) *Uniforms {
	return &Uniforms{
		program:   uint32(program),
		locations: make(map[string]int32),
	}
}

// Location returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func (u *Uniforms) Location(name string) int32 {
	if loc, ok := u.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(u.program, gl.Str(name+"\x00"))
	u.locations[name] = loc
	return loc
}
