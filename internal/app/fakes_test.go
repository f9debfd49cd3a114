package app

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/Faultbox/roonium/internal/engine/gpu"
	"github.com/Faultbox/roonium/internal/engine/input"
	"github.com/Faultbox/roonium/internal/engine/mesh"
	"github.com/Faultbox/roonium/pkg/math"
)

// callLog records calls across fakes so tests can check ordering.
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type fakeSurface struct {
	log *callLog

	// events is returned by successive polls; polls past the end return
	// no events.
	events      []input.Events
	polls       int
	width       int
	height      int
	titles      []string
	icon        image.Image
	iconErr     error
	swaps       int
	closedCount int
}

func newFakeSurface(log *callLog, events ...input.Events) *fakeSurface {
	return &fakeSurface{log: log, events: events, width: 800, height: 600}
}

func (s *fakeSurface) PollEvents() input.Events {
	s.polls++
	if s.polls <= len(s.events) {
		return s.events[s.polls-1]
	}
	return input.Events{}
}

func (s *fakeSurface) FramebufferSize() (int, int) { return s.width, s.height }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	s.log.add("Swap")
}

func (s *fakeSurface) SetTitle(title string) { s.titles = append(s.titles, title) }

func (s *fakeSurface) SetIcon(img image.Image) error {
	if s.iconErr != nil {
		return s.iconErr
	}
	s.icon = img
	return nil
}

func (s *fakeSurface) Close() {
	s.closedCount++
	s.log.add("SurfaceClose")
}

type fakeBackend struct {
	log *callLog

	compileErr  error
	validateErr error
	uploadErr   error

	vertexSrc   string
	fragmentSrc string
	uploaded    int
	textures    int
	lastTexture *image.RGBA
	// validatedWith is the vertex data bound when the program was validated.
	validatedWith gpu.Buffer
	validations   int
	viewport    [2]int
	boundTex    gpu.Texture
	usedProgram gpu.Program
	uniforms    map[string]math.Mat4
	vec3s       map[string]math.Vec3
	draws       []int

	deletedPrograms []gpu.Program
	deletedBuffers  []gpu.Buffer
	deletedTextures []gpu.Texture
}

func newFakeBackend(log *callLog) *fakeBackend {
	return &fakeBackend{
		log:      log,
		uniforms: make(map[string]math.Mat4),
		vec3s:    make(map[string]math.Vec3),
	}
}

func (b *fakeBackend) CompileProgram(vs, fs string) (gpu.Program, error) {
	b.log.add("CompileProgram")
	b.vertexSrc, b.fragmentSrc = vs, fs
	if b.compileErr != nil {
		return gpu.InvalidProgram, b.compileErr
	}
	return 3, nil
}

func (b *fakeBackend) ValidateProgram(p gpu.Program, buf gpu.Buffer) error {
	b.log.add("ValidateProgram")
	b.validations++
	b.validatedWith = buf
	return b.validateErr
}

func (b *fakeBackend) UploadMesh(v []mesh.Vertex) (gpu.Buffer, error) {
	b.log.add("UploadMesh")
	if b.uploadErr != nil {
		return 0, b.uploadErr
	}
	b.uploaded = len(v)
	return 5, nil
}

func (b *fakeBackend) UploadTexture(img *image.RGBA) (gpu.Texture, error) {
	b.log.add("UploadTexture")
	b.textures++
	b.lastTexture = img
	return 7, nil
}

func (b *fakeBackend) Viewport(w, h int)          { b.viewport = [2]int{w, h} }
func (b *fakeBackend) Clear()                     { b.log.add("Clear") }
func (b *fakeBackend) UseProgram(p gpu.Program)   { b.usedProgram = p }
func (b *fakeBackend) BindTexture(t gpu.Texture)  { b.boundTex = t }
func (b *fakeBackend) Draw(buf gpu.Buffer, n int) { b.draws = append(b.draws, n); b.log.add("Draw") }

func (b *fakeBackend) SetUniformMatrix4(p gpu.Program, name string, m math.Mat4) {
	b.uniforms[name] = m
}

func (b *fakeBackend) SetUniformVec3(p gpu.Program, name string, v math.Vec3) {
	b.vec3s[name] = v
}

func (b *fakeBackend) DeleteProgram(p gpu.Program) {
	b.deletedPrograms = append(b.deletedPrograms, p)
	b.log.add("DeleteProgram")
}

func (b *fakeBackend) DeleteBuffer(buf gpu.Buffer) {
	b.deletedBuffers = append(b.deletedBuffers, buf)
	b.log.add("DeleteBuffer")
}

func (b *fakeBackend) DeleteTexture(t gpu.Texture) {
	b.deletedTextures = append(b.deletedTextures, t)
	b.log.add("DeleteTexture")
}

type fakeDecoder struct {
	err   error
	calls int
}

func (d *fakeDecoder) Decode(data []byte) (*image.RGBA, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img, nil
}

var errBadImage = errors.New("bad image")

// steppedTime advances by step on every sample, starting at start.
type steppedTime struct {
	start float64
	step  float64
	n     int
}

func (s *steppedTime) source() float64 {
	t := s.start + float64(s.n)*s.step
	s.n++
	return t
}

type sleepRecorder struct {
	sleeps []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.sleeps = append(r.sleeps, d)
}
