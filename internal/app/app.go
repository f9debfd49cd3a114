// Package app runs the render loop: it owns the GPU resources for the
// pyramid and draws it until the window asks to close.
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roonium/internal/config"
	"github.com/Faultbox/roonium/internal/engine/camera"
	"github.com/Faultbox/roonium/internal/engine/frameclock"
	"github.com/Faultbox/roonium/internal/engine/gpu"
	"github.com/Faultbox/roonium/internal/engine/lighting"
	"github.com/Faultbox/roonium/internal/engine/mesh"
	"github.com/Faultbox/roonium/internal/engine/shader/shaders"
	"github.com/Faultbox/roonium/internal/engine/texture"
	"github.com/Faultbox/roonium/internal/logger"
	"github.com/Faultbox/roonium/pkg/math"
)

// RotationSpeed is the model's spin about Y in radians per second.
const RotationSpeed = 3.0

// Uniform names shared with the pyramid shaders.
const (
	UniformProjection = "u_projection"
	UniformView       = "u_view"
	UniformModel      = "u_model"
	UniformLightDir   = "u_light_dir"
)

// ErrNotRunning is returned by Run before a successful Init or after Close.
var ErrNotRunning = errors.New("app is not running")

// Deps are the collaborators of an App.
type Deps struct {
	Surface Surface
	Backend Backend
	Decoder Decoder

	// Time drives the frame clock. Defaults to frameclock.MonotonicSource.
	Time frameclock.TimeSource
	// Sleep is used while waiting out the frame budget. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Allocator provides mesh storage. Defaults to a heap allocator
	// limited by the mesh budget in the config.
	Allocator mesh.Allocator

	// Texture and Icon hold encoded images. Either may be empty.
	Texture []byte
	Icon    []byte
}

// App is the render loop state machine.
type App struct {
	cfg  *config.Config
	deps Deps
	log  *zap.Logger

	camera   camera.Camera
	clock    *frameclock.Clock
	lightDir math.Vec3

	mesh     *mesh.Mesh
	program  gpu.Program
	texture  gpu.Texture
	textured bool

	state          State
	quit           bool
	shownFPS       int
	frames         uint64
	geometryWarned bool
}

// New validates deps and prepares an App in the Uninitialized state.
// No GPU work happens until Init.
func New(cfg *config.Config, deps Deps) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if deps.Surface == nil || deps.Backend == nil || deps.Decoder == nil {
		return nil, errors.New("surface, backend and decoder are required")
	}
	if deps.Time == nil {
		deps.Time = frameclock.MonotonicSource()
	}
	if deps.Allocator == nil {
		deps.Allocator = mesh.NewHeapAllocator(cfg.Mesh.MaxVertices)
	}

	a := &App{
		cfg:      cfg,
		deps:     deps,
		log:      logger.Named("app"),
		camera:   newCamera(cfg),
		lightDir: lighting.SunDirection(cfg.Light.Longitude, cfg.Light.Latitude),
		clock:    frameclock.New(deps.Time, cfg.Window.TargetFPS),
		program:  gpu.InvalidProgram,
		state:    Uninitialized,
		shownFPS: -1,
	}
	if deps.Sleep != nil {
		a.clock.SetSleep(deps.Sleep)
	}
	return a, nil
}

func newCamera(cfg *config.Config) camera.Camera {
	c := camera.Default()
	c.Position = vec3(cfg.Camera.Position)
	c.Target = vec3(cfg.Camera.Target)
	c.Up = vec3(cfg.Camera.Up)
	c.FOV = math.DegToRad(cfg.Camera.FOVDegrees)
	c.SetViewport(cfg.Window.Width, cfg.Window.Height)
	return c
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Init creates the GPU resources. On failure everything created so far is
// released and the App stays Uninitialized.
func (a *App) Init() error {
	if a.state != Uninitialized {
		return fmt.Errorf("init in state %s", a.state)
	}

	if err := a.createResources(); err != nil {
		a.releaseResources()
		return err
	}

	a.deps.Surface.SetTitle(a.cfg.Window.Title)
	a.state = Running
	a.log.Info("initialized",
		zap.Int("vertices", a.mesh.Count()),
		zap.Bool("textured", a.textured),
		zap.Int("target_fps", a.clock.TargetFPS()),
	)
	return nil
}

func (a *App) createResources() error {
	m := a.cfg.Mesh
	pyramid, err := mesh.BuildPyramid(a.deps.Allocator, m.Width, m.Height, m.Depth)
	if err != nil {
		return fmt.Errorf("building pyramid: %w", err)
	}
	a.mesh = pyramid

	if err := a.mesh.Upload(a.deps.Backend); err != nil {
		return err
	}

	a.program, err = a.deps.Backend.CompileProgram(shaders.PyramidVertexShader, shaders.PyramidFragmentShader)
	if err != nil {
		a.program = gpu.InvalidProgram
		return fmt.Errorf("compiling pyramid program: %w", err)
	}

	buf, ok := a.mesh.Buffer()
	if !ok {
		return errors.New("pyramid has no vertex buffer")
	}
	if err := a.deps.Backend.ValidateProgram(a.program, buf); err != nil {
		return fmt.Errorf("validating pyramid program: %w", err)
	}

	img := a.decode("texture", a.deps.Texture)
	a.textured = img != nil
	if !a.textured {
		// An unbound sampler reads black; white keeps the shading visible.
		img = texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	a.texture, err = a.deps.Backend.UploadTexture(img)
	if err != nil {
		return fmt.Errorf("uploading texture: %w", err)
	}

	if img := a.decode("icon", a.deps.Icon); img != nil {
		if err := a.deps.Surface.SetIcon(img); err != nil {
			a.log.Warn("window icon not set", zap.Error(err))
		}
	}
	return nil
}

// decode returns nil for missing or undecodable data.
func (a *App) decode(what string, data []byte) *image.RGBA {
	if len(data) == 0 {
		a.log.Debug("no image data", zap.String("image", what))
		return nil
	}
	img, err := a.deps.Decoder.Decode(data)
	if err != nil {
		a.log.Warn("image decode failed, continuing without it",
			zap.String("image", what), zap.Error(err))
		return nil
	}
	return img
}

// releaseResources deletes GPU objects in reverse creation order except the
// texture, which goes last. Safe to call repeatedly.
func (a *App) releaseResources() {
	b := a.deps.Backend
	if a.program.Valid() {
		b.DeleteProgram(a.program)
	}
	a.program = gpu.InvalidProgram

	if a.mesh != nil {
		a.mesh.Destroy(b)
		a.mesh = nil
	}

	if a.texture != 0 {
		b.DeleteTexture(a.texture)
		a.texture = 0
	}
}

// Run draws frames until a quit is requested.
func (a *App) Run() error {
	if a.state != Running {
		return ErrNotRunning
	}
	a.log.Info("starting render loop")

	for !a.quit {
		if a.clock.Tick() == frameclock.Skip {
			a.clock.Wait()
			continue
		}

		if ev := a.deps.Surface.PollEvents(); ev.QuitRequested() {
			a.quit = true
		}
		a.updateTitle()

		a.renderFrame()

		a.deps.Surface.SwapBuffers()
		a.clock.MarkSwap()
		a.frames++
	}

	a.log.Info("render loop finished", zap.Uint64("frames", a.frames))
	return nil
}

func (a *App) renderFrame() {
	b := a.deps.Backend

	w, h := a.deps.Surface.FramebufferSize()
	a.camera.SetViewport(w, h)
	b.Viewport(w, h)

	projection := a.camera.Projection()
	view := a.camera.View()
	model := math.RotateY(math.Identity(), float32(a.clock.Now()*RotationSpeed))

	if a.cfg.Debug.CheckGeometry {
		a.checkGeometry(projection, view, model)
	}

	b.Clear()
	b.UseProgram(a.program)
	b.BindTexture(a.texture)
	b.SetUniformMatrix4(a.program, UniformProjection, projection)
	b.SetUniformMatrix4(a.program, UniformView, view)
	b.SetUniformMatrix4(a.program, UniformModel, model)
	b.SetUniformVec3(a.program, UniformLightDir, a.lightDir)

	if buf, ok := a.mesh.Buffer(); ok {
		b.Draw(buf, a.mesh.Count())
	}
}

// checkGeometry warns once about non-finite or degenerate transforms.
func (a *App) checkGeometry(projection, view, model math.Mat4) {
	if a.geometryWarned {
		return
	}
	var err error
	switch {
	case !projection.IsFinite():
		err = fmt.Errorf("projection: %w", math.ErrDegenerateGeometry)
	case !model.IsFinite():
		err = fmt.Errorf("model: %w", math.ErrDegenerateGeometry)
	case !view.IsFinite():
		err = fmt.Errorf("view: %w", math.ErrDegenerateGeometry)
	default:
		err = a.camera.Check()
	}
	if err != nil {
		a.geometryWarned = true
		a.log.Warn("degenerate geometry", zap.Error(err))
	}
}

func (a *App) updateTitle() {
	fps := a.clock.FPS()
	if fps == a.shownFPS {
		return
	}
	a.shownFPS = fps
	a.deps.Surface.SetTitle(fmt.Sprintf("%s; FPS: %d", a.cfg.Window.Title, fps))
	if a.cfg.Debug.LogFPS {
		a.log.Debug("fps", zap.Int("fps", fps))
	}
}

// Quit asks the loop to stop after the current frame.
func (a *App) Quit() {
	a.quit = true
}

// Close releases GPU resources and then the surface. Safe to call more
// than once.
func (a *App) Close() {
	if a.state == Terminated {
		return
	}
	a.releaseResources()
	a.deps.Surface.Close()
	a.state = Terminated
	a.log.Info("closed")
}

// State returns the lifecycle stage.
func (a *App) State() State {
	return a.state
}

// Frames returns the number of frames drawn so far.
func (a *App) Frames() uint64 {
	return a.frames
}
