package engine

import (
	"errors"
	"log"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/tern3d/tern/common"
	"github.com/tern3d/tern/engine/camera"
	"github.com/tern3d/tern/engine/config"
	"github.com/tern3d/tern/engine/renderer"
	"github.com/tern3d/tern/engine/renderer/backend"
	"github.com/tern3d/tern/engine/scene"
	"github.com/tern3d/tern/engine/window"
)

// engineImpl owns the window, GPU backend, render pass, camera, and scene,
// and drives the per-frame update/draw cycle from the window message loop.
type engineImpl struct {
	cfg config.Config

	window     window.Window
	backend    backend.Backend
	pass       renderer.PhongPass
	camera     camera.Camera
	controller camera.CameraController
	scene      *scene.Scene

	start     time.Time
	lastFrame time.Time
}

// Engine is the main entry point: it wires the window, backend, camera, and
// render pass together and runs the frame loop until the window closes.
type Engine interface {
	// Window returns the platform window.
	Window() window.Window

	// Backend returns the GPU backend, for uploading model resources.
	Backend() backend.Backend

	// Scene returns the scene rendered each frame. Populate it before Run.
	Scene() *scene.Scene

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Controller returns the input-driven camera controller.
	Controller() camera.CameraController

	// Run starts the frame loop. Blocks until the window closes, then
	// releases all GPU resources.
	Run()

	// Quit closes the window, ending the frame loop.
	Quit()
}

var _ Engine = &engineImpl{}

// NewEngine creates the window, GPU backend, render pass, camera, and scene
// from the given configuration and wires all input callbacks. Panics if the
// window or GPU device cannot be created; there is nothing to render without
// either.
//
// Parameters:
//   - options: functional options for configuration
//
// Returns:
//   - Engine: the engine, ready for scene setup and Run
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		cfg: config.Default(),
	}
	for _, opt := range options {
		opt(e)
	}

	e.window = window.NewWindow(
		window.WithTitle(e.cfg.Window.Title),
		window.WithWidth(e.cfg.Window.Width),
		window.WithHeight(e.cfg.Window.Height),
	)

	cc := e.cfg.Renderer.ClearColor
	e.backend = backend.NewWGPU(
		e.window.SurfaceDescriptor(),
		backend.WithClearColor(wgpu.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}),
	)
	e.backend.ConfigureSurface(e.window.Width(), e.window.Height())

	e.camera = cameraFromConfig(e.cfg, float32(e.window.Width())/float32(e.window.Height()))
	e.controller = camera.NewCameraController(
		camera.WithSpeed(float32(e.cfg.Camera.Speed)),
	)

	e.scene = scene.NewScene()
	lp := e.cfg.Light.Position
	e.scene.LightSource.Position = [3]float32{float32(lp[0]), float32(lp[1]), float32(lp[2])}
	e.scene.SetLightOrbitSpeed(float32(e.cfg.Light.OrbitSpeed))

	passOptions := []renderer.PhongPassOption{
		renderer.WithAmbient([4]float32{
			float32(e.cfg.Renderer.Ambient[0]),
			float32(e.cfg.Renderer.Ambient[1]),
			float32(e.cfg.Renderer.Ambient[2]),
			float32(e.cfg.Renderer.Ambient[3]),
		}),
	}
	if e.cfg.Renderer.Wireframe {
		passOptions = append(passOptions, renderer.WithWireframe())
	}
	e.pass = renderer.NewPhongPass(e.backend, e.camera, passOptions...)

	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		e.pass.Resize(width, height)
		e.camera.SetAspect(float32(width) / float32(height))
	})
	e.window.SetKeyCallback(func(key int, pressed bool) {
		e.controller.ProcessKey(key, pressed)
	})
	e.window.SetMouseButtonCallback(func(button int, pressed bool) {
		e.controller.ProcessMouseButton(button, pressed)
	})
	e.window.SetMouseMoveCallback(func(x, y float64) {
		e.controller.ProcessMouseMove(x, y)
	})
	e.window.SetScrollCallback(e.dolly)
	e.window.SetUpdateCallback(e.frame)

	return e
}

// cameraFromConfig builds the scene camera from the configuration. The
// configured field of view is in degrees and is converted to the radians the
// camera's projection math expects.
func cameraFromConfig(cfg config.Config, aspect float32) camera.Camera {
	eye := cfg.Camera.Eye
	return camera.NewCamera(
		camera.WithEye(float32(eye[0]), float32(eye[1]), float32(eye[2])),
		camera.WithFov(common.Radians(float32(cfg.Camera.FovDegrees))),
		camera.WithAspect(aspect),
	)
}

func (e *engineImpl) Window() window.Window { return e.window }

func (e *engineImpl) Backend() backend.Backend { return e.backend }

func (e *engineImpl) Scene() *scene.Scene { return e.scene }

func (e *engineImpl) Camera() camera.Camera { return e.camera }

func (e *engineImpl) Controller() camera.CameraController { return e.controller }

func (e *engineImpl) Run() {
	e.start = time.Now()
	e.lastFrame = e.start

	e.window.ProcessMessages()

	e.pass.Release()
	e.backend.Release()
}

func (e *engineImpl) Quit() {
	if err := e.window.Close(); err != nil {
		log.Printf("failed to close window: %v", err)
	}
}

// frame runs one iteration of the update/draw cycle. Called from the window
// message loop, so all GPU work stays on the window's thread.
func (e *engineImpl) frame() {
	now := time.Now()
	elapsed := float32(now.Sub(e.start).Seconds())
	delta := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.controller.UpdateCamera(e.camera)
	e.scene.Update(elapsed, delta)

	err := e.pass.Draw(e.scene)
	switch {
	case err == nil:
	case errors.Is(err, backend.ErrSurfaceLost) || errors.Is(err, backend.ErrSurfaceOutdated):
		// Reconfiguring at the current size recovers both conditions; the
		// next frame acquires a fresh surface texture.
		e.pass.Resize(e.window.Width(), e.window.Height())
	case errors.Is(err, backend.ErrSurfaceTimeout):
		log.Printf("frame skipped: %v", err)
	case errors.Is(err, backend.ErrOutOfMemory):
		log.Printf("gpu out of memory, shutting down: %v", err)
		e.Quit()
	default:
		log.Printf("frame failed: %v", err)
	}
}

// dolly moves the camera eye along the view direction in response to the
// scroll wheel, stopping short of the target.
func (e *engineImpl) dolly(delta float32) {
	ex, ey, ez := e.camera.Eye()
	tx, ty, tz := e.camera.Target()

	forward := [3]float32{tx - ex, ty - ey, tz - ez}
	mag := common.Length3(forward)
	if mag == 0 {
		return
	}

	step := delta * e.controller.Speed()
	if step >= mag {
		step = mag * 0.5
	}

	dir := common.Normalize3(forward)
	e.camera.SetEye(ex+dir[0]*step, ey+dir[1]*step, ez+dir[2]*step)
}
