package camera

import (
	"math"
	"sync"

	"github.com/tern3d/tern/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	eye    [3]float32
	target [3]float32
	up     [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera holds the view state for a scene. It owns eye/target/up plus
// perspective settings and derives view and projection matrices whenever
// either changes. A controller mutates the camera; everything else only
// reads from it.
type Camera interface {
	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	Eye() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// SetEye sets the camera's world-space position and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetEye(x, y, z float32)

	// SetTarget sets the look-at point and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetUp sets the camera's up vector and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings, looking
// at the origin from (0, 1, 2).
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		eye:    [3]float32{0, 1, 2},
		target: [3]float32{0, 0, 0},
		up:     [3]float32{0, 1, 0},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Eye() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye[0], c.eye[1], c.eye[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) SetEye(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.LookAt(c.viewMatrix[:],
		c.eye[0], c.eye[1], c.eye[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
