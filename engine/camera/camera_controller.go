package camera

import (
	"sync"

	"github.com/tern3d/tern/common"
)

// cameraControllerImpl drives a Camera from keyboard press-flags and
// right-button mouse drags. Orbit moves rescale the eye so the distance to
// the target never changes; forward motion is guarded so the eye cannot
// cross through the target.
type cameraControllerImpl struct {
	mu *sync.Mutex

	speed float32

	forwardPressed  bool
	backwardPressed bool
	leftPressed     bool
	rightPressed    bool
	upPressed       bool
	shiftPressed    bool

	dragging bool
	tracking bool
	prevX    float64
	prevY    float64
	curX     float64
	curY     float64
}

// CameraController translates input events into per-frame camera motion.
// Events only flip state; all arithmetic happens in UpdateCamera so motion
// stays frame-rate driven.
type CameraController interface {
	// ProcessKey records the press state for a movement key.
	//
	// Parameters:
	//   - key: a key code from the common package
	//   - pressed: true on press, false on release
	//
	// Returns:
	//   - bool: true if the key is one the controller handles
	ProcessKey(key int, pressed bool) bool

	// ProcessMouseButton starts or stops drag tracking. Only the right
	// button is handled; releasing it discards any accumulated drag state.
	//
	// Parameters:
	//   - button: a mouse button code from the common package
	//   - pressed: true on press, false on release
	//
	// Returns:
	//   - bool: true if the button is one the controller handles
	ProcessMouseButton(button int, pressed bool) bool

	// ProcessMouseMove records the cursor position while a drag is active.
	// Outside a drag this is a no-op.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates
	ProcessMouseMove(x, y float64)

	// UpdateCamera applies the current input state to the camera, moving
	// eye and target. Call once per frame before the camera's matrices
	// are read.
	//
	// Parameters:
	//   - cam: the camera to mutate
	UpdateCamera(cam Camera)

	// Speed returns the per-frame movement step.
	//
	// Returns:
	//   - float32: the movement step in world units per frame
	Speed() float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller with the given movement speed.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		speed: 0.2,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessKey(key int, pressed bool) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	switch key {
	case common.KeyW, common.KeyUp:
		cc.forwardPressed = pressed
	case common.KeyS, common.KeyDown:
		cc.backwardPressed = pressed
	case common.KeyA, common.KeyLeft:
		cc.leftPressed = pressed
	case common.KeyD, common.KeyRight:
		cc.rightPressed = pressed
	case common.KeySpace:
		cc.upPressed = pressed
	case common.KeyLeftShift, common.KeyRightShift:
		cc.shiftPressed = pressed
	default:
		return false
	}
	return true
}

func (cc *cameraControllerImpl) ProcessMouseButton(button int, pressed bool) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if button != common.MouseButtonRight {
		return false
	}

	cc.dragging = pressed
	if !pressed {
		cc.tracking = false
		cc.prevX, cc.prevY = 0, 0
		cc.curX, cc.curY = 0, 0
	}
	return true
}

func (cc *cameraControllerImpl) ProcessMouseMove(x, y float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if !cc.dragging {
		return
	}
	if !cc.tracking {
		cc.prevX, cc.prevY = x, y
		cc.tracking = true
	} else {
		cc.prevX, cc.prevY = cc.curX, cc.curY
	}
	cc.curX, cc.curY = x, y
}

func (cc *cameraControllerImpl) UpdateCamera(cam Camera) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	ex, ey, ez := cam.Eye()
	tx, ty, tz := cam.Target()
	ux, uy, uz := cam.Up()
	eye := [3]float32{ex, ey, ez}
	target := [3]float32{tx, ty, tz}
	up := [3]float32{ux, uy, uz}

	forward := sub3(target, eye)
	forwardNorm := common.Normalize3(forward)
	forwardMag := common.Length3(forward)

	// Drag deltas, in hundredths of a pixel.
	xDist := float32((cc.prevX - cc.curX) / 100.0)
	yDist := float32((cc.prevY - cc.curY) / 100.0)

	// Dolly along the view direction. The forwardMag guard keeps the eye
	// from crossing through the target.
	if cc.forwardPressed && forwardMag > cc.speed {
		eye = add3(eye, scale3(forwardNorm, cc.speed))
	}
	if cc.backwardPressed {
		eye = sub3(eye, scale3(forwardNorm, cc.speed))
	}
	if cc.dragging && yDist > 0 && forwardMag > yDist {
		eye = add3(eye, scale3(forwardNorm, yDist))
	}
	if cc.dragging && yDist < 0 {
		eye = sub3(eye, scale3(forwardNorm, -yDist))
	}

	right := common.Cross3(forwardNorm, up)

	// Recompute the radius in case a dolly above moved the eye.
	forward = sub3(target, eye)
	forwardMag = common.Length3(forward)

	// Orbit: rescale so the eye stays on the circle around the target.
	if cc.dragging && xDist != 0 {
		horizontal := common.Normalize3(add3(forward, scale3(right, xDist)))
		eye = sub3(target, scale3(horizontal, forwardMag))
	}
	if cc.rightPressed {
		eye = sub3(target, scale3(common.Normalize3(add3(forward, scale3(right, cc.speed))), forwardMag))
	}
	if cc.leftPressed {
		eye = sub3(target, scale3(common.Normalize3(sub3(forward, scale3(right, cc.speed))), forwardMag))
	}

	// Vertical jump moves eye and target together, preserving the look-at
	// distance. Shift inverts the direction.
	if cc.upPressed {
		dy := cc.speed
		if cc.shiftPressed {
			dy = -dy
		}
		eye[1] += dy
		target[1] += dy
	}

	// Consume the drag delta so a stationary cursor stops moving the camera.
	cc.prevX, cc.prevY = cc.curX, cc.curY

	cam.SetEye(eye[0], eye[1], eye[2])
	cam.SetTarget(target[0], target[1], target[2])
}

func (cc *cameraControllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}
