package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/tern3d/tern/common"
)

func eyeTargetDistance(cam Camera) float32 {
	ex, ey, ez := cam.Eye()
	tx, ty, tz := cam.Target()
	dx, dy, dz := tx-ex, ty-ey, tz-ez
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()

	ex, ey, ez := cam.Eye()
	assert.Equal(t, [3]float32{0, 1, 2}, [3]float32{ex, ey, ez})
	assert.Less(t, cam.Near(), cam.Far())
}

func TestCameraViewProjectionChangesWithEye(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5), WithAspect(16.0/9.0))

	before := cam.ViewProjectionMatrix()
	cam.SetEye(3, 0, 5)
	after := cam.ViewProjectionMatrix()

	assert.NotEqual(t, before, after)
}

func TestCameraAspectAffectsProjectionOnly(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))

	view := cam.ViewMatrix()
	cam.SetAspect(2.0)
	assert.Equal(t, view, cam.ViewMatrix())
}

func TestOrbitPreservesDistance(t *testing.T) {
	cam := NewCamera(WithEye(0.0, 1.0, 2.0), WithTarget(0, 0, 0))
	ctrl := NewCameraController(WithSpeed(0.2))

	before := eyeTargetDistance(cam)

	ctrl.ProcessKey(common.KeyRight, true)
	for i := 0; i < 50; i++ {
		ctrl.UpdateCamera(cam)
	}
	ctrl.ProcessKey(common.KeyRight, false)

	ctrl.ProcessKey(common.KeyLeft, true)
	for i := 0; i < 50; i++ {
		ctrl.UpdateCamera(cam)
	}
	ctrl.ProcessKey(common.KeyLeft, false)

	assert.InDelta(t, before, eyeTargetDistance(cam), 1e-3)
}

func TestOrbitMovesEye(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 2), WithTarget(0, 0, 0))
	ctrl := NewCameraController()

	ex0, _, _ := cam.Eye()
	ctrl.ProcessKey(common.KeyRight, true)
	ctrl.UpdateCamera(cam)
	ex1, _, _ := cam.Eye()

	assert.NotEqual(t, ex0, ex1)
}

func TestForwardGuardStopsAtTarget(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 1), WithTarget(0, 0, 0))
	ctrl := NewCameraController(WithSpeed(0.3))

	ctrl.ProcessKey(common.KeyW, true)
	for i := 0; i < 100; i++ {
		ctrl.UpdateCamera(cam)
	}

	// The eye never crosses through or lands on the target.
	assert.Greater(t, eyeTargetDistance(cam), float32(0))
	assert.LessOrEqual(t, eyeTargetDistance(cam), float32(1.0))
}

func TestBackwardMovesAway(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 2), WithTarget(0, 0, 0))
	ctrl := NewCameraController(WithSpeed(0.5))

	before := eyeTargetDistance(cam)
	ctrl.ProcessKey(common.KeyS, true)
	ctrl.UpdateCamera(cam)

	assert.InDelta(t, before+0.5, eyeTargetDistance(cam), 1e-5)
}

func TestVerticalJumpMovesEyeAndTargetTogether(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 2), WithTarget(0, 0, 0))
	ctrl := NewCameraController(WithSpeed(0.25))

	before := eyeTargetDistance(cam)
	ctrl.ProcessKey(common.KeySpace, true)
	ctrl.UpdateCamera(cam)

	_, ey, _ := cam.Eye()
	_, ty, _ := cam.Target()
	assert.InDelta(t, 1.25, ey, 1e-5)
	assert.InDelta(t, 0.25, ty, 1e-5)
	assert.InDelta(t, before, eyeTargetDistance(cam), 1e-5)
}

func TestShiftInvertsVerticalJump(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 2), WithTarget(0, 0, 0))
	ctrl := NewCameraController(WithSpeed(0.25))

	ctrl.ProcessKey(common.KeySpace, true)
	ctrl.ProcessKey(common.KeyLeftShift, true)
	ctrl.UpdateCamera(cam)

	_, ey, _ := cam.Eye()
	assert.InDelta(t, 0.75, ey, 1e-5)
}

func TestMouseDragOrbitPreservesDistance(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 5), WithTarget(0, 0, 0))
	ctrl := NewCameraController()

	before := eyeTargetDistance(cam)

	assert.True(t, ctrl.ProcessMouseButton(common.MouseButtonRight, true))
	ctrl.ProcessMouseMove(100, 50)
	ctrl.ProcessMouseMove(140, 50)
	ctrl.UpdateCamera(cam)
	ctrl.ProcessMouseButton(common.MouseButtonRight, false)

	assert.InDelta(t, before, eyeTargetDistance(cam), 1e-4)
}

func TestMouseMoveIgnoredWithoutDrag(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 5), WithTarget(0, 0, 0))
	ctrl := NewCameraController()

	eyeBefore := cam.ViewProjectionMatrix()
	ctrl.ProcessMouseMove(100, 50)
	ctrl.ProcessMouseMove(300, 250)
	ctrl.UpdateCamera(cam)

	assert.Equal(t, eyeBefore, cam.ViewProjectionMatrix())
}

func TestDragDeltaConsumedAfterUpdate(t *testing.T) {
	cam := NewCamera(WithEye(0, 1, 5), WithTarget(0, 0, 0))
	ctrl := NewCameraController()

	ctrl.ProcessMouseButton(common.MouseButtonRight, true)
	ctrl.ProcessMouseMove(100, 50)
	ctrl.ProcessMouseMove(160, 50)
	ctrl.UpdateCamera(cam)
	after := cam.ViewProjectionMatrix()

	// No further motion: the same drag must not keep orbiting.
	ctrl.UpdateCamera(cam)
	assert.Equal(t, after, cam.ViewProjectionMatrix())
}

func TestUnhandledKeysReported(t *testing.T) {
	ctrl := NewCameraController()
	assert.False(t, ctrl.ProcessKey(common.KeyEsc, true))
	assert.False(t, ctrl.ProcessMouseButton(common.MouseButtonLeft, true))
}
