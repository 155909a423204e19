package camera

type CameraControllerOption func(*cameraControllerImpl)

// WithSpeed sets the per-frame movement step in world units.
//
// Parameters:
//   - speed: the movement step, must be positive
//
// Returns:
//   - CameraControllerOption: a function that sets the controller's speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if speed > 0 {
			cc.speed = speed
		}
	}
}
