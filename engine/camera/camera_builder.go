package camera

// CameraOption is a functional option for configuring a Camera.
type CameraOption[T Scalar] func(*cameraImpl[T])

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraOption[T]: functional option to set the up vector
func WithUp[T Scalar](x, y, z T) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.up = [3]T{x, y, z}
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraOption[T]: functional option to set the field of view
func WithFov[T Scalar](fov T) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraOption[T]: functional option to set the aspect ratio
func WithAspect[T Scalar](aspect T) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraOption[T]: functional option to set the near plane
func WithNear[T Scalar](near T) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraOption[T]: functional option to set the far plane
func WithFar[T Scalar](far T) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.far = far
	}
}

// WithController attaches a controller to the camera.
// After all options are applied, the camera recomputes its matrices from the
// controller's pose.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraOption[T]: functional option to set the controller
func WithController[T Scalar](ctrl Controller[T]) CameraOption[T] {
	return func(c *cameraImpl[T]) {
		c.controller = ctrl
	}
}
