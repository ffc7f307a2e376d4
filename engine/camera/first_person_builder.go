package camera

// FirstPersonOption is a functional option for configuring a FirstPersonController.
type FirstPersonOption[T Scalar] func(*firstPersonImpl[T])

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - FirstPersonOption[T]: functional option to set the position
func WithPosition[T Scalar](x, y, z T) FirstPersonOption[T] {
	return func(fp *firstPersonImpl[T]) {
		fp.position = [3]T{x, y, z}
	}
}

// WithSettings sets the initial speed and sensitivity settings.
//
// Parameters:
//   - settings: the settings to apply
//
// Returns:
//   - FirstPersonOption[T]: functional option to set the settings
func WithSettings[T Scalar](settings Settings[T]) FirstPersonOption[T] {
	return func(fp *firstPersonImpl[T]) {
		fp.settings = settings
	}
}

// WithYawPitch sets the initial orientation. Yaw is wrapped into [0, 2π) and
// pitch is clamped to [-π/2, π/2].
//
// Parameters:
//   - yaw: rotation about the vertical axis in radians
//   - pitch: rotation about the lateral axis in radians
//
// Returns:
//   - FirstPersonOption[T]: functional option to set the orientation
func WithYawPitch[T Scalar](yaw, pitch T) FirstPersonOption[T] {
	return func(fp *firstPersonImpl[T]) {
		fp.setYawPitch(yaw, pitch)
	}
}

// WithVelocity sets the initial scalar multiplier on horizontal speed.
//
// Parameters:
//   - velocity: the velocity multiplier
//
// Returns:
//   - FirstPersonOption[T]: functional option to set the velocity
func WithVelocity[T Scalar](velocity T) FirstPersonOption[T] {
	return func(fp *firstPersonImpl[T]) {
		fp.velocity = velocity
	}
}
