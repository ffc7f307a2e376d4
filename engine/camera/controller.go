package camera

import (
	"github.com/arlo-gfx/flycam-go/common"
)

// Scalar is the floating-point parameter shared by every generic type in this
// package. It aliases common.Float so camera code and math helpers agree on
// the constraint.
type Scalar = common.Float

// Pose fully describes camera placement for one frame: a world-space position
// plus yaw and pitch in radians.
type Pose[T Scalar] struct {
	// Position is the world-space camera position.
	Position [3]T

	// Yaw is the rotation about the vertical axis in radians, in [0, 2π).
	Yaw T

	// Pitch is the rotation about the lateral axis in radians, in [-π/2, π/2].
	Pitch T
}

// Controller is what a Camera needs from any pose source. Controllers own
// positional state; the camera reads it each frame and derives matrices.
type Controller[T Scalar] interface {
	// Update advances the controller by dt seconds of elapsed time.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt T)

	// Position returns the controller's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z T)

	// Yaw returns the rotation about the vertical axis.
	//
	// Returns:
	//   - T: yaw in radians
	Yaw() T

	// Pitch returns the rotation about the lateral axis.
	//
	// Returns:
	//   - T: pitch in radians
	Pitch() T
}
