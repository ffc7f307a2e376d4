package camera

// Action is a bitmask of discrete movement intents for a first-person
// controller. Any subset of flags is representable, including logically
// contradictory pairs (forward and backward both active); contradictions are
// resolved when the movement direction is read, never when flags are written.
type Action uint8

const (
	// ActionMoveForward moves along the camera's local forward axis.
	ActionMoveForward Action = 1 << iota
	// ActionMoveBackward moves against the camera's local forward axis.
	ActionMoveBackward
	// ActionStrafeLeft moves along the camera's local left axis.
	ActionStrafeLeft
	// ActionStrafeRight moves along the camera's local right axis.
	ActionStrafeRight
	// ActionFlyUp moves along the world up axis, ignoring yaw and pitch.
	ActionFlyUp
	// ActionFlyDown moves against the world up axis, ignoring yaw and pitch.
	ActionFlyDown
	// ActionMoveFaster is a speed-boost intent. The controller core does not
	// consume it; hosts that want a boost read it and scale Velocity.
	ActionMoveFaster
)

// Has reports whether every flag in mask is set.
//
// Parameters:
//   - mask: the flag set to test for
//
// Returns:
//   - bool: true if all flags in mask are active
func (a Action) Has(mask Action) bool {
	return a&mask == mask
}
