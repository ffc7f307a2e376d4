package camera

// Settings holds the tunables of a first-person controller. The four fields
// scale independent input channels; there are no cross-field invariants.
// Settings are plain data: construct once, replace wholesale at any time via
// FirstPersonController.SetSettings.
type Settings[T Scalar] struct {
	// SpeedHorizontal is the horizontal movement speed in units per second.
	SpeedHorizontal T

	// SpeedVertical is the vertical movement speed in units per second.
	SpeedVertical T

	// MouseSensitivityHorizontal is a multiplier applied to horizontal
	// pointer movements before conversion to yaw.
	MouseSensitivityHorizontal T

	// MouseSensitivityVertical is a multiplier applied to vertical pointer
	// movements before conversion to pitch.
	MouseSensitivityVertical T
}

// DefaultSettings returns settings with every channel scaled by one.
//
// Returns:
//   - Settings[T]: unit speeds and sensitivities
func DefaultSettings[T Scalar]() Settings[T] {
	return Settings[T]{
		SpeedHorizontal:            1,
		SpeedVertical:              1,
		MouseSensitivityHorizontal: 1,
		MouseSensitivityVertical:   1,
	}
}
