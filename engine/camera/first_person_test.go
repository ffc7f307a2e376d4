package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementDirectionTieBreak(t *testing.T) {
	pairs := []struct {
		name     string
		positive Action
		negative Action
		axis     string
	}{
		{"ForwardBackward", ActionMoveForward, ActionMoveBackward, "z"},
		{"StrafeLeftRight", ActionStrafeLeft, ActionStrafeRight, "x"},
		{"FlyUpDown", ActionFlyUp, ActionFlyDown, "y"},
	}

	read := func(fp FirstPersonController[float64], axis string) float64 {
		dx, dy, dz := fp.MovementDirection()
		switch axis {
		case "x":
			return dx
		case "y":
			return dy
		default:
			return dz
		}
	}

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			fp := NewFirstPersonController[float64]()

			assert.Zero(t, read(fp, pair.axis), "no flags set")

			fp.EnableActions(pair.positive)
			assert.Equal(t, 1.0, read(fp, pair.axis), "positive flag only")

			fp.DisableAction(pair.positive)
			fp.EnableActions(pair.negative)
			assert.Equal(t, -1.0, read(fp, pair.axis), "negative flag only")

			// Both flags cancel, regardless of the order they were enabled.
			fp.EnableActions(pair.positive)
			assert.Zero(t, read(fp, pair.axis), "negative enabled first")

			fp.DisableAction(pair.positive | pair.negative)
			fp.EnableActions(pair.positive)
			fp.EnableActions(pair.negative)
			assert.Zero(t, read(fp, pair.axis), "positive enabled first")
		})
	}
}

func TestYawAlwaysNormalized(t *testing.T) {
	testCases := map[string]struct {
		deltas []float64
	}{
		"SmallRight":      {deltas: []float64{15}},
		"SmallLeft":       {deltas: []float64{-15}},
		"FullTurn":        {deltas: []float64{8 * 360}},
		"ManyTurnsLeft":   {deltas: []float64{-123456}},
		"ManyTurnsRight":  {deltas: []float64{987654}},
		"AlternatingWrap": {deltas: []float64{359, -720, 1024, -1}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			fp := NewFirstPersonController[float64]()
			for _, d := range tt.deltas {
				fp.UpdateMouse(d, 0)
				yaw := fp.Yaw()
				require.GreaterOrEqual(t, yaw, 0.0)
				require.Less(t, yaw, 2*math.Pi)
			}
		})
	}
}

func TestPitchClampSaturates(t *testing.T) {
	fp := NewFirstPersonController[float64]()

	// Repeated positive deltas must saturate at +π/2 and stay there.
	for i := 0; i < 50; i++ {
		fp.UpdateMouse(0, 100)
		require.LessOrEqual(t, fp.Pitch(), math.Pi/2)
	}
	assert.InDelta(t, math.Pi/2, fp.Pitch(), 1e-12)

	fp.UpdateMouse(0, 100)
	assert.InDelta(t, math.Pi/2, fp.Pitch(), 1e-12, "must stay saturated")

	for i := 0; i < 100; i++ {
		fp.UpdateMouse(0, -100)
		require.GreaterOrEqual(t, fp.Pitch(), -math.Pi/2)
	}
	assert.InDelta(t, -math.Pi/2, fp.Pitch(), 1e-12)
}

func TestMouseUnitConversion(t *testing.T) {
	// 360 pointer units map to a quarter turn (π/4 radians of yaw change,
	// applied as a subtraction), inherited from the Piston sensitivity curve.
	fp := NewFirstPersonController[float64]()
	fp.UpdateMouse(360, 0)
	assert.InDelta(t, 2*math.Pi-math.Pi/4, fp.Yaw(), 1e-12)

	// Horizontal sensitivity scales the delta before conversion.
	fp = NewFirstPersonController(WithSettings(Settings[float64]{
		SpeedHorizontal:            1,
		SpeedVertical:              1,
		MouseSensitivityHorizontal: 2,
		MouseSensitivityVertical:   0.5,
	}))
	fp.UpdateMouse(180, 360)
	assert.InDelta(t, 2*math.Pi-math.Pi/4, fp.Yaw(), 1e-12)
	assert.InDelta(t, math.Pi/8, fp.Pitch(), 1e-12)
}

func TestUpdateWithoutActionsIsStationary(t *testing.T) {
	for _, dt := range []float64{0, 0.016, 1, 1000} {
		fp := NewFirstPersonController(WithPosition(1.0, 2.0, 3.0))
		fp.Update(dt)
		x, y, z := fp.Position()
		assert.Equal(t, 1.0, x)
		assert.Equal(t, 2.0, y)
		assert.Equal(t, 3.0, z)
	}
}

func TestUpdateMovesAlongFacing(t *testing.T) {
	testCases := map[string]struct {
		yaw      float64
		actions  Action
		expected [3]float64
	}{
		// At yaw 0 the local forward axis maps to world -X
		// (world x = sin(yaw)·dx - cos(yaw)·dz).
		"ForwardYawZero": {
			yaw:      0,
			actions:  ActionMoveForward,
			expected: [3]float64{-1, 0, 0},
		},
		"BackwardYawZero": {
			yaw:      0,
			actions:  ActionMoveBackward,
			expected: [3]float64{1, 0, 0},
		},
		// At yaw π/2 local axes coincide with world axes: forward is +Z.
		"ForwardYawQuarter": {
			yaw:      math.Pi / 2,
			actions:  ActionMoveForward,
			expected: [3]float64{0, 0, 1},
		},
		"StrafeLeftYawQuarter": {
			yaw:      math.Pi / 2,
			actions:  ActionStrafeLeft,
			expected: [3]float64{1, 0, 0},
		},
		"FlyUpIgnoresYaw": {
			yaw:      1.234,
			actions:  ActionFlyUp,
			expected: [3]float64{0, 1, 0},
		},
		"FlyDownIgnoresYaw": {
			yaw:      -0.5,
			actions:  ActionFlyDown,
			expected: [3]float64{0, -1, 0},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			fp := NewFirstPersonController(WithYawPitch(tt.yaw, 0))
			fp.EnableActions(tt.actions)
			fp.Update(1)
			x, y, z := fp.Position()
			assert.InDelta(t, tt.expected[0], x, 1e-12)
			assert.InDelta(t, tt.expected[1], y, 1e-12)
			assert.InDelta(t, tt.expected[2], z, 1e-12)
		})
	}
}

func TestDiagonalMovementNotNormalized(t *testing.T) {
	// Forward plus strafe-left moves √2 times the horizontal step, not 1.
	fp := NewFirstPersonController[float64]()
	fp.EnableActions(ActionMoveForward | ActionStrafeLeft)
	fp.Update(1)

	x, _, z := fp.Position()
	assert.InDelta(t, math.Sqrt2, math.Hypot(x, z), 1e-12)
}

func TestPoseIsPure(t *testing.T) {
	fp := NewFirstPersonController(WithPosition(5.0, 6.0, 7.0))
	fp.EnableActions(ActionMoveForward)

	pose := fp.Pose(1)
	assert.NotEqual(t, [3]float64{5, 6, 7}, pose.Position)

	// Deriving a pose must not move the controller.
	x, y, z := fp.Position()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 6.0, y)
	assert.Equal(t, 7.0, z)
}

func TestUpdateLeavesOrientationUntouched(t *testing.T) {
	fp := NewFirstPersonController(WithYawPitch(1.5, 0.25))
	fp.EnableActions(ActionMoveForward | ActionFlyUp)
	fp.Update(2)

	assert.Equal(t, 1.5, fp.Yaw())
	assert.Equal(t, 0.25, fp.Pitch())

	pose := fp.Pose(1)
	assert.Equal(t, 1.5, pose.Yaw)
	assert.Equal(t, 0.25, pose.Pitch)
}

func TestVelocityScalesHorizontalOnly(t *testing.T) {
	fp := NewFirstPersonController(
		WithYawPitch(math.Pi/2, 0.0),
		WithVelocity(3.0),
	)
	fp.EnableActions(ActionMoveForward | ActionFlyUp)
	fp.Update(1)

	x, y, z := fp.Position()
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12, "vertical speed ignores velocity")
	assert.InDelta(t, 3.0, z, 1e-12, "horizontal speed scales with velocity")
}

func TestDisableActionIdempotent(t *testing.T) {
	fp := NewFirstPersonController[float32]()
	fp.EnableActions(ActionMoveForward | ActionFlyUp)

	fp.DisableAction(ActionStrafeLeft)
	assert.Equal(t, ActionMoveForward|ActionFlyUp, fp.Actions())

	fp.DisableAction(ActionFlyUp)
	assert.Equal(t, ActionMoveForward, fp.Actions())

	// Disabling again changes nothing.
	fp.DisableAction(ActionFlyUp)
	assert.Equal(t, ActionMoveForward, fp.Actions())
}

func TestEnableDisableRoundTrip(t *testing.T) {
	all := []Action{
		ActionMoveForward, ActionMoveBackward,
		ActionStrafeLeft, ActionStrafeRight,
		ActionFlyUp, ActionFlyDown,
		ActionMoveFaster,
	}

	for _, a := range all {
		for _, b := range all {
			if a == b {
				continue
			}
			fp := NewFirstPersonController[float32]()
			fp.EnableActions(a)
			fp.EnableActions(b)
			fp.DisableAction(a)
			require.Equal(t, b, fp.Actions(), "enable %b,%b then disable %b", a, b, a)
		}
	}
}

func TestSetYawPitchEnforcesInvariants(t *testing.T) {
	fp := NewFirstPersonController[float64]()

	fp.SetYawPitch(-math.Pi/4, 12)
	assert.InDelta(t, 2*math.Pi-math.Pi/4, fp.Yaw(), 1e-12)
	assert.InDelta(t, math.Pi/2, fp.Pitch(), 1e-12)

	fp.SetYawPitch(5*math.Pi, -12)
	assert.InDelta(t, math.Pi, fp.Yaw(), 1e-12)
	assert.InDelta(t, -math.Pi/2, fp.Pitch(), 1e-12)
}

func TestNewControllerDefaults(t *testing.T) {
	fp := NewFirstPersonController[float32]()

	x, y, z := fp.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
	assert.Zero(t, fp.Yaw())
	assert.Zero(t, fp.Pitch())
	assert.Equal(t, float32(1), fp.Velocity())
	assert.Equal(t, Action(0), fp.Actions())
	assert.Equal(t, DefaultSettings[float32](), fp.Settings())
}

func TestSetSettingsReplacesWholesale(t *testing.T) {
	fp := NewFirstPersonController[float32]()
	s := Settings[float32]{
		SpeedHorizontal:            8,
		SpeedVertical:              4,
		MouseSensitivityHorizontal: 2,
		MouseSensitivityVertical:   0.25,
	}
	fp.SetSettings(s)
	assert.Equal(t, s, fp.Settings())

	fp.EnableActions(ActionFlyUp)
	fp.Update(0.5)
	_, y, _ := fp.Position()
	assert.InDelta(t, 2.0, float64(y), 1e-6)
}
