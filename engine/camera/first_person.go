package camera

import (
	"math"
	"sync"

	"github.com/arlo-gfx/flycam-go/common"
)

// firstPersonImpl is the single implementation of FirstPersonController.
// It models a flying first-person camera: discrete movement intents (the
// Action bitmask) and pointer deltas are converted into a pose over time.
// Yaw and pitch change only through UpdateMouse; Update only translates.
type firstPersonImpl[T Scalar] struct {
	mu *sync.Mutex

	settings Settings[T]

	// Orientation in radians. yaw is kept in [0, 2π), pitch in [-π/2, π/2].
	yaw   T
	pitch T

	// World-space position, mutated only by Update.
	position [3]T

	// velocity is a scalar multiplier on horizontal speed. The controller
	// initializes it to one and never changes it; hosts modulate it (for
	// example when ActionMoveFaster is held).
	velocity T

	actions Action
}

// FirstPersonController converts pressed-key state and pointer deltas into a
// camera pose. It satisfies Controller so it can drive a Camera directly.
//
// The controller performs no input validation: negative dt, NaN deltas and
// extreme settings propagate through the arithmetic unchecked. Nothing at
// this layer can fail, so no operation returns an error.
type FirstPersonController[T Scalar] interface {
	Controller[T]

	// Pose derives the pose the controller would have after dt seconds of
	// movement, without mutating the controller. The returned pose carries
	// the advanced position and the current (not recomputed) yaw and pitch.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//
	// Returns:
	//   - Pose[T]: the derived pose
	Pose(dt T) Pose[T]

	// UpdateMouse applies a pointer movement to yaw and pitch. Deltas are
	// scaled by the mouse sensitivities, converted from pointer units to
	// radians, then yaw is wrapped into [0, 2π) and pitch is clamped to
	// [-π/2, π/2] (saturating at the poles, no wrap-around).
	//
	// Parameters:
	//   - relativeDX: horizontal pointer delta in device units
	//   - relativeDY: vertical pointer delta in device units
	UpdateMouse(relativeDX, relativeDY T)

	// MovementDirection resolves the action bitmask into a per-axis
	// direction tuple, each component in {-1, 0, 1}. Opposing flags cancel
	// to 0 on their axis. Diagonal combinations are not normalized, so the
	// tuple's magnitude can reach √3.
	//
	// Returns:
	//   - dx: strafe axis (+1 = left)
	//   - dy: vertical axis (+1 = up)
	//   - dz: forward axis (+1 = forward)
	MovementDirection() (dx, dy, dz T)

	// EnableActions ORs the given flags into the active set.
	//
	// Parameters:
	//   - actions: flags to activate
	EnableActions(actions Action)

	// DisableAction clears the given flags from the active set. Disabling
	// an inactive flag is a no-op.
	//
	// Parameters:
	//   - action: flags to deactivate
	DisableAction(action Action)

	// Actions returns the currently active flag set.
	//
	// Returns:
	//   - Action: the active bitmask
	Actions() Action

	// SetPosition sets the world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z T)

	// SetYawPitch sets the orientation directly. Yaw is wrapped into
	// [0, 2π) and pitch is clamped to [-π/2, π/2], the same invariants
	// UpdateMouse maintains.
	//
	// Parameters:
	//   - yaw: rotation about the vertical axis in radians
	//   - pitch: rotation about the lateral axis in radians
	SetYawPitch(yaw, pitch T)

	// Velocity returns the scalar multiplier on horizontal speed.
	//
	// Returns:
	//   - T: the velocity multiplier
	Velocity() T

	// SetVelocity sets the scalar multiplier on horizontal speed.
	//
	// Parameters:
	//   - velocity: the new multiplier
	SetVelocity(velocity T)

	// Settings returns the controller's current settings.
	//
	// Returns:
	//   - Settings[T]: the current settings
	Settings() Settings[T]

	// SetSettings replaces the controller's settings wholesale.
	//
	// Parameters:
	//   - settings: the new settings
	SetSettings(settings Settings[T])
}

var _ FirstPersonController[float32] = &firstPersonImpl[float32]{}
var _ FirstPersonController[float64] = &firstPersonImpl[float64]{}

// NewFirstPersonController creates a first-person controller at the origin
// with unit settings, yaw and pitch zero, velocity one and no active actions.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FirstPersonController[T]: the newly created controller
func NewFirstPersonController[T Scalar](options ...FirstPersonOption[T]) FirstPersonController[T] {
	fp := &firstPersonImpl[T]{
		mu:       &sync.Mutex{},
		settings: DefaultSettings[T](),
		velocity: 1,
	}
	for _, option := range options {
		option(fp)
	}
	return fp
}

// --- internal helpers ---

// pose derives the pose after dt seconds of movement at the current action
// state. Caller must hold the mutex.
func (fp *firstPersonImpl[T]) pose(dt T) Pose[T] {
	dh := dt * fp.velocity * fp.settings.SpeedHorizontal
	dx, dy, dz := fp.movementDirection()
	s, c := common.Sincos(fp.yaw)
	return Pose[T]{
		Position: [3]T{
			fp.position[0] + (s*dx-c*dz)*dh,
			fp.position[1] + dy*dt*fp.settings.SpeedVertical,
			fp.position[2] + (s*dz+c*dx)*dh,
		},
		Yaw:   fp.yaw,
		Pitch: fp.pitch,
	}
}

// movementDirection resolves the action bitmask per axis. Caller must hold
// the mutex.
func (fp *firstPersonImpl[T]) movementDirection() (dx, dy, dz T) {
	axis := func(positive, negative Action) T {
		switch {
		case fp.actions.Has(positive) && fp.actions.Has(negative):
			return 0
		case fp.actions.Has(positive):
			return 1
		case fp.actions.Has(negative):
			return -1
		}
		return 0
	}
	dz = axis(ActionMoveForward, ActionMoveBackward)
	dx = axis(ActionStrafeLeft, ActionStrafeRight)
	dy = axis(ActionFlyUp, ActionFlyDown)
	return dx, dy, dz
}

// setYawPitch applies the orientation invariants: yaw wrapped into [0, 2π),
// pitch clamped to [-π/2, π/2]. Caller must hold the mutex.
func (fp *firstPersonImpl[T]) setYawPitch(yaw, pitch T) {
	pi := T(math.Pi)
	fp.yaw = common.FloorMod(yaw, 2*pi)
	fp.pitch = common.Clamp(pitch, -pi/2, pi/2)
}

// --- Controller implementation ---

func (fp *firstPersonImpl[T]) Update(dt T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.position = fp.pose(dt).Position
}

func (fp *firstPersonImpl[T]) Position() (x, y, z T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.position[0], fp.position[1], fp.position[2]
}

func (fp *firstPersonImpl[T]) Yaw() T {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.yaw
}

func (fp *firstPersonImpl[T]) Pitch() T {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.pitch
}

// --- FirstPersonController implementation ---

func (fp *firstPersonImpl[T]) Pose(dt T) Pose[T] {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.pose(dt)
}

func (fp *firstPersonImpl[T]) UpdateMouse(relativeDX, relativeDY T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	dx := relativeDX * fp.settings.MouseSensitivityHorizontal
	dy := relativeDY * fp.settings.MouseSensitivityVertical

	// One pointer unit maps to (1/360)·(π/4) radians. The quarter-π divisor
	// (360 units per quarter turn, not per full turn) is inherited from the
	// Piston camera_controllers sensitivity curve.
	pi := T(math.Pi)
	fp.setYawPitch(fp.yaw-dx/360*pi/4, fp.pitch+dy/360*pi/4)
}

func (fp *firstPersonImpl[T]) MovementDirection() (dx, dy, dz T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.movementDirection()
}

func (fp *firstPersonImpl[T]) EnableActions(actions Action) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.actions |= actions
}

func (fp *firstPersonImpl[T]) DisableAction(action Action) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.actions &^= action
}

func (fp *firstPersonImpl[T]) Actions() Action {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.actions
}

func (fp *firstPersonImpl[T]) SetPosition(x, y, z T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.position = [3]T{x, y, z}
}

func (fp *firstPersonImpl[T]) SetYawPitch(yaw, pitch T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.setYawPitch(yaw, pitch)
}

func (fp *firstPersonImpl[T]) Velocity() T {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.velocity
}

func (fp *firstPersonImpl[T]) SetVelocity(velocity T) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.velocity = velocity
}

func (fp *firstPersonImpl[T]) Settings() Settings[T] {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.settings
}

func (fp *firstPersonImpl[T]) SetSettings(settings Settings[T]) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.settings = settings
}
