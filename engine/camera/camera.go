package camera

import (
	"sync"

	"github.com/arlo-gfx/flycam-go/common"
)

type cameraImpl[T Scalar] struct {
	mu *sync.Mutex

	up [3]T

	fov    T
	aspect T
	near   T
	far    T

	viewMatrix              [16]T
	projectionMatrix        [16]T
	viewProjectionMatrix    [16]T
	inverseProjectionMatrix [16]T

	controller Controller[T]
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from an attached Controller each frame via Update().
type Camera[T Scalar] interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z T)

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - T: field of view in radians
	Fov() T

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - T: the aspect ratio
	Aspect() T

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - T: near plane distance
	Near() T

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - T: far plane distance
	Far() T

	// ViewMatrix returns the current 4x4 view matrix as 16 scalars (column-major).
	//
	// Returns:
	//   - [16]T: the view matrix
	ViewMatrix() [16]T

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 scalars (column-major).
	//
	// Returns:
	//   - [16]T: the projection matrix
	ProjectionMatrix() [16]T

	// ViewProjectionMatrix returns the current combined view-projection matrix
	// as 16 scalars (column-major).
	//
	// Returns:
	//   - [16]T: the combined view-projection matrix
	ViewProjectionMatrix() [16]T

	// InverseProjectionMatrix returns the inverse of the current projection
	// matrix as 16 scalars (column-major).
	//
	// Returns:
	//   - [16]T: the inverse projection matrix
	InverseProjectionMatrix() [16]T

	// Front returns the camera's forward direction derived from the attached
	// controller's yaw and pitch. Returns the -X axis when no controller is
	// attached (yaw 0, pitch 0).
	//
	// Returns:
	//   - x, y, z: unit forward vector components
	Front() (x, y, z T)

	// Controller returns the attached Controller.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - Controller[T]: the attached controller or nil
	Controller() Controller[T]

	// Update advances the attached controller by dt seconds and recomputes
	// matrices from its new pose. Should be called once per frame (typically
	// in the tick callback). If no controller is attached, this method does
	// nothing.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt T)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z T)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov T)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect T)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near T)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far T)

	// SetController attaches a Controller to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl Controller[T])

	// Uniform returns the GPU-aligned uniform block for the current frame.
	//
	// Returns:
	//   - GPUCameraUniform: view-projection matrix and position as float32
	Uniform() GPUCameraUniform
}

var _ Camera[float32] = &cameraImpl[float32]{}
var _ Camera[float64] = &cameraImpl[float64]{}

// NewCamera creates a new Camera with default perspective settings.
// A controller must be attached via SetController or WithController option
// before pose data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera[T]: the newly created camera
func NewCamera[T Scalar](options ...CameraOption[T]) Camera[T] {
	c := &cameraImpl[T]{
		mu:                   &sync.Mutex{},
		up:                   [3]T{0, 1, 0},
		fov:                  common.DegToRad[T](45),
		aspect:               1.0,
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           [16]T{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		projectionMatrix:     [16]T{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		viewProjectionMatrix: [16]T{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.updateMatrices()
	}
	return c
}

func (c *cameraImpl[T]) Up() (x, y, z T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl[T]) Fov() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl[T]) Aspect() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl[T]) Near() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl[T]) Far() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl[T]) ViewMatrix() [16]T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl[T]) ProjectionMatrix() [16]T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl[T]) ViewProjectionMatrix() [16]T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl[T]) InverseProjectionMatrix() [16]T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl[T]) Front() (x, y, z T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front()
}

func (c *cameraImpl[T]) SetUp(x, y, z T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]T{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl[T]) SetFov(fov T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl[T]) SetAspect(aspect T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl[T]) SetNear(near T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl[T]) SetFar(far T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl[T]) Controller() Controller[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl[T]) Update(dt T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.controller.Update(dt)
	c.updateMatrices()
}

func (c *cameraImpl[T]) SetController(ctrl Controller[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

func (c *cameraImpl[T]) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()

	var u GPUCameraUniform
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(c.viewProjectionMatrix[i])
	}
	if c.controller != nil {
		x, y, z := c.controller.Position()
		u.CameraPosition = [3]float32{float32(x), float32(y), float32(z)}
	}
	return u
}

// front derives the unit forward vector from the controller's yaw and pitch.
// Yaw zero faces -X and yaw π/2 faces +Z, matching the world-space rotation
// the first-person controller applies to its local forward axis.
// Caller must hold the mutex.
func (c *cameraImpl[T]) front() (x, y, z T) {
	var yaw, pitch T
	if c.controller != nil {
		yaw = c.controller.Yaw()
		pitch = c.controller.Pitch()
	}
	sy, cy := common.Sincos(yaw)
	sp, cp := common.Sincos(pitch)
	return -cy * cp, sp, sy * cp
}

// updateMatrices recalculates the view, projection, view-projection, and
// inverse projection matrices from the controller's pose. This is a no-op
// when the controller is nil. Caller must hold the mutex.
func (c *cameraImpl[T]) updateMatrices() {
	if c.controller == nil {
		return
	}

	px, py, pz := c.controller.Position()
	fx, fy, fz := c.front()

	common.LookAt(c.viewMatrix[:],
		px, py, pz,
		px+fx, py+fy, pz+fz,
		c.up[0], c.up[1], c.up[2],
	)

	common.Perspective(c.projectionMatrix[:],
		c.fov, c.aspect, c.near, c.far,
	)

	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
	common.Invert4(c.inverseProjectionMatrix[:], c.projectionMatrix[:])
}
