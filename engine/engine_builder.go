package engine

import (
	"time"

	"github.com/arlo-gfx/flycam-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// The tick callback and registered updaters run at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithUpdater registers an updater at the given key during engine construction.
//
// Parameters:
//   - key: identity for later removal or lookup
//   - u: the Updater to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdater(key int, u Updater) EngineBuilderOption {
	return func(e *engine) {
		e.updaters[key] = u
	}
}

// WithTickWorkers sets the number of goroutines in the tick worker pool that
// advances registered updaters each tick.
//
// Parameters:
//   - workers: pool size (values <= 0 keep the default of NumCPU-1)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickWorkers(workers int) EngineBuilderOption {
	return func(e *engine) {
		if workers > 0 {
			e.tickWorkers = workers
		}
	}
}
