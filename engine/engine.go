package engine

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog/log"

	"github.com/arlo-gfx/flycam-go/engine/profiler"
	"github.com/arlo-gfx/flycam-go/engine/window"
)

// Updater is anything the engine advances each tick: camera controllers,
// cameras, or any other per-frame simulation state.
type Updater interface {
	// Update advances the updater by deltaTime seconds.
	Update(deltaTime float32)
}

// engine implements the Engine interface.
// Coordinates the tick and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	// updaterMu guards the updater registry; window callbacks may register
	// and remove updaters while the tick goroutine iterates them.
	updaterMu sync.Mutex
	updaters  map[int]Updater

	// tickPool fans per-updater work out to a bounded set of reusable
	// goroutines each tick.
	tickWorkers int
	tickPool    worker.DynamicWorkerPool
}

// Engine is the main entry point. It orchestrates the tick loop, the updater
// registry, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback and registered updaters run at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after
	// all registered updaters have been advanced. Use this for host logic
	// that reads the updated state (pose consumption, logging, uploads).
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddUpdater registers an updater at the given key. Each tick, all
	// registered updaters are advanced in parallel through the engine's
	// worker pool before the tick callback runs.
	//
	// Parameters:
	//   - key: identity for later removal or lookup
	//   - u: the Updater to register
	AddUpdater(key int, u Updater)

	// RemoveUpdater removes the updater at the given key.
	//
	// Parameters:
	//   - key: the key of the updater to remove
	RemoveUpdater(key int)

	// Updater retrieves the updater registered at the given key.
	// Returns nil if no updater exists at that key.
	//
	// Parameters:
	//   - key: the key of the updater to retrieve
	//
	// Returns:
	//   - Updater: the updater at the key, or nil if not found
	Updater(key int) Updater

	// Updaters returns a copy of all registered updaters keyed by their key.
	//
	// Returns:
	//   - map[int]Updater: a copy of the updater map
	Updaters() map[int]Updater

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the quit channel, updater registry, tick worker pool and
// profiler with sensible defaults.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		updaters:         make(map[int]Updater),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		tickWorkers:      max(runtime.NumCPU()-1, 1),
	}

	for _, opt := range options {
		opt(e)
	}

	// Initialize the tick pool after options so WithTickWorkers can override
	// the default. Queue size of 64 accommodates typical updater counts with
	// headroom.
	e.tickPool = worker.NewDynamicWorkerPool(e.tickWorkers, 64, 1*time.Second)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.handle()
	e.window.ProcessMessages()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Each tick advances the registered updaters through the worker pool, fires
// the tick callback, and listens for dynamic rate changes via
// tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics to avoid crashing the process and signals quit on
// recovery.
func (e *engine) handleTick() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("tick goroutine recovered from panic")
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.dispatchUpdaters(dt)

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// dispatchUpdaters advances every registered updater by dt. With a single
// updater the call is made inline; with more, each update is submitted to the
// tick pool and a WaitGroup provides the per-tick barrier (the pool's own
// Wait blocks until workers idle-exit, which is unsuitable for frame-rate
// workloads).
func (e *engine) dispatchUpdaters(dt float32) {
	e.updaterMu.Lock()
	batch := make([]Updater, 0, len(e.updaters))
	keys := make([]int, 0, len(e.updaters))
	for k := range e.updaters {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		batch = append(batch, e.updaters[k])
	}
	e.updaterMu.Unlock()

	if len(batch) == 0 {
		return
	}
	if len(batch) == 1 {
		batch[0].Update(dt)
		return
	}

	var wg sync.WaitGroup
	for i, u := range batch {
		wg.Add(1)
		uCap := u // capture for closure
		e.tickPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				uCap.Update(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running tick loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddUpdater(key int, u Updater) {
	e.updaterMu.Lock()
	defer e.updaterMu.Unlock()
	e.updaters[key] = u
}

func (e *engine) RemoveUpdater(key int) {
	e.updaterMu.Lock()
	defer e.updaterMu.Unlock()
	delete(e.updaters, key)
}

func (e *engine) Updater(key int) Updater {
	e.updaterMu.Lock()
	defer e.updaterMu.Unlock()
	return e.updaters[key]
}

func (e *engine) Updaters() map[int]Updater {
	e.updaterMu.Lock()
	defer e.updaterMu.Unlock()
	cp := make(map[int]Updater, len(e.updaters))
	for k, v := range e.updaters {
		cp[k] = v
	}
	return cp
}
