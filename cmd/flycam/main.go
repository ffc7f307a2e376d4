package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arlo-gfx/flycam-go/common"
	"github.com/arlo-gfx/flycam-go/engine"
	"github.com/arlo-gfx/flycam-go/engine/camera"
	"github.com/arlo-gfx/flycam-go/engine/window"
)

var CLI struct {
	Debug   bool `help:"Whether to enable debug logging."`
	Profile bool `help:"Log tick rate and memory stats every second."`

	Width  int `help:"Window width in pixels." default:"1280"`
	Height int `help:"Window height in pixels." default:"720"`

	TickRate float64 `help:"Simulation ticks per second." default:"60"`

	Speed         float32 `help:"Horizontal movement speed in units per second." default:"8"`
	VerticalSpeed float32 `help:"Vertical movement speed in units per second (defaults to --speed)."`
	Sensitivity   float32 `help:"Mouse look sensitivity multiplier." default:"1"`
	Boost         float32 `help:"Velocity multiplier while the boost key is held." default:"3"`

	Fov float32 `help:"Vertical field of view in degrees." default:"70"`
}

// keyBindings maps virtual key codes to movement intents.
var keyBindings = map[uint32]camera.Action{
	common.KeyW:         camera.ActionMoveForward,
	common.KeyS:         camera.ActionMoveBackward,
	common.KeyA:         camera.ActionStrafeLeft,
	common.KeyD:         camera.ActionStrafeRight,
	common.KeySpace:     camera.ActionFlyUp,
	common.KeyLeftCtrl:  camera.ActionFlyDown,
	common.KeyLeftShift: camera.ActionMoveFaster,
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("flycam"),
		kong.Description("first-person fly camera demo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	win := window.NewWindow(
		window.WithTitle("flycam"),
		window.WithWidth(CLI.Width),
		window.WithHeight(CLI.Height),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(CLI.TickRate),
		engine.WithProfiling(CLI.Profile),
	)

	fp := camera.NewFirstPersonController(
		camera.WithPosition[float32](0, 2, 0),
		camera.WithSettings(camera.Settings[float32]{
			SpeedHorizontal:            CLI.Speed,
			SpeedVertical:              common.Coalesce(CLI.VerticalSpeed, CLI.Speed),
			MouseSensitivityHorizontal: CLI.Sensitivity,
			MouseSensitivityVertical:   CLI.Sensitivity,
		}),
	)

	cam := camera.NewCamera(
		camera.WithFov(common.DegToRad(CLI.Fov)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithNear[float32](0.1),
		camera.WithFar[float32](1000),
		camera.WithController[float32](fp),
	)

	win.SetResizeCallback(func(width, height int) {
		cam.SetAspect(float32(width) / float32(height))
	})

	setupInput(win, fp)

	// The camera advances its controller each tick; the tick callback reads
	// the resulting pose and applies host policy (boost key, pose logging).
	eng.AddUpdater(0, cam)

	var sinceLog float32
	eng.SetTickCallback(func(dt float32) {
		if fp.Actions().Has(camera.ActionMoveFaster) {
			fp.SetVelocity(CLI.Boost)
		} else {
			fp.SetVelocity(1)
		}

		sinceLog += dt
		if sinceLog >= 1 {
			sinceLog = 0
			x, y, z := fp.Position()
			log.Debug().
				Float32("x", x).
				Float32("y", y).
				Float32("z", z).
				Float32("yaw", fp.Yaw()).
				Float32("pitch", fp.Pitch()).
				Msg("pose")
		}
	})

	fmt.Println("controls: click to capture mouse, WASD to move, Space/Ctrl to fly,")
	fmt.Println("          Shift to boost, scroll to change speed, Esc to release/quit")

	log.Info().
		Int("width", win.Width()).
		Int("height", win.Height()).
		Float64("tick_rate", CLI.TickRate).
		Msg("starting flycam")
	eng.Run()
}

// setupInput wires window events to the controller: key edges toggle action
// flags, captured-cursor motion feeds mouse look, clicking captures the
// cursor, and the scroll wheel scales movement speed.
//
// Parameters:
//   - win: the window providing input callbacks
//   - fp: the controller to drive
func setupInput(win window.Window, fp camera.FirstPersonController[float32]) {
	win.SetKeyDownCallback(func(keyCode uint32) {
		if action, ok := keyBindings[keyCode]; ok {
			fp.EnableActions(action)
		}
	})

	win.SetKeyUpCallback(func(keyCode uint32) {
		if action, ok := keyBindings[keyCode]; ok {
			fp.DisableAction(action)
		}
	})

	win.SetMouseDownCallback(func(_, _ float64) {
		if !win.CursorCaptured() {
			win.SetCursorCaptured(true)
		}
	})

	// Successive cursor positions are differenced into relative look deltas.
	// The first position after capture only seeds the previous sample, so a
	// capture never produces a view jump.
	var haveLast bool
	var lastX, lastY float64
	win.SetMouseMoveCallback(func(x, y float64) {
		if !win.CursorCaptured() {
			haveLast = false
			return
		}
		if !haveLast {
			lastX, lastY = x, y
			haveLast = true
			return
		}
		dx := float32(x - lastX)
		dy := float32(y - lastY)
		lastX, lastY = x, y

		// Screen y grows downward; negate so moving the mouse up looks up.
		fp.UpdateMouse(dx, -dy)
	})

	win.SetScrollCallback(func(delta float32) {
		s := fp.Settings()
		s.SpeedHorizontal = common.Clamp(s.SpeedHorizontal*(1+0.1*delta), 0.5, 200)
		s.SpeedVertical = common.Clamp(s.SpeedVertical*(1+0.1*delta), 0.5, 200)
		fp.SetSettings(s)
		log.Debug().Float32("speed", s.SpeedHorizontal).Msg("speed changed")
	})
}
