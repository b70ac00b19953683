package scenes

import (
	"sync"

	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/systems"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/automoto/firstperson/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WalkScene owns one locomotion world. Each scene is an independent
// controller; nothing is shared between instances.
//
// Host input (keyboard, gamepad, cursor, overlay clicks) is polled in Update on the
// ebiten goroutine and queued; Tick drains the queue before any movement,
// so events never interleave with a tick.
type WalkScene struct {
	ecs          *ecs.ECS
	tuning       cfg.LocomotionConfig
	scene        cfg.SceneConfig
	startEngaged bool
	once         sync.Once

	overlay     *ui.EngageUI
	overlayErr  bool
	captured    bool // cursor mode last requested from ebiten
	cursorX     int
	cursorKnown bool
	keys        []ebiten.Key
}

// NewWalkScene creates a walk scene with the given tuning and layout
func NewWalkScene(tuning cfg.LocomotionConfig, scene cfg.SceneConfig, startEngaged bool) *WalkScene {
	return &WalkScene{
		tuning:       tuning,
		scene:        scene,
		startEngaged: startEngaged,
	}
}

// ECS exposes the scene's world.
func (ws *WalkScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

// Tick runs one logical frame with the given delta in seconds.
func (ws *WalkScene) Tick(dt float64) {
	ws.once.Do(ws.configure)
	systems.SetDeltaTime(ws.ecs, dt)
	ws.ecs.Update()
}

func (ws *WalkScene) Update() {
	ws.once.Do(ws.configure)

	ws.updateEngagement()
	systems.CollectKeyboard(ws.ecs)
	systems.CollectGamepads(ws.ecs)
	if systems.IsEngaged(ws.ecs) {
		ws.collectLook()
	}

	ws.Tick(1 / float64(ebiten.TPS()))
}

func (ws *WalkScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if !systems.IsEngaged(ws.ecs) && ws.overlay != nil {
		ws.overlay.Draw(screen)
	}
}

func (ws *WalkScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is drained only while engaged so a pause leaves it untouched
	ecs.AddSystem(systems.WithEngagedCheck(systems.UpdateInput))
	ecs.AddSystem(systems.WithEngagedCheck(systems.UpdateLocomotion))
	ecs.AddSystem(systems.WithEngagedCheck(systems.UpdateCameraSync))

	// Presentation runs even when disengaged
	ecs.AddSystem(systems.UpdateProps)

	ecs.AddRenderer(cfg.Default, systems.DrawMap)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	systems.ConfigureClock(ws.ecs, ws.tuning)
	factory.CreateCamera(ws.ecs, ws.scene.StartX, ws.tuning.Height, ws.scene.StartZ, ws.scene.StartYaw)
	factory.CreatePlayer(ws.ecs, ws.tuning)
	factory.CreateSpinningCube(ws.ecs, ws.scene, ws.tuning.ReferenceTPS)

	systems.SetEngaged(ws.ecs, ws.startEngaged)
}

// updateEngagement handles pointer capture: click or the overlay button
// engages, a disengage key or losing the captured cursor suspends.
func (ws *WalkScene) updateEngagement() {
	engaged := systems.IsEngaged(ws.ecs)

	if engaged {
		if ws.captured && ebiten.CursorMode() != ebiten.CursorModeCaptured {
			log.Debug().Msg("cursor capture lost")
			systems.SetEngaged(ws.ecs, false)
		}
		ws.keys = inpututil.AppendJustPressedKeys(ws.keys[:0])
		if cfg.Input.AnyDisengageKey(ws.keys) {
			systems.SetEngaged(ws.ecs, false)
		}
	} else {
		ws.updateOverlay()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			systems.SetEngaged(ws.ecs, true)
		}
	}

	ws.syncCursor()
}

func (ws *WalkScene) updateOverlay() {
	if ws.overlay == nil && !ws.overlayErr {
		overlay, err := ui.NewEngageUI(func() {
			systems.SetEngaged(ws.ecs, true)
		})
		if err != nil {
			log.Warn().Err(err).Msg("overlay unavailable, click anywhere to play")
			ws.overlayErr = true
			return
		}
		ws.overlay = overlay
	}
	if ws.overlay != nil {
		ws.overlay.Update()
	}
}

// syncCursor applies the engaged state to the host cursor.
func (ws *WalkScene) syncCursor() {
	engaged := systems.IsEngaged(ws.ecs)
	if engaged == ws.captured {
		return
	}
	if engaged {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		ws.cursorKnown = false
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	ws.captured = engaged
}

// collectLook queues horizontal cursor travel since the previous frame.
func (ws *WalkScene) collectLook() {
	x, _ := ebiten.CursorPosition()
	if ws.cursorKnown {
		if dx := x - ws.cursorX; dx != 0 {
			systems.PushLook(ws.ecs, float64(dx))
		}
	}
	ws.cursorX = x
	ws.cursorKnown = true
}
