package systems

import (
	"fmt"
	"math"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the numeric locomotion readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	mode := "airborne"
	if player.Grounded {
		mode = "grounded"
	}

	lines := []string{
		fmt.Sprintf("pos  %6.2f %6.2f %6.2f", camera.Position.X, camera.Position.Y, camera.Position.Z),
		fmt.Sprintf("yaw  %6.1f deg", camera.Yaw*180/math.Pi),
		fmt.Sprintf("vy   %6.2f  %s", player.VerticalVelocity, mode),
		fmt.Sprintf("ticks %d", GetOrCreateClock(ecs).Ticks),
	}

	lineHeight := int(cfg.HUD.FontSize) + 4
	text.Draw(screen, "firstperson", fonts.Regular.Get(), 8, lineHeight, cfg.HUD.TextColor)

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, lineHeight*(i+2), cfg.HUD.TextColor)
	}
}
