package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraSync copies the player's logical elevation onto the camera pose.
// Render code reads the camera; nothing writes back into PlayerData.
func UpdateCameraSync(e *ecs.ECS) {
	view, ok := NewCameraRig(e)
	if !ok {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, nothing to follow
	}
	player := components.Player.Get(playerEntry)
	view.SetElevation(player.Elevation)
}
