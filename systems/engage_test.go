package systems

import (
	"testing"

	cfg "github.com/automoto/firstperson/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSetEngagedReportsChanges(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())

	assert.False(t, IsEngaged(w), "worlds start disengaged")
	assert.True(t, SetEngaged(w, true))
	assert.False(t, SetEngaged(w, true))
	assert.True(t, IsEngaged(w))
	assert.True(t, SetEngaged(w, false))
}

func TestWithEngagedCheckSkipsWhileDisengaged(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	calls := 0
	wrapped := WithEngagedCheck(func(*ecs.ECS) { calls++ })

	wrapped(w)
	assert.Equal(t, 0, calls)

	SetEngaged(w, true)
	wrapped(w)
	assert.Equal(t, 1, calls)
}

func TestDisengagedTickLeavesStateUntouched(t *testing.T) {
	tuning := cfg.DefaultLocomotion()
	w := newTestWorld(t, tuning)

	// Get airborne and moving, then pause mid-jump
	PushAction(w, cfg.ActionJump, true)
	PushAction(w, cfg.ActionMoveForward, true)
	tick(w, 1/tuning.ReferenceTPS)
	SetEngaged(w, false)

	player := *playerOf(t, w)
	camera := *cameraOf(t, w)
	input := *GetOrCreateInput(w)

	PushAction(w, cfg.ActionMoveForward, false)
	PushLook(w, 50)
	for i := 0; i < 30; i++ {
		tick(w, 1/tuning.ReferenceTPS)
	}

	assert.Equal(t, player, *playerOf(t, w))
	assert.Equal(t, camera, *cameraOf(t, w))
	assert.Equal(t, input, *GetOrCreateInput(w))

	// Re-engaging resumes and applies what was queued meanwhile
	SetEngaged(w, true)
	tick(w, 1/tuning.ReferenceTPS)
	assert.False(t, GetOrCreateInput(w).IsPressed(cfg.ActionMoveForward))
	assert.NotEqual(t, player.Elevation, playerOf(t, w).Elevation)
}
