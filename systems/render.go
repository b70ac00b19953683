package systems

import (
	"math"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawMap renders a top-down view of the floor, the props and the camera.
// Screen up is world +z; world x is mirrored so the camera's right is
// screen right when facing +z.
func DrawMap(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	origin := dmath.Vec2{X: width / 2, Y: height / 2}
	scale := cfg.HUD.MapScale

	toScreen := func(x, z float64) (float32, float32) {
		return float32(origin.X - x*scale), float32(origin.Y - z*scale)
	}

	// Floor plane
	half := cfg.Scene.FloorSize / 2
	fx, fy := toScreen(half, half)
	side := float32(cfg.Scene.FloorSize * scale)
	vector.StrokeRect(screen, fx, fy, side, side, 1, cfg.HUD.FloorColor, false)

	// Props, rotated about y
	components.Spin.Each(ecs.World, func(e *donburi.Entry) {
		spin := components.Spin.Get(e)
		drawSquare(screen, toScreen, spin.X, spin.Z, spin.Size/2, spin.RotationY)
	})

	// Camera marker and facing
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	px, py := toScreen(camera.Position.X, camera.Position.Z)
	vector.FillRect(screen, px-3, py-3, 6, 6, cfg.HUD.PlayerColor, false)

	f := gamemath.Forward(camera.Yaw)
	tx, ty := toScreen(
		camera.Position.X+f.X*cfg.HUD.FacingLength,
		camera.Position.Z+f.Y*cfg.HUD.FacingLength,
	)
	vector.StrokeLine(screen, px, py, tx, ty, 2, cfg.HUD.PlayerColor, true)
}

func drawSquare(screen *ebiten.Image, toScreen func(x, z float64) (float32, float32), cx, cz, half, rotation float64) {
	sin, cos := math.Sincos(rotation)
	corners := [4]dmath.Vec2{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		ax, ay := toScreen(cx+a.X*cos-a.Y*sin, cz+a.X*sin+a.Y*cos)
		bx, by := toScreen(cx+b.X*cos-b.Y*sin, cz+b.X*sin+b.Y*cos)
		vector.StrokeLine(screen, ax, ay, bx, by, 2, cfg.HUD.CubeColor, true)
	}
}
