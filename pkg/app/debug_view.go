package app

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/scenes"
	"github.com/gonewx/deadzone/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	groundColor      = color.RGBA{0x2a, 0x33, 0x2a, 0xff}
	playerColor      = color.RGBA{0x40, 0x90, 0xff, 0xff}
	zombieColor      = color.RGBA{0x60, 0xb0, 0x40, 0xff}
	deadZombieColor  = color.RGBA{0x50, 0x50, 0x50, 0xff}
	healthPickColor  = color.RGBA{0xff, 0x50, 0x50, 0xff}
	ammoPickColor    = color.RGBA{0xff, 0xd0, 0x40, 0xff}
	bloodColor       = color.RGBA{0xa0, 0x00, 0x00, 0xff}
	sparkColor       = color.RGBA{0xff, 0xff, 0xa0, 0xff}
	enemyPointColor  = color.RGBA{0x80, 0x20, 0x20, 0xff}
	pickupPointColor = color.RGBA{0x80, 0x80, 0x20, 0xff}
)

// DebugView 俯视图调试渲染
// 世界 XZ 平面投影到屏幕，玩家位于屏幕中心
type DebugView struct {
	// Scale 每米对应的像素数
	Scale float64
	face  *text.GoXFace
}

// NewDebugView 创建俯视图
func NewDebugView() *DebugView {
	return &DebugView{
		Scale: 12,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// worldToScreen 以 center 为屏幕中心投影世界坐标（+Z 朝屏幕上方）
func (v *DebugView) worldToScreen(p, center mgl64.Vec3, sw, sh int) (float32, float32) {
	x := float64(sw)/2 + (p.X()-center.X())*v.Scale
	y := float64(sh)/2 - (p.Z()-center.Z())*v.Scale
	return float32(x), float32(y)
}

// Draw 绘制比赛场景
func (v *DebugView) Draw(screen *ebiten.Image, scene *scenes.MatchScene) {
	screen.Fill(groundColor)
	if scene == nil {
		return
	}

	em := scene.EntityManager()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	var center mgl64.Vec3
	if tc, ok := ecs.GetComponent[*components.TransformComponent](em, scene.PlayerID()); ok {
		center = tc.Position
	}
	proj := func(p mgl64.Vec3) (float32, float32) { return v.worldToScreen(p, center, sw, sh) }

	registry := scene.Registry()
	for i := 0; i < registry.EnemyPointCount(); i++ {
		v.drawSpawnPoint(screen, registry.EnemyPointAt(i), enemyPointColor, proj)
	}
	for i := 0; i < registry.PickupPointCount(); i++ {
		v.drawSpawnPoint(screen, registry.PickupPointAt(i), pickupPointColor, proj)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PickupComponent, *components.TransformComponent](em) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](em, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		clr := ammoPickColor
		if pickup.Type == components.PickupHealth {
			clr = healthPickColor
		}
		x, y := proj(tc.Position)
		vector.DrawFilledRect(screen, x-4, y-4, 8, 8, clr, false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.TransformComponent](em) {
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		clr := zombieColor
		if h, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && !h.IsAlive() {
			clr = deadZombieColor
		}
		v.drawActor(screen, tc, clr, proj)
	}

	if tc, ok := ecs.GetComponent[*components.TransformComponent](em, scene.PlayerID()); ok {
		clr := playerColor
		if !scene.PlayerAlive() {
			clr = deadZombieColor
		}
		v.drawActor(screen, tc, clr, proj)
		if rig, ok := ecs.GetComponent[*components.CameraRigComponent](em, scene.PlayerID()); ok {
			x0, y0 := proj(rig.SlotPosition)
			x1, y1 := proj(rig.SlotPosition.Add(utils.Flatten(rig.CameraForward()).Mul(3)))
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.White, false)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.HitEffectComponent, *components.TransformComponent](em) {
		effect, _ := ecs.GetComponent[*components.HitEffectComponent](em, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		clr := sparkColor
		if effect.Blood {
			clr = bloodColor
		}
		x, y := proj(tc.Position)
		vector.DrawFilledCircle(screen, x, y, 2, clr, false)
	}

	v.drawStatus(screen, scene.MatchState(), scene.Elapsed())
}

func (v *DebugView) drawActor(screen *ebiten.Image, tc *components.TransformComponent, clr color.Color,
	proj func(mgl64.Vec3) (float32, float32)) {
	x, y := proj(tc.Position)
	r := float32(0.5 * v.Scale)
	vector.DrawFilledCircle(screen, x, y, r, clr, true)

	fx, fy := proj(tc.Position.Add(tc.Rotation.Rotate(utils.Forward)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, color.Black, false)
}

func (v *DebugView) drawSpawnPoint(screen *ebiten.Image, point *game.SpawnPoint, clr color.Color,
	proj func(mgl64.Vec3) (float32, float32)) {
	x, y := proj(point.Position)
	vector.StrokeCircle(screen, x, y, 6, 1, clr, false)
}

func (v *DebugView) drawStatus(screen *ebiten.Image, match *game.MatchState, elapsed float64) {
	status := fmt.Sprintf("time %5.1fs  alive %d  remaining %d", elapsed, match.CurrentEnemyCount(), match.EnemiesRemaining())
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	text.Draw(screen, status, v.face, op)
}
