package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/scenes"
	"github.com/gonewx/deadzone/pkg/utils"
)

const (
	// 瞄准目标高度（僵尸身体中部）
	aimHeight = 1.0
	// 偏差小于该角度（度）时开火
	fireTolerance = 1.5
	// 僵尸进入该距离时后退
	retreatDistance = 6.0
	// 开火间隔（帧）
	fireEvery = 6
)

// bot 脚本化的输入源：瞄准最近的僵尸射击，没有弹药时去拿弹药
type bot struct {
	sceneManager *game.SceneManager
	frame        int
	shots        int
}

// Sample 实现 game.InputSource
func (b *bot) Sample() game.InputSnapshot {
	b.frame++

	scene, ok := b.sceneManager.GetCurrentScene().(*scenes.MatchScene)
	if !ok || !scene.PlayerAlive() {
		return game.InputSnapshot{}
	}
	em := scene.EntityManager()
	playerID := scene.PlayerID()

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	rig, _ := ecs.GetComponent[*components.CameraRigComponent](em, playerID)
	ammo, _ := ecs.GetComponent[*components.AmmoComponent](em, playerID)
	self, _ := ecs.GetComponent[*components.TransformComponent](em, playerID)
	if player == nil || rig == nil || ammo == nil || self == nil {
		return game.InputSnapshot{}
	}

	if ammo.Current == 0 {
		if target, ok := nearest(em, self.Position, pickupFilter); ok {
			in := b.look(player, self.Position.Add(mgl64.Vec3{0, 1.6, 0}), target.Add(mgl64.Vec3{0, 1.6, 0}))
			in.Forward = true
			return in
		}
	}

	target, ok := nearest(em, self.Position, aliveZombieFilter)
	if !ok {
		return game.InputSnapshot{Aim: true}
	}

	in := b.look(player, rig.CameraPosition(), target.Add(mgl64.Vec3{0, aimHeight, 0}))
	in.Aim = true
	if utils.Flatten(target.Sub(self.Position)).Len() < retreatDistance {
		in.Back = true
	}

	aligned := math.Abs(in.MouseDX) < fireTolerance && math.Abs(in.MouseDY) < fireTolerance
	if player.Aiming && aligned && ammo.Current > 0 && b.frame%fireEvery == 0 {
		in.FirePressed = true
		b.shots++
	}
	return in
}

// look 生成把镜头从 from 转向 to 所需的鼠标增量（默认灵敏度下 1 单位 = 1 度）
func (b *bot) look(player *components.PlayerComponent, from, to mgl64.Vec3) game.InputSnapshot {
	dir := to.Sub(from)
	flat := utils.Flatten(dir)
	yaw := mgl64.RadToDeg(math.Atan2(flat.X(), flat.Z()))
	pitch := mgl64.RadToDeg(math.Atan2(-dir.Y(), flat.Len()))

	dYaw := math.Mod(yaw-player.CameraYaw+540, 360) - 180
	dPitch := pitch - player.CameraPitch

	// 瞄准状态下灵敏度按默认倍率 1 计算
	return game.InputSnapshot{MouseDX: dYaw, MouseDY: dPitch}
}

func aliveZombieFilter(em *ecs.EntityManager, id ecs.EntityID) bool {
	if !ecs.HasComponent[*components.ZombieComponent](em, id) {
		return false
	}
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	return ok && h.IsAlive()
}

func pickupFilter(em *ecs.EntityManager, id ecs.EntityID) bool {
	p, ok := ecs.GetComponent[*components.PickupComponent](em, id)
	return ok && p.Type == components.PickupAmmo
}

// nearest 返回满足条件的最近实体位置
func nearest(em *ecs.EntityManager, from mgl64.Vec3, filter func(*ecs.EntityManager, ecs.EntityID) bool) (mgl64.Vec3, bool) {
	best := math.Inf(1)
	var pos mgl64.Vec3
	found := false
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](em) {
		if !filter(em, id) {
			continue
		}
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if d := tc.Position.Sub(from).Len(); d < best {
			best, pos, found = d, tc.Position, true
		}
	}
	return pos, found
}
