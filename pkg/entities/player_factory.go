package entities

import (
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
)

// PlayerHeight 玩家刚体高度
const PlayerHeight = 1.8

// NewPlayerEntity 创建玩家实体
// 参数:
//   - em: EntityManager 实例
//   - world: 物理世界，用于创建玩家刚体
//   - cfg: 玩家配置
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, world game.PhysicsWorld, cfg *config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()
	spawn := cfg.SpawnPosition.Vec()

	em.AddComponent(id, components.NewTransform(spawn))
	em.AddComponent(id, components.NewHealth(cfg.MaxHealth, cfg.DeathForce))
	em.AddComponent(id, components.NewAmmo(cfg.MaxAmmo))

	player := components.NewPlayerComponent()
	em.AddComponent(id, player)

	// 存活时锁定旋转，死亡时解锁（布娃娃效果）
	body := world.NewBody(id, spawn, cfg.Radius, PlayerHeight)
	body.SetRotationLocked(true)
	world.OnGroundContact(body, func() {
		player.Grounded = true
	})
	em.AddComponent(id, &components.BodyComponent{Body: body})

	slot := spawn.Add(cfg.CameraFollowOffset.Vec())
	rig := &components.CameraRigComponent{
		SlotPosition:        slot,
		CurrentSlotPosition: slot,
		SlotRotation:        player.MeshRotation,
		CameraOffset:        cfg.FreelookOffset.Vec(),
		FOV:                 cfg.FOVNormal,
	}
	em.AddComponent(id, rig)

	return id
}
