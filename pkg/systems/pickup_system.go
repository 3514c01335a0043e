package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/utils"
)

// ResourceReceiver 可以接收拾取物的对象
type ResourceReceiver interface {
	Position() mgl64.Vec3
	AddHealth(amount int) bool
	AddAmmo(amount int) bool
}

// PickupSystem 拾取物
//
// 拾取物每帧自转；玩家进入触发半径时尝试拾取。
// 拾取成功才销毁拾取物并释放所属刷新点，失败（已满或已死亡）时保持原样。
type PickupSystem struct {
	entityManager *ecs.EntityManager
	receiver      ResourceReceiver
	registry      *game.SpawnRegistry
	triggerRadius float64
}

// NewPickupSystem 创建拾取物系统
func NewPickupSystem(em *ecs.EntityManager, receiver ResourceReceiver, registry *game.SpawnRegistry, triggerRadius float64) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		receiver:      receiver,
		registry:      registry,
		triggerRadius: triggerRadius,
	}
}

// Update 更新所有拾取物
func (s *PickupSystem) Update(deltaTime float64) {
	receiverPos := s.receiver.Position()

	pickups := ecs.GetEntitiesWith2[*components.PickupComponent, *components.TransformComponent](s.entityManager)
	for _, id := range pickups {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Rotation = transform.Rotation.Mul(utils.YawRotation(pickup.SpinSpeed * deltaTime)).Normalize()

		if receiverPos.Sub(transform.Position).Len() > s.triggerRadius {
			continue
		}

		var pickedUp bool
		switch pickup.Type {
		case components.PickupHealth:
			pickedUp = s.receiver.AddHealth(pickup.Count)
		case components.PickupAmmo:
			pickedUp = s.receiver.AddAmmo(pickup.Count)
		}
		if !pickedUp {
			continue
		}

		log.Printf("[PickupSystem] Picked up %s x%d", pickup.Type, pickup.Count)
		// 刷新点在此立即释放，清空 OwnerID 使删除钩子不再重复释放
		s.registry.Release(pickup.OwnerID)
		pickup.OwnerID = ""
		s.entityManager.DestroyEntity(id)
	}
}
