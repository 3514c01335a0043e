package entities

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
)

// NewPickupEntity 创建拾取物实体
// ownerID 为空表示不属于任何刷新点（僵尸掉落的血包）
func NewPickupEntity(em *ecs.EntityManager, pickupType components.PickupType, count int, spinSpeed float64, position mgl64.Vec3, ownerID string) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, components.NewTransform(position))
	em.AddComponent(id, &components.PickupComponent{
		Type:      pickupType,
		Count:     count,
		SpinSpeed: spinSpeed,
		OwnerID:   ownerID,
	})

	return id
}
