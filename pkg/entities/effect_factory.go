package entities

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
)

// NewHitEffectEntity 在命中点创建命中特效
// 特效在 lifetime 秒后由 LifetimeSystem 移除
func NewHitEffectEntity(em *ecs.EntityManager, point mgl64.Vec3, blood bool, lifetime float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, components.NewTransform(point))
	em.AddComponent(id, &components.HitEffectComponent{Blood: blood})
	em.AddComponent(id, components.NewLifetime(lifetime))

	return id
}
