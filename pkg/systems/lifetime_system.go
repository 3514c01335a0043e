package systems

import (
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
)

// LifetimeSystem 推进延迟移除倒计时
// 到期的实体只被标记删除，外部句柄由删除钩子在帧末释放
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 倒计时并标记到期实体，返回本帧新到期的数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		lifetime.Remaining -= deltaTime
		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
