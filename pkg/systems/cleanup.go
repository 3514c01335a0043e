package systems

import (
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
)

// RegisterCleanupHooks 注册实体删除钩子
// 实体被删除时释放它持有的外部资源：物理刚体、寻路代理、拾取物刷新点占用
func RegisterCleanupHooks(em *ecs.EntityManager, registry *game.SpawnRegistry) {
	em.OnDestroy(func(id ecs.EntityID) {
		if pickup, ok := ecs.GetComponent[*components.PickupComponent](em, id); ok && registry != nil {
			registry.Release(pickup.OwnerID)
		}
		if nav, ok := ecs.GetComponent[*components.NavAgentComponent](em, id); ok {
			nav.Agent.Remove()
		}
		if body, ok := ecs.GetComponent[*components.BodyComponent](em, id); ok {
			body.Body.Remove()
		}
	})
}
