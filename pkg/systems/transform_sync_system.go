package systems

import (
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
)

// TransformSyncSystem 将刚体位置同步到变换组件
// 物理步和寻路步之后调用，保证渲染和 AI 读取到最新位置
type TransformSyncSystem struct {
	entityManager *ecs.EntityManager
}

// NewTransformSyncSystem 创建同步系统
func NewTransformSyncSystem(em *ecs.EntityManager) *TransformSyncSystem {
	return &TransformSyncSystem{entityManager: em}
}

// Update 同步所有带刚体的实体
func (s *TransformSyncSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.BodyComponent, *components.TransformComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		transform.Position = body.Body.Position()
	}
}
