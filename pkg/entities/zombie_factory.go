package entities

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
)

// ZombieHeight 僵尸刚体高度
const ZombieHeight = 1.8

// NewZombieEntity 创建僵尸实体
//
// 僵尸刚体是运动学的，由寻路代理驱动；调用方随后通过 Warp 放置到刷新点。
//
// 参数:
//   - em: EntityManager 实例
//   - world: 物理世界
//   - pathing: 寻路服务
//   - cfg: 僵尸配置
//
// 返回: 创建的实体ID
func NewZombieEntity(em *ecs.EntityManager, world game.PhysicsWorld, pathing game.Pathing, cfg *config.ZombieConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, components.NewTransform(mgl64.Vec3{}))
	em.AddComponent(id, components.NewHealth(cfg.MaxHealth, cfg.DeathForce))
	em.AddComponent(id, &components.ZombieComponent{})

	body := world.NewBody(id, mgl64.Vec3{}, cfg.Radius, ZombieHeight)
	body.SetKinematic(true)
	em.AddComponent(id, &components.BodyComponent{Body: body})

	agent := pathing.NewAgent(body, cfg.MoveSpeed)
	em.AddComponent(id, &components.NavAgentComponent{Agent: agent})

	return id
}
