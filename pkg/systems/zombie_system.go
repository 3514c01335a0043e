package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/utils"
)

// zombieAttackHeight 攻击命中点相对玩家脚下的高度
const zombieAttackHeight = 1.5

// EnemyDeathReporter 接收敌人死亡通知
type EnemyDeathReporter interface {
	EnemyDied()
}

// ZombieSystem 僵尸 AI
//
// 每帧：攻击冷却递减，追踪玩家，进入攻击距离且冷却结束时攻击。
// 死亡边沿：停止寻路，转为动态刚体并施加冲量，掷骰掉落血包，通知比赛，延迟移除。
type ZombieSystem struct {
	entityManager *ecs.EntityManager
	config        *config.ZombieConfig
	pickupConfig  *config.PickupConfig
	playerID      ecs.EntityID
	combat        *CombatSystem
	reporter      EnemyDeathReporter
	rng           *game.PRNGService
}

// NewZombieSystem 创建僵尸系统
func NewZombieSystem(em *ecs.EntityManager, cfg *config.ZombieConfig, pickupCfg *config.PickupConfig, playerID ecs.EntityID,
	combat *CombatSystem, reporter EnemyDeathReporter, rng *game.PRNGService) *ZombieSystem {
	return &ZombieSystem{
		entityManager: em,
		config:        cfg,
		pickupConfig:  pickupCfg,
		playerID:      playerID,
		combat:        combat,
		reporter:      reporter,
		rng:           rng,
	}
}

// Update 更新所有僵尸
func (s *ZombieSystem) Update(deltaTime float64) {
	playerPos, hasPlayer := s.playerPosition()

	zombies := ecs.GetEntitiesWith3[*components.ZombieComponent, *components.HealthComponent, *components.TransformComponent](s.entityManager)
	for _, id := range zombies {
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		zombie.AttackTimer -= deltaTime

		if !health.IsAlive() || !hasPlayer {
			continue
		}

		position := transform.Position
		if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, id); ok {
			position = body.Body.Position()
		}

		// 追踪玩家
		if nav, ok := ecs.GetComponent[*components.NavAgentComponent](s.entityManager, id); ok && nav.Agent.Enabled() {
			nav.Agent.SetDestination(playerPos)
			if toPlayer := utils.Flatten(playerPos.Sub(position)); toPlayer.Len() > utils.Epsilon {
				transform.Rotation = utils.LookRotation(toPlayer)
			}
		}

		// 攻击
		if playerPos.Sub(position).Len() < s.config.AttackDistance && zombie.AttackTimer <= 0 {
			s.combat.ApplyHit(s.playerID, s.config.AttackDamage, playerPos.Add(mgl64.Vec3{0, zombieAttackHeight, 0}), position)
			zombie.AttackTimer = s.config.AttackInterval
		}
	}
}

// PlaceZombie 把僵尸放到指定位置
// 寻路代理控制下的实体只能通过 Warp 移动
func (s *ZombieSystem) PlaceZombie(id ecs.EntityID, position mgl64.Vec3) {
	if nav, ok := ecs.GetComponent[*components.NavAgentComponent](s.entityManager, id); ok {
		nav.Agent.Warp(position)
	}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		transform.Position = position
	}
}

// OnEntityDied 僵尸死亡边沿
func (s *ZombieSystem) OnEntityDied(event DeathEvent) {
	id := event.Entity
	if !ecs.HasComponent[*components.ZombieComponent](s.entityManager, id) {
		return
	}

	if nav, ok := ecs.GetComponent[*components.NavAgentComponent](s.entityManager, id); ok {
		nav.Agent.SetEnabled(false)
	}

	var position mgl64.Vec3
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		position = transform.Position
	}
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, id); ok {
		// 停止寻路后先清除残留速度，再交给物理
		body.Body.SetVelocity(mgl64.Vec3{})
		body.Body.SetKinematic(false)
		body.Body.AddForceAtPosition(event.Impulse, event.Point)
		position = body.Body.Position()
	}

	if odds := s.config.HealthDropOdds; odds > 0 && s.rng.Float64() <= odds {
		entities.NewPickupEntity(s.entityManager, components.PickupHealth, s.pickupConfig.HealthCount,
			s.pickupConfig.SpinSpeed, position, "")
		log.Printf("[ZombieSystem] Zombie %d dropped a health pickup", id)
	}

	if s.reporter != nil {
		s.reporter.EnemyDied()
	}

	// 尸体保留一段时间后移除
	ecs.AddComponent(s.entityManager, id, components.NewLifetime(s.config.LingerTime))
}

func (s *ZombieSystem) playerPosition() (mgl64.Vec3, bool) {
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, s.playerID); ok {
		return body.Body.Position(), true
	}
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.playerID); ok {
		return transform.Position, true
	}
	return mgl64.Vec3{}, false
}
