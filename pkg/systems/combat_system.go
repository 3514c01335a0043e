package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/utils"
)

// DeathEvent 死亡边沿事件
type DeathEvent struct {
	Entity  ecs.EntityID
	Impulse mgl64.Vec3 // normalize(Point - Origin) * DeathForce
	Point   mgl64.Vec3 // 命中点
	Origin  mgl64.Vec3 // 伤害来源位置
}

// DeathListener 接收死亡事件
// 监听者自行判断实体是否归自己处理，并施加冲量和各自的副作用
type DeathListener interface {
	OnEntityDied(event DeathEvent)
}

// CombatSystem 战斗结算
//
// 所有伤害都通过 ApplyHit 同步结算。死亡边沿由 HealthComponent.Dead 保证只触发一次，
// 因此同一帧内的重复命中不会重复分发死亡事件。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	listeners     []DeathListener
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager) *CombatSystem {
	return &CombatSystem{entityManager: em}
}

// AddDeathListener 注册死亡事件监听者
func (s *CombatSystem) AddDeathListener(listener DeathListener) {
	s.listeners = append(s.listeners, listener)
}

// IsAlive 检查实体是否存活（没有生命值组件的实体视为不可被伤害）
func (s *CombatSystem) IsAlive(id ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	return ok && health.IsAlive()
}

// ApplyHit 对目标造成伤害
//
// 参数:
//   - target: 目标实体
//   - damage: 伤害值
//   - point: 命中点（死亡冲量的作用点）
//   - origin: 伤害来源位置
//
// 返回:
//   - bool: 本次命中是否杀死了目标
func (s *CombatSystem) ApplyHit(target ecs.EntityID, damage int, point, origin mgl64.Vec3) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok || !health.IsAlive() {
		return false
	}

	remaining, died := health.Subtract(damage)
	if !died {
		log.Printf("[CombatSystem] Entity %d hit for %d, health %d/%d", target, damage, remaining, health.Max)
		return false
	}

	event := DeathEvent{
		Entity:  target,
		Impulse: utils.SafeNormalize(point.Sub(origin)).Mul(health.DeathForce),
		Point:   point,
		Origin:  origin,
	}
	log.Printf("[CombatSystem] Entity %d died", target)

	for _, l := range s.listeners {
		l.OnEntityDied(event)
	}
	return true
}
