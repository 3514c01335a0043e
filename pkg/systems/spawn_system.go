package systems

import (
	"errors"
	"log"

	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
)

// 刷新点缺失错误
// 不是致命错误：每次尝试刷新都会记录，跳过本次刷新，计时器照常重置
var (
	ErrNoEnemySpawnPoints  = errors.New("no enemy spawn points found")
	ErrNoPickupSpawnPoints = errors.New("no pickup spawn points found")
)

// SpawnSystem 刷新调度
//
// 两个独立的倒计时：敌人刷新和弹药刷新。
// 计时器变为负数时尝试刷新，无论成功与否都重置为配置的间隔。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.SpawnConfig
	zombieConfig  *config.ZombieConfig
	pickupConfig  *config.PickupConfig
	registry      *game.SpawnRegistry
	match         *game.MatchState
	rng           *game.PRNGService
	world         game.PhysicsWorld
	pathing       game.Pathing
	zombies       *ZombieSystem

	enemySpawnTimer  float64
	pickupSpawnTimer float64
}

// SpawnSystemDeps 刷新调度依赖
type SpawnSystemDeps struct {
	Config       *config.SpawnConfig
	ZombieConfig *config.ZombieConfig
	PickupConfig *config.PickupConfig
	Registry     *game.SpawnRegistry
	Match        *game.MatchState
	RNG          *game.PRNGService
	World        game.PhysicsWorld
	Pathing      game.Pathing
	Zombies      *ZombieSystem
}

// NewSpawnSystem 创建刷新调度
func NewSpawnSystem(em *ecs.EntityManager, deps SpawnSystemDeps) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		config:        deps.Config,
		zombieConfig:  deps.ZombieConfig,
		pickupConfig:  deps.PickupConfig,
		registry:      deps.Registry,
		match:         deps.Match,
		rng:           deps.RNG,
		world:         deps.World,
		pathing:       deps.Pathing,
		zombies:       deps.Zombies,
	}
}

// Update 推进两个刷新计时器
func (s *SpawnSystem) Update(deltaTime float64) {
	s.enemySpawnTimer -= deltaTime
	s.pickupSpawnTimer -= deltaTime

	if s.enemySpawnTimer < 0 && s.match.EnemiesRemaining() > 0 {
		if _, err := s.SpawnEnemy(); err != nil {
			log.Printf("[SpawnSystem] ERROR: can't spawn enemy: %v", err)
		}
		s.enemySpawnTimer = s.config.EnemySpawnInterval
	}

	if s.pickupSpawnTimer < 0 {
		if _, err := s.SpawnPickup(); err != nil {
			log.Printf("[SpawnSystem] ERROR: can't spawn pickup: %v", err)
		}
		s.pickupSpawnTimer = s.config.PickupSpawnInterval
	}
}

// EnemySpawnTimer 返回敌人刷新倒计时
func (s *SpawnSystem) EnemySpawnTimer() float64 {
	return s.enemySpawnTimer
}

// PickupSpawnTimer 返回弹药刷新倒计时
func (s *SpawnSystem) PickupSpawnTimer() float64 {
	return s.pickupSpawnTimer
}

// SpawnEnemy 在随机敌人刷新点生成一个僵尸
//
// 返回:
//   - ecs.EntityID: 新僵尸，0 表示本次没有生成（达到上限或预算耗尽）
//   - error: 没有敌人刷新点时返回 ErrNoEnemySpawnPoints
func (s *SpawnSystem) SpawnEnemy() (ecs.EntityID, error) {
	if !s.match.CanSpawnEnemy(s.config.MaxEnemyCount) {
		return 0, nil
	}

	n := s.registry.EnemyPointCount()
	if n == 0 {
		return 0, ErrNoEnemySpawnPoints
	}
	point := s.registry.EnemyPointAt(s.rng.Intn(n))

	id := entities.NewZombieEntity(s.entityManager, s.world, s.pathing, s.zombieConfig)
	s.zombies.PlaceZombie(id, point.Position)
	s.match.EnemySpawned()

	log.Printf("[SpawnSystem] Spawned zombie %d at %s (remaining %d, alive %d)",
		id, point.ID, s.match.EnemiesRemaining(), s.match.CurrentEnemyCount())
	return id, nil
}

// SpawnPickup 在随机弹药刷新点生成弹药
// 选中的刷新点已被占用时本次不生成
func (s *SpawnSystem) SpawnPickup() (ecs.EntityID, error) {
	n := s.registry.PickupPointCount()
	if n == 0 {
		return 0, ErrNoPickupSpawnPoints
	}

	point := s.registry.PickupPointAt(s.rng.Intn(n))
	if point.Occupied {
		return 0, nil
	}

	id := entities.NewPickupEntity(s.entityManager, components.PickupAmmo, s.pickupConfig.AmmoCount,
		s.pickupConfig.SpinSpeed, point.Position, point.ID)
	s.registry.Occupy(point.ID)
	return id, nil
}
