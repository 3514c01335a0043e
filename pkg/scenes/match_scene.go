package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/navigation"
	"github.com/gonewx/deadzone/pkg/physics"
	"github.com/gonewx/deadzone/pkg/systems"
)

// MatchSceneOptions 创建比赛场景所需的外部输入
// 同一份选项可以反复用来创建场景（重开比赛）
type MatchSceneOptions struct {
	Config   *config.MatchConfig
	Controls *game.ControlSettings // nil 使用默认操作偏好
	Input    game.InputSource      // nil 表示没有输入
	HUD      game.HUD              // nil 丢弃所有 UI 通知
	Seed     int64
}

// MatchScene 一局完整的比赛
//
// 场景持有本局的所有状态：实体、物理世界、寻路服务、刷新点注册表和比赛状态。
// 重开时整个场景被丢弃，由工厂从静态配置重新创建。
type MatchScene struct {
	config        *config.MatchConfig
	entityManager *ecs.EntityManager
	world         *physics.World
	pathing       *navigation.Service
	registry      *game.SpawnRegistry
	matchState    *game.MatchState
	input         game.InputSource
	playerID      ecs.EntityID

	combatSystem   *systems.CombatSystem
	playerSystem   *systems.PlayerSystem
	zombieSystem   *systems.ZombieSystem
	spawnSystem    *systems.SpawnSystem
	pickupSystem   *systems.PickupSystem
	matchSystem    *systems.MatchSystem
	lifetimeSystem *systems.LifetimeSystem
	syncSystem     *systems.TransformSyncSystem

	lastInput game.InputSnapshot
	elapsed   float64
}

// NewMatchScene 从配置创建一局新比赛
func NewMatchScene(opts MatchSceneOptions, restarter game.Restarter) (*MatchScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultMatchConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	input := opts.Input
	if input == nil {
		input = game.InputSourceFunc(func() game.InputSnapshot { return game.InputSnapshot{} })
	}
	hud := opts.HUD
	if hud == nil {
		hud = game.NopHUD{}
	}

	s := &MatchScene{
		config:        cfg,
		entityManager: ecs.NewEntityManager(),
		world: physics.NewWorld(physics.Config{
			Gravity:      cfg.Physics.Gravity,
			GroundHeight: cfg.Physics.GroundHeight,
			Damping:      cfg.Physics.Damping,
		}),
		pathing:    navigation.NewService(navigation.DefaultStoppingDistance),
		registry:   game.NewSpawnRegistry(),
		matchState: game.NewMatchState(cfg.Spawn.TotalEnemyCount),
		input:      input,
	}

	// 刷新点在初始化时显式注册
	for _, sp := range cfg.SpawnPoints {
		pointType, err := game.ParseSpawnPointType(sp.Type)
		if err != nil {
			return nil, fmt.Errorf("spawn point %q: %w", sp.ID, err)
		}
		if err := s.registry.Register(sp.ID, pointType, sp.Position.Vec()); err != nil {
			return nil, fmt.Errorf("failed to register spawn point: %w", err)
		}
	}
	systems.RegisterCleanupHooks(s.entityManager, s.registry)

	rng := game.NewPRNGService(opts.Seed)
	em := s.entityManager

	s.playerID = entities.NewPlayerEntity(em, s.world, &cfg.Player)
	s.combatSystem = systems.NewCombatSystem(em)
	s.playerSystem = systems.NewPlayerSystem(em, s.playerID, &cfg.Player, opts.Controls, s.world, s.combatSystem, hud)
	s.matchSystem = systems.NewMatchSystem(s.matchState, s.playerSystem, hud, restarter)
	s.zombieSystem = systems.NewZombieSystem(em, &cfg.Zombie, &cfg.Pickup, s.playerID, s.combatSystem, s.matchSystem, rng)
	s.spawnSystem = systems.NewSpawnSystem(em, systems.SpawnSystemDeps{
		Config:       &cfg.Spawn,
		ZombieConfig: &cfg.Zombie,
		PickupConfig: &cfg.Pickup,
		Registry:     s.registry,
		Match:        s.matchState,
		RNG:          rng,
		World:        s.world,
		Pathing:      s.pathing,
		Zombies:      s.zombieSystem,
	})
	s.matchSystem.SetSpawner(s.spawnSystem)
	s.pickupSystem = systems.NewPickupSystem(em, s.playerSystem, s.registry, cfg.Pickup.TriggerRadius)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.syncSystem = systems.NewTransformSyncSystem(em)

	s.combatSystem.AddDeathListener(s.playerSystem)
	s.combatSystem.AddDeathListener(s.zombieSystem)

	log.Printf("[MatchScene] Match created: %d enemy points, %d pickup points, budget %d, seed %d",
		s.registry.EnemyPointCount(), s.registry.PickupPointCount(), cfg.Spawn.TotalEnemyCount, opts.Seed)
	return s, nil
}

// NewMatchSceneFactory 返回供 SceneManager 使用的场景工厂
// 每次调用都从同一份静态配置创建全新的比赛
func NewMatchSceneFactory(opts MatchSceneOptions) game.SceneFactory {
	return func(restarter game.Restarter) (game.Scene, error) {
		return NewMatchScene(opts, restarter)
	}
}

// Update 可变步长阶段
// 顺序：输入 → 玩家 → 僵尸 → 拾取物 → 比赛（刷新调度、重开） → 生命周期 → 寻路
func (s *MatchScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.lastInput = s.input.Sample()

	s.playerSystem.UpdateInput(deltaTime, s.lastInput)
	s.zombieSystem.Update(deltaTime)
	s.pickupSystem.Update(deltaTime)
	s.matchSystem.Update(deltaTime, s.lastInput)
	s.lifetimeSystem.Update(deltaTime)
	s.pathing.Step(deltaTime)
	s.syncSystem.Update(deltaTime)
}

// FixedUpdate 固定步长阶段：玩家移动 → 物理步
func (s *MatchScene) FixedUpdate(fixedStep float64) {
	s.playerSystem.UpdateMovement(fixedStep)
	s.world.Step(fixedStep)
	s.syncSystem.Update(fixedStep)
}

// LateUpdate 帧末阶段：镜头 → HUD → 清理实体
func (s *MatchScene) LateUpdate(deltaTime float64) {
	s.playerSystem.UpdateCamera(deltaTime)
	s.playerSystem.UpdateUI()
	s.entityManager.RemoveMarkedEntities()
}

// Dispose 场景被替换时调用
func (s *MatchScene) Dispose() {
	log.Printf("[MatchScene] Match disposed after %.1fs (remaining %d, alive %d, won %v)",
		s.elapsed, s.matchState.EnemiesRemaining(), s.matchState.CurrentEnemyCount(), s.matchState.IsGameWon())
}

// EntityManager 返回本局的实体管理器（渲染使用）
func (s *MatchScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerID 返回玩家实体
func (s *MatchScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// MatchState 返回本局比赛状态
func (s *MatchScene) MatchState() *game.MatchState {
	return s.matchState
}

// Registry 返回刷新点注册表
func (s *MatchScene) Registry() *game.SpawnRegistry {
	return s.registry
}

// Combat 返回战斗系统
func (s *MatchScene) Combat() *systems.CombatSystem {
	return s.combatSystem
}

// PlayerAlive 玩家是否存活
func (s *MatchScene) PlayerAlive() bool {
	return s.playerSystem.IsAlive()
}

// CanRestart 是否允许重开
func (s *MatchScene) CanRestart() bool {
	return s.matchSystem.CanRestart()
}

// Elapsed 本局已经过的时间（秒）
func (s *MatchScene) Elapsed() float64 {
	return s.elapsed
}

// Config 返回本局使用的配置
func (s *MatchScene) Config() *config.MatchConfig {
	return s.config
}
