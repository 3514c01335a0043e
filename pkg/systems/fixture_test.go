package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/navigation"
	"github.com/gonewx/deadzone/pkg/physics"
)

// recordingHUD 记录所有 HUD 通知
type recordingHUD struct {
	health    float64
	ammo      float64
	crosshair bool
	died      int
	won       int
}

func (h *recordingHUD) SetHealth(v float64)        { h.health = v }
func (h *recordingHUD) SetAmmo(v float64)          { h.ammo = v }
func (h *recordingHUD) SetShowCrosshair(show bool) { h.crosshair = show }
func (h *recordingHUD) PlayerDied()                { h.died++ }
func (h *recordingHUD) GameWon()                   { h.won++ }

// recordingRestarter 记录重开请求
type recordingRestarter struct {
	requests int
}

func (r *recordingRestarter) RequestRestart() { r.requests++ }

// matchFixture 一局比赛的完整系统装配（不含场景）
type matchFixture struct {
	cfg       *config.MatchConfig
	em        *ecs.EntityManager
	world     *physics.World
	nav       *navigation.Service
	registry  *game.SpawnRegistry
	match     *game.MatchState
	hud       *recordingHUD
	restarter *recordingRestarter

	combat   *CombatSystem
	player   *PlayerSystem
	zombies  *ZombieSystem
	matchSys *MatchSystem
	spawner  *SpawnSystem
	pickups  *PickupSystem
	playerID ecs.EntityID
}

func newMatchFixture(t *testing.T, mutate func(cfg *config.MatchConfig)) *matchFixture {
	t.Helper()

	cfg := config.DefaultMatchConfig()
	if mutate != nil {
		mutate(cfg)
	}

	f := &matchFixture{
		cfg:       cfg,
		em:        ecs.NewEntityManager(),
		world:     physics.NewWorld(physics.Config{Gravity: cfg.Physics.Gravity, GroundHeight: cfg.Physics.GroundHeight}),
		nav:       navigation.NewService(navigation.DefaultStoppingDistance),
		registry:  game.NewSpawnRegistry(),
		match:     game.NewMatchState(cfg.Spawn.TotalEnemyCount),
		hud:       &recordingHUD{},
		restarter: &recordingRestarter{},
	}

	for _, sp := range cfg.SpawnPoints {
		pointType, err := game.ParseSpawnPointType(sp.Type)
		if err != nil {
			t.Fatalf("bad spawn point type: %v", err)
		}
		if err := f.registry.Register(sp.ID, pointType, sp.Position.Vec()); err != nil {
			t.Fatalf("Register(%s): %v", sp.ID, err)
		}
	}
	RegisterCleanupHooks(f.em, f.registry)

	rng := game.NewPRNGService(1)
	f.playerID = entities.NewPlayerEntity(f.em, f.world, &cfg.Player)
	f.combat = NewCombatSystem(f.em)
	f.player = NewPlayerSystem(f.em, f.playerID, &cfg.Player, nil, f.world, f.combat, f.hud)
	f.matchSys = NewMatchSystem(f.match, f.player, f.hud, f.restarter)
	f.zombies = NewZombieSystem(f.em, &cfg.Zombie, &cfg.Pickup, f.playerID, f.combat, f.matchSys, rng)
	f.spawner = NewSpawnSystem(f.em, SpawnSystemDeps{
		Config:       &cfg.Spawn,
		ZombieConfig: &cfg.Zombie,
		PickupConfig: &cfg.Pickup,
		Registry:     f.registry,
		Match:        f.match,
		RNG:          rng,
		World:        f.world,
		Pathing:      f.nav,
		Zombies:      f.zombies,
	})
	f.matchSys.SetSpawner(f.spawner)
	f.pickups = NewPickupSystem(f.em, f.player, f.registry, cfg.Pickup.TriggerRadius)

	f.combat.AddDeathListener(f.player)
	f.combat.AddDeathListener(f.zombies)

	return f
}

// spawnZombieAt 直接在指定位置创建僵尸（不经过刷新调度和预算）
func (f *matchFixture) spawnZombieAt(position mgl64.Vec3) ecs.EntityID {
	id := entities.NewZombieEntity(f.em, f.world, f.nav, &f.cfg.Zombie)
	f.zombies.PlaceZombie(id, position)
	return id
}

func (f *matchFixture) playerComponent(t *testing.T) *components.PlayerComponent {
	t.Helper()
	p, ok := ecs.GetComponent[*components.PlayerComponent](f.em, f.playerID)
	if !ok {
		t.Fatal("player component missing")
	}
	return p
}

func (f *matchFixture) playerHealth(t *testing.T) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](f.em, f.playerID)
	if !ok {
		t.Fatal("player health missing")
	}
	return h
}

func (f *matchFixture) playerAmmo(t *testing.T) *components.AmmoComponent {
	t.Helper()
	a, ok := ecs.GetComponent[*components.AmmoComponent](f.em, f.playerID)
	if !ok {
		t.Fatal("player ammo missing")
	}
	return a
}

func (f *matchFixture) playerRig(t *testing.T) *components.CameraRigComponent {
	t.Helper()
	r, ok := ecs.GetComponent[*components.CameraRigComponent](f.em, f.playerID)
	if !ok {
		t.Fatal("camera rig missing")
	}
	return r
}

func (f *matchFixture) playerBody(t *testing.T) *physics.Body {
	t.Helper()
	b, ok := ecs.GetComponent[*components.BodyComponent](f.em, f.playerID)
	if !ok {
		t.Fatal("player body missing")
	}
	return b.Body.(*physics.Body)
}

func (f *matchFixture) health(t *testing.T, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](f.em, id)
	if !ok {
		t.Fatalf("entity %d has no health", id)
	}
	return h
}

// killPlayer 用致命伤害杀死玩家
func (f *matchFixture) killPlayer(t *testing.T) {
	t.Helper()
	pos := f.player.Position()
	if !f.combat.ApplyHit(f.playerID, 10000, pos.Add(mgl64.Vec3{0, 1.5, 0}), pos.Add(mgl64.Vec3{0, 0, -1})) {
		t.Fatal("lethal hit did not kill the player")
	}
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func countEntities[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
