package entities

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/navigation"
	"github.com/gonewx/deadzone/pkg/physics"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	world := physics.NewWorld(physics.Config{Gravity: -9.81})
	cfg := config.DefaultMatchConfig().Player

	id := NewPlayerEntity(em, world, &cfg)

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatal("player should have HealthComponent")
	}
	if health.Current != cfg.MaxHealth || health.Max != cfg.MaxHealth {
		t.Errorf("health = %d/%d, want %d/%d", health.Current, health.Max, cfg.MaxHealth, cfg.MaxHealth)
	}

	ammo, ok := ecs.GetComponent[*components.AmmoComponent](em, id)
	if !ok || ammo.Current != cfg.MaxAmmo {
		t.Errorf("ammo should start full at %d", cfg.MaxAmmo)
	}

	body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	if !ok {
		t.Fatal("player should have BodyComponent")
	}
	if !body.Body.(*physics.Body).RotationLocked() {
		t.Error("living player body should have rotation locked")
	}

	rig, ok := ecs.GetComponent[*components.CameraRigComponent](em, id)
	if !ok {
		t.Fatal("player should have CameraRigComponent")
	}
	if rig.FOV != cfg.FOVNormal {
		t.Errorf("FOV = %v, want %v", rig.FOV, cfg.FOVNormal)
	}

	// 落地回调设置 Grounded
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.Grounded {
		t.Fatal("player should not start grounded before the first physics step")
	}
	world.Step(0.02)
	if !player.Grounded {
		t.Error("player should be grounded after touching the ground")
	}
}

func TestNewZombieEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	world := physics.NewWorld(physics.Config{Gravity: -9.81})
	nav := navigation.NewService(navigation.DefaultStoppingDistance)
	cfg := config.DefaultMatchConfig().Zombie

	id := NewZombieEntity(em, world, nav, &cfg)

	if !ecs.HasComponent[*components.ZombieComponent](em, id) {
		t.Error("zombie should have ZombieComponent")
	}
	body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	if !ok || !body.Body.(*physics.Body).IsKinematic() {
		t.Error("zombie body should be kinematic while navigating")
	}
	agent, ok := ecs.GetComponent[*components.NavAgentComponent](em, id)
	if !ok || !agent.Agent.Enabled() {
		t.Error("zombie nav agent should be enabled")
	}

	agent.Agent.Warp(mgl64.Vec3{3, 0, 4})
	if body.Body.Position() != (mgl64.Vec3{3, 0, 4}) {
		t.Errorf("warp should move the body, got %v", body.Body.Position())
	}
}

func TestNewPickupEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewPickupEntity(em, components.PickupAmmo, 25, 60, mgl64.Vec3{1, 0, 1}, "pickup_n")

	pickup, ok := ecs.GetComponent[*components.PickupComponent](em, id)
	if !ok {
		t.Fatal("pickup should have PickupComponent")
	}
	if pickup.Type != components.PickupAmmo || pickup.Count != 25 || pickup.OwnerID != "pickup_n" {
		t.Errorf("pickup = %+v", pickup)
	}
}

func TestNewHitEffectEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewHitEffectEntity(em, mgl64.Vec3{0, 1, 2}, true, 1)

	effect, ok := ecs.GetComponent[*components.HitEffectComponent](em, id)
	if !ok || !effect.Blood {
		t.Error("expected blood hit effect")
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.Duration != 1 {
		t.Error("hit effect should expire after 1 second")
	}
}
