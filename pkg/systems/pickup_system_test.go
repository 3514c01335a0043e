package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/utils"
)

func TestPickupAmmo(t *testing.T) {
	f := newMatchFixture(t, func(cfg *config.MatchConfig) {
		cfg.SpawnPoints = singlePoints(mgl64.Vec3{10, 0, 10}, mgl64.Vec3{0, 0, 0.5})
	})
	f.playerAmmo(t).Current = 10

	id, err := f.spawner.SpawnPickup()
	if err != nil || id == 0 {
		t.Fatalf("SpawnPickup got (%d, %v)", id, err)
	}

	f.pickups.Update(testFrame)

	if got, want := f.playerAmmo(t).Current, 10+f.cfg.Pickup.AmmoCount; got != want {
		t.Errorf("ammo got %d, want %d", got, want)
	}
	if !f.em.IsMarkedForDestroy(id) {
		t.Error("consumed pickup not destroyed")
	}
	if point, _ := f.registry.Get("pickup_1"); point.Occupied {
		t.Error("pickup point still occupied")
	}

	// 同一帧内不会被重复拾取
	f.pickups.Update(testFrame)
	if got, want := f.playerAmmo(t).Current, 10+f.cfg.Pickup.AmmoCount; got != want {
		t.Errorf("ammo after second update got %d, want %d", got, want)
	}
}

// TestPickupRespawnKeepsOccupancy 拾取后同一帧在同一刷新点重新刷出，帧末清理不能释放新拾取物的占用
func TestPickupRespawnKeepsOccupancy(t *testing.T) {
	f := newMatchFixture(t, func(cfg *config.MatchConfig) {
		cfg.SpawnPoints = singlePoints(mgl64.Vec3{10, 0, 10}, mgl64.Vec3{0, 0, 0.5})
	})
	f.playerAmmo(t).Current = 10

	first, _ := f.spawner.SpawnPickup()
	f.pickups.Update(testFrame)
	if !f.em.IsMarkedForDestroy(first) {
		t.Fatal("first pickup not consumed")
	}

	second, err := f.spawner.SpawnPickup()
	if err != nil || second == 0 {
		t.Fatalf("SpawnPickup on freed point got (%d, %v)", second, err)
	}

	f.em.RemoveMarkedEntities()

	if !f.em.Exists(second) {
		t.Fatal("second pickup removed")
	}
	if point, _ := f.registry.Get("pickup_1"); !point.Occupied {
		t.Error("point released while second pickup is still on it")
	}
	if id, _ := f.spawner.SpawnPickup(); id != 0 {
		t.Errorf("spawned pickup %d on an occupied point", id)
	}
	if got := countEntities[*components.PickupComponent](f.em); got != 1 {
		t.Errorf("pickups got %d, want 1", got)
	}
}

func TestPickupRejectedWhenFull(t *testing.T) {
	f := newMatchFixture(t, func(cfg *config.MatchConfig) {
		cfg.SpawnPoints = singlePoints(mgl64.Vec3{10, 0, 10}, mgl64.Vec3{0, 0, 0.5})
	})

	id, _ := f.spawner.SpawnPickup()
	f.pickups.Update(testFrame)

	if f.em.IsMarkedForDestroy(id) {
		t.Error("pickup destroyed although ammo was full")
	}
	if point, _ := f.registry.Get("pickup_1"); !point.Occupied {
		t.Error("failed pickup released its spawn point")
	}

	// 消耗弹药后再次进入范围即可拾取
	f.playerAmmo(t).Current--
	f.pickups.Update(testFrame)
	if !f.em.IsMarkedForDestroy(id) {
		t.Error("pickup not consumed after ammo dropped below max")
	}
}

func TestPickupHealthDrop(t *testing.T) {
	f := newMatchFixture(t, nil)
	f.playerHealth(t).Current = 50
	id := entities.NewPickupEntity(f.em, components.PickupHealth, 25, 60, mgl64.Vec3{0.5, 0, 0}, "")

	f.pickups.Update(testFrame)

	if got := f.playerHealth(t).Current; got != 75 {
		t.Errorf("health got %d, want 75", got)
	}
	if !f.em.IsMarkedForDestroy(id) {
		t.Error("consumed health pickup not destroyed")
	}
}

func TestPickupIgnoredWhenDeadOrFar(t *testing.T) {
	t.Run("dead", func(t *testing.T) {
		f := newMatchFixture(t, nil)
		f.killPlayer(t)
		id := entities.NewPickupEntity(f.em, components.PickupHealth, 25, 60, mgl64.Vec3{0, 0, 0.5}, "")

		f.pickups.Update(testFrame)

		if f.em.IsMarkedForDestroy(id) {
			t.Error("dead player consumed a pickup")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		f := newMatchFixture(t, nil)
		f.playerHealth(t).Current = 50
		id := entities.NewPickupEntity(f.em, components.PickupHealth, 25, 60, mgl64.Vec3{5, 0, 5}, "")

		f.pickups.Update(testFrame)

		if f.em.IsMarkedForDestroy(id) || f.playerHealth(t).Current != 50 {
			t.Error("pickup consumed out of range")
		}
	})
}

func TestPickupSpin(t *testing.T) {
	f := newMatchFixture(t, nil)
	id := entities.NewPickupEntity(f.em, components.PickupAmmo, 25, 60, mgl64.Vec3{5, 0, 5}, "")

	f.pickups.Update(0.5)

	tc, ok := ecs.GetComponent[*components.TransformComponent](f.em, id)
	if !ok {
		t.Fatal("pickup has no transform")
	}
	if got := utils.FlatYaw(tc.Rotation); math.Abs(got-30) > 1e-6 {
		t.Errorf("yaw got %v, want 30", got)
	}
}
