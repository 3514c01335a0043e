package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/components"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/physics"
)

func TestZombieAttackCooldown(t *testing.T) {
	f := newMatchFixture(t, nil)
	zombie := f.spawnZombieAt(mgl64.Vec3{0, 0, 1.5})
	damage := f.cfg.Zombie.AttackDamage
	maxHealth := f.cfg.Player.MaxHealth

	f.zombies.Update(testFrame)
	if got := f.playerHealth(t).Current; got != maxHealth-damage {
		t.Fatalf("health after first attack got %d, want %d", got, maxHealth-damage)
	}
	zc, _ := ecs.GetComponent[*components.ZombieComponent](f.em, zombie)
	if zc.AttackTimer != f.cfg.Zombie.AttackInterval {
		t.Errorf("attack timer got %v, want %v", zc.AttackTimer, f.cfg.Zombie.AttackInterval)
	}

	f.zombies.Update(0.5)
	if got := f.playerHealth(t).Current; got != maxHealth-damage {
		t.Errorf("attacked during cooldown: health got %d, want %d", got, maxHealth-damage)
	}

	// 冷却恰好归零时可以攻击
	f.zombies.Update(0.5)
	if got := f.playerHealth(t).Current; got != maxHealth-2*damage {
		t.Errorf("health after cooldown got %d, want %d", got, maxHealth-2*damage)
	}
}

func TestZombiePursuit(t *testing.T) {
	f := newMatchFixture(t, nil)
	zombie := f.spawnZombieAt(mgl64.Vec3{0, 0, 10})

	f.zombies.Update(testFrame)
	if got := f.playerHealth(t).Current; got != f.cfg.Player.MaxHealth {
		t.Errorf("attacked out of range: health got %d", got)
	}

	f.nav.Step(1)

	nav, _ := ecs.GetComponent[*components.NavAgentComponent](f.em, zombie)
	want := mgl64.Vec3{0, 0, 10 - f.cfg.Zombie.MoveSpeed}
	if got := nav.Agent.Position(); !vecNear(got, want) {
		t.Errorf("zombie position got %v, want %v", got, want)
	}
}

func TestDeadZombieDoesNotAttack(t *testing.T) {
	f := newMatchFixture(t, nil)
	zombie := f.spawnZombieAt(mgl64.Vec3{0, 0, 1})
	f.combat.ApplyHit(zombie, 1000, mgl64.Vec3{0, 1, 1}, mgl64.Vec3{0, 1, 0})

	f.zombies.Update(testFrame)

	if got := f.playerHealth(t).Current; got != f.cfg.Player.MaxHealth {
		t.Errorf("dead zombie attacked: health got %d", got)
	}
}

func TestZombieDeath(t *testing.T) {
	tests := []struct {
		name     string
		dropOdds float64
		wantDrop bool
	}{
		{"always drops", 1, true},
		{"never drops", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMatchFixture(t, func(cfg *config.MatchConfig) {
				cfg.Zombie.HealthDropOdds = tt.dropOdds
			})
			zombie := f.spawnZombieAt(mgl64.Vec3{4, 0, 4})

			if !f.combat.ApplyHit(zombie, f.cfg.Zombie.MaxHealth, mgl64.Vec3{4, 1, 4}, mgl64.Vec3{4, 1, 0}) {
				t.Fatal("lethal hit did not kill the zombie")
			}

			nav, _ := ecs.GetComponent[*components.NavAgentComponent](f.em, zombie)
			if nav.Agent.Enabled() {
				t.Error("nav agent still enabled")
			}
			bc, _ := ecs.GetComponent[*components.BodyComponent](f.em, zombie)
			body := bc.Body.(*physics.Body)
			if body.IsKinematic() {
				t.Error("body still kinematic")
			}
			wantImpulse := mgl64.Vec3{0, 0, f.cfg.Zombie.DeathForce}
			if got := body.PendingForce(); !vecNear(got, wantImpulse) {
				t.Errorf("impulse got %v, want %v", got, wantImpulse)
			}

			lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](f.em, zombie)
			if !ok || lifetime.Remaining != f.cfg.Zombie.LingerTime {
				t.Errorf("linger lifetime missing or wrong: %+v", lifetime)
			}

			pickups := ecs.GetEntitiesWith1[*components.PickupComponent](f.em)
			if got := len(pickups) == 1; got != tt.wantDrop {
				t.Fatalf("pickups got %d, want drop=%v", len(pickups), tt.wantDrop)
			}
			if tt.wantDrop {
				pickup, _ := ecs.GetComponent[*components.PickupComponent](f.em, pickups[0])
				if pickup.Type != components.PickupHealth || pickup.OwnerID != "" {
					t.Errorf("drop got %s owner %q, want unregistered health", pickup.Type, pickup.OwnerID)
				}
				if pickup.Count != f.cfg.Pickup.HealthCount {
					t.Errorf("drop count got %d, want %d", pickup.Count, f.cfg.Pickup.HealthCount)
				}
			}
		})
	}
}

func TestWinAfterLastEnemyDies(t *testing.T) {
	f := newMatchFixture(t, func(cfg *config.MatchConfig) {
		cfg.Spawn.TotalEnemyCount = 3
		cfg.Spawn.MaxEnemyCount = 3
		cfg.Zombie.HealthDropOdds = 0
	})

	var zombies []ecs.EntityID
	for i := 0; i < 3; i++ {
		id, err := f.spawner.SpawnEnemy()
		if err != nil || id == 0 {
			t.Fatalf("SpawnEnemy #%d got (%d, %v)", i, id, err)
		}
		zombies = append(zombies, id)
	}
	if f.match.EnemiesRemaining() != 0 || f.match.CurrentEnemyCount() != 3 {
		t.Fatalf("match got remaining=%d current=%d, want 0/3", f.match.EnemiesRemaining(), f.match.CurrentEnemyCount())
	}

	for i, id := range zombies {
		f.combat.ApplyHit(id, 1000, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, -1})
		// 重复命中不会重复计数
		f.combat.ApplyHit(id, 1000, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, -1})

		wantWon := 0
		if i == len(zombies)-1 {
			wantWon = 1
		}
		if f.hud.won != wantWon {
			t.Errorf("after death %d GameWon calls got %d, want %d", i+1, f.hud.won, wantWon)
		}
	}

	if !f.match.IsGameWon() {
		t.Error("match not won")
	}
	if !f.matchSys.CanRestart() {
		t.Error("restart not allowed after win")
	}
}
