package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchConfigValid(t *testing.T) {
	cfg := DefaultMatchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Spawn.EnemySpawnInterval != 0.5 {
		t.Errorf("EnemySpawnInterval = %v, want 0.5", cfg.Spawn.EnemySpawnInterval)
	}
	if cfg.Spawn.TotalEnemyCount != 100 {
		t.Errorf("TotalEnemyCount = %d, want 100", cfg.Spawn.TotalEnemyCount)
	}
	if cfg.Zombie.AttackDamage != 24 {
		t.Errorf("Zombie.AttackDamage = %d, want 24", cfg.Zombie.AttackDamage)
	}
	if cfg.Player.GunDamage != 35 {
		t.Errorf("Player.GunDamage = %d, want 35", cfg.Player.GunDamage)
	}
}

func TestParseMatchConfigPartial(t *testing.T) {
	yamlContent := `
spawn:
  totalEnemyCount: 3
  maxEnemyCount: 2
zombie:
  healthDropOdds: 1
spawnPoints:
  - {id: e1, type: enemy, position: {x: 1, y: 0, z: 2}}
`
	cfg, err := ParseMatchConfig([]byte(yamlContent))
	if err != nil {
		t.Fatalf("ParseMatchConfig() error: %v", err)
	}

	if cfg.Spawn.TotalEnemyCount != 3 || cfg.Spawn.MaxEnemyCount != 2 {
		t.Errorf("spawn = %+v, want total 3 max 2", cfg.Spawn)
	}
	// 未出现的字段保持默认
	if cfg.Spawn.EnemySpawnInterval != 0.5 {
		t.Errorf("EnemySpawnInterval = %v, want default 0.5", cfg.Spawn.EnemySpawnInterval)
	}
	if cfg.Player.MaxAmmo != 40 {
		t.Errorf("Player.MaxAmmo = %d, want default 40", cfg.Player.MaxAmmo)
	}
	// spawnPoints 整体替换
	if len(cfg.SpawnPoints) != 1 {
		t.Fatalf("len(SpawnPoints) = %d, want 1", len(cfg.SpawnPoints))
	}
	if got := cfg.SpawnPoints[0].Position.Vec(); got.X() != 1 || got.Z() != 2 {
		t.Errorf("SpawnPoints[0].Position = %v, want (1, 0, 2)", got)
	}
}

func TestParseMatchConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name:        "zero enemy interval",
			yamlContent: "spawn:\n  enemySpawnInterval: 0\n",
			errContains: "enemySpawnInterval",
		},
		{
			name:        "negative budget",
			yamlContent: "spawn:\n  totalEnemyCount: -1\n",
			errContains: "totalEnemyCount",
		},
		{
			name:        "air control out of range",
			yamlContent: "player:\n  airControl: 1.5\n",
			errContains: "airControl",
		},
		{
			name:        "inverted pitch range",
			yamlContent: "player:\n  minPitch: 10\n  maxPitch: -10\n",
			errContains: "pitch range",
		},
		{
			name:        "drop odds out of range",
			yamlContent: "zombie:\n  healthDropOdds: 2\n",
			errContains: "healthDropOdds",
		},
		{
			name: "duplicate spawn point",
			yamlContent: `
spawnPoints:
  - {id: a, type: enemy}
  - {id: a, type: pickup}
`,
			errContains: "duplicate",
		},
		{
			name: "unknown spawn point type",
			yamlContent: `
spawnPoints:
  - {id: a, type: boss}
`,
			errContains: "unknown spawn point type",
		},
		{
			name:        "malformed yaml",
			yamlContent: "spawn: [1, 2",
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatchConfig([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadMatchConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "match.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  totalEnemyCount: 7\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadMatchConfig(path)
	if err != nil {
		t.Fatalf("LoadMatchConfig() error: %v", err)
	}
	if cfg.Spawn.TotalEnemyCount != 7 {
		t.Errorf("TotalEnemyCount = %d, want 7", cfg.Spawn.TotalEnemyCount)
	}
}

func TestLoadMatchConfigMissingFile(t *testing.T) {
	_, err := LoadMatchConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read match config") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestLoadShippedMatchConfig 确保仓库自带的配置文件可以通过校验
func TestLoadShippedMatchConfig(t *testing.T) {
	cfg, err := LoadMatchConfig(filepath.Join("..", "..", "data", "match.yaml"))
	if err != nil {
		t.Fatalf("LoadMatchConfig(data/match.yaml) error: %v", err)
	}

	enemy, pickup := 0, 0
	for _, sp := range cfg.SpawnPoints {
		switch sp.Type {
		case "enemy":
			enemy++
		case "pickup":
			pickup++
		}
	}
	if enemy == 0 || pickup == 0 {
		t.Errorf("shipped config has %d enemy and %d pickup spawn points, want both > 0", enemy, pickup)
	}
}
