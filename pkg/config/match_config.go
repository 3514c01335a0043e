package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/embedded"
	"github.com/gonewx/deadzone/pkg/game"
	"gopkg.in/yaml.v3"
)

// DefaultMatchConfigPath 默认比赛配置文件路径（嵌入资源）
const DefaultMatchConfigPath = "data/match.yaml"

// MatchConfig 一局比赛的静态配置
//
// 重开比赛时场景从同一份配置重新构建，配置本身在运行期间只读。
//
// 配置文件位置: data/match.yaml
type MatchConfig struct {
	Loop        LoopConfig         `yaml:"loop"`
	Physics     PhysicsConfig      `yaml:"physics"`
	Spawn       SpawnConfig        `yaml:"spawn"`
	Player      PlayerConfig       `yaml:"player"`
	Zombie      ZombieConfig       `yaml:"zombie"`
	Pickup      PickupConfig       `yaml:"pickup"`
	SpawnPoints []SpawnPointConfig `yaml:"spawnPoints"`
}

// LoopConfig 帧循环配置
type LoopConfig struct {
	FixedTimestep float64 `yaml:"fixedTimestep"` // 物理步长（秒）
	MaxFrameTime  float64 `yaml:"maxFrameTime"`  // 单帧最大时长（秒）
}

// PhysicsConfig 沙盒物理世界配置
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // 竖直方向加速度（负值向下）
	GroundHeight float64 `yaml:"groundHeight"` // 地面高度
	Damping      float64 `yaml:"damping"`      // 着地水平阻尼（每秒）
}

// SpawnConfig 刷新节奏与敌人预算
type SpawnConfig struct {
	EnemySpawnInterval  float64 `yaml:"enemySpawnInterval"`
	PickupSpawnInterval float64 `yaml:"pickupSpawnInterval"`
	MaxEnemyCount       int     `yaml:"maxEnemyCount"`   // 同时存活的敌人上限
	TotalEnemyCount     int     `yaml:"totalEnemyCount"` // 本局敌人总预算
}

// PlayerConfig 玩家调参
type PlayerConfig struct {
	// 移动
	MovementSpeed    float64 `yaml:"movementSpeed"`
	AimSpeedModifier float64 `yaml:"aimSpeedModifier"`
	Acceleration     float64 `yaml:"acceleration"`
	SprintModifier   float64 `yaml:"sprintModifier"`
	JumpSpeed        float64 `yaml:"jumpSpeed"`
	TurnSpeed        float64 `yaml:"turnSpeed"`
	AimTurnSpeed     float64 `yaml:"aimTurnSpeed"`
	AirControl       float64 `yaml:"airControl"`

	// 战斗
	DeathForce        float64 `yaml:"deathForce"`
	MaxHealth         int     `yaml:"maxHealth"`
	MaxAmmo           int     `yaml:"maxAmmo"`
	GunDamage         int     `yaml:"gunDamage"`
	GunForce          float64 `yaml:"gunForce"`
	GunRange          float64 `yaml:"gunRange"`
	HitEffectLifetime float64 `yaml:"hitEffectLifetime"`

	// 镜头
	CameraDrag         float64    `yaml:"cameraDrag"`
	CameraDragZoomed   float64    `yaml:"cameraDragZoomed"`
	CameraRotSmoothing float64    `yaml:"cameraRotSmoothing"`
	MinPitch           float64    `yaml:"minPitch"`
	MaxPitch           float64    `yaml:"maxPitch"`
	FOVNormal          float64    `yaml:"fovNormal"`
	FOVZoomed          float64    `yaml:"fovZoomed"`
	ZoomDuration       float64    `yaml:"zoomDuration"`
	CameraFollowOffset Vec3Config `yaml:"cameraFollowOffset"` // 镜头支架相对玩家的位置
	FreelookOffset     Vec3Config `yaml:"freelookOffset"`     // 自由视角时镜头相对支架的偏移
	AimOffset          Vec3Config `yaml:"aimOffset"`          // 瞄准时镜头相对支架的偏移

	// 身体
	SpawnPosition Vec3Config `yaml:"spawnPosition"`
	Radius        float64    `yaml:"radius"`
}

// ZombieConfig 僵尸调参
type ZombieConfig struct {
	MaxHealth      int     `yaml:"maxHealth"`
	DeathForce     float64 `yaml:"deathForce"`
	AttackDamage   int     `yaml:"attackDamage"`
	AttackDistance float64 `yaml:"attackDistance"`
	AttackInterval float64 `yaml:"attackInterval"`
	HealthDropOdds float64 `yaml:"healthDropOdds"` // 死亡掉落血包概率 [0, 1]
	LingerTime     float64 `yaml:"lingerTime"`     // 死亡后尸体保留时间（秒）
	MoveSpeed      float64 `yaml:"moveSpeed"`
	Radius         float64 `yaml:"radius"`
}

// PickupConfig 拾取物调参
type PickupConfig struct {
	HealthCount   int     `yaml:"healthCount"`
	AmmoCount     int     `yaml:"ammoCount"`
	SpinSpeed     float64 `yaml:"spinSpeed"` // 度/秒
	TriggerRadius float64 `yaml:"triggerRadius"`
}

// SpawnPointConfig 刷新点声明
type SpawnPointConfig struct {
	ID       string     `yaml:"id"`
	Type     string     `yaml:"type"` // "enemy" 或 "pickup"
	Position Vec3Config `yaml:"position"`
}

// Vec3Config YAML 中的三维向量 {x, y, z}
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec 转换为 mgl64.Vec3
func (v Vec3Config) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// DefaultMatchConfig 返回默认比赛配置
//
// 默认场地为 40x40 的方形竞技场，四角为敌人刷新点，
// 内圈四个位置为弹药刷新点。
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		Loop: LoopConfig{
			FixedTimestep: game.DefaultFixedTimestep,
			MaxFrameTime:  game.DefaultMaxFrameTime,
		},
		Physics: PhysicsConfig{
			Gravity:      -9.81,
			GroundHeight: 0,
			Damping:      0,
		},
		Spawn: SpawnConfig{
			EnemySpawnInterval:  0.5,
			PickupSpawnInterval: 2,
			MaxEnemyCount:       10,
			TotalEnemyCount:     100,
		},
		Player: PlayerConfig{
			MovementSpeed:    10,
			AimSpeedModifier: 0.5,
			Acceleration:     10,
			SprintModifier:   1.5,
			JumpSpeed:        5,
			TurnSpeed:        5,
			AimTurnSpeed:     5,
			AirControl:       0.1,

			DeathForce:        200,
			MaxHealth:         100,
			MaxAmmo:           40,
			GunDamage:         35,
			GunForce:          200,
			GunRange:          1000,
			HitEffectLifetime: 1,

			CameraDrag:         0.1,
			CameraDragZoomed:   0.1,
			CameraRotSmoothing: 0.01,
			MinPitch:           -50,
			MaxPitch:           89,
			FOVNormal:          60,
			FOVZoomed:          30,
			ZoomDuration:       0.1,
			CameraFollowOffset: Vec3Config{0, 1.6, 0},
			FreelookOffset:     Vec3Config{0.5, 0.5, -4},
			AimOffset:          Vec3Config{0.6, 0.2, -1.5},

			SpawnPosition: Vec3Config{0, 0, 0},
			Radius:        0.5,
		},
		Zombie: ZombieConfig{
			MaxHealth:      100,
			DeathForce:     5,
			AttackDamage:   24,
			AttackDistance: 2,
			AttackInterval: 1,
			HealthDropOdds: 0.1,
			LingerTime:     2,
			MoveSpeed:      3.5,
			Radius:         0.5,
		},
		Pickup: PickupConfig{
			HealthCount:   25,
			AmmoCount:     25,
			SpinSpeed:     60,
			TriggerRadius: 1,
		},
		SpawnPoints: []SpawnPointConfig{
			{ID: "enemy_nw", Type: "enemy", Position: Vec3Config{-18, 0, 18}},
			{ID: "enemy_ne", Type: "enemy", Position: Vec3Config{18, 0, 18}},
			{ID: "enemy_sw", Type: "enemy", Position: Vec3Config{-18, 0, -18}},
			{ID: "enemy_se", Type: "enemy", Position: Vec3Config{18, 0, -18}},
			{ID: "pickup_n", Type: "pickup", Position: Vec3Config{0, 0, 8}},
			{ID: "pickup_s", Type: "pickup", Position: Vec3Config{0, 0, -8}},
			{ID: "pickup_e", Type: "pickup", Position: Vec3Config{8, 0, 0}},
			{ID: "pickup_w", Type: "pickup", Position: Vec3Config{-8, 0, 0}},
		},
	}
}

// ParseMatchConfig 解析 YAML 格式的比赛配置
// 未出现在 YAML 中的字段保持默认值；spawnPoints 出现时整体替换默认刷新点
func ParseMatchConfig(data []byte) (*MatchConfig, error) {
	config := DefaultMatchConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse match config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	return config, nil
}

// LoadMatchConfig 加载比赛配置
//
// 以 "data/" 开头的路径优先从嵌入资源读取，其余路径从文件系统读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/match.yaml"）
//
// 返回:
//   - *MatchConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadMatchConfig(path string) (*MatchConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read match config: %w", err)
	}

	return ParseMatchConfig(data)
}

// Validate 验证配置有效性
func (c *MatchConfig) Validate() error {
	if c.Loop.FixedTimestep <= 0 {
		return fmt.Errorf("loop.fixedTimestep must be > 0, got %v", c.Loop.FixedTimestep)
	}
	if c.Loop.MaxFrameTime < c.Loop.FixedTimestep {
		return fmt.Errorf("loop.maxFrameTime (%v) must be >= fixedTimestep (%v)", c.Loop.MaxFrameTime, c.Loop.FixedTimestep)
	}
	if c.Physics.Damping < 0 {
		return fmt.Errorf("physics.damping must be >= 0, got %v", c.Physics.Damping)
	}

	if err := c.Spawn.validate(); err != nil {
		return err
	}
	if err := c.Player.validate(); err != nil {
		return err
	}
	if err := c.Zombie.validate(); err != nil {
		return err
	}
	if err := c.Pickup.validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.SpawnPoints))
	for i, sp := range c.SpawnPoints {
		if sp.ID == "" {
			return fmt.Errorf("spawnPoints[%d]: id cannot be empty", i)
		}
		if seen[sp.ID] {
			return fmt.Errorf("spawnPoints[%d]: duplicate id %q", i, sp.ID)
		}
		seen[sp.ID] = true
		if _, err := game.ParseSpawnPointType(sp.Type); err != nil {
			return fmt.Errorf("spawnPoints[%d]: %w", i, err)
		}
	}

	return nil
}

func (c *SpawnConfig) validate() error {
	if c.EnemySpawnInterval <= 0 {
		return fmt.Errorf("spawn.enemySpawnInterval must be > 0, got %v", c.EnemySpawnInterval)
	}
	if c.PickupSpawnInterval <= 0 {
		return fmt.Errorf("spawn.pickupSpawnInterval must be > 0, got %v", c.PickupSpawnInterval)
	}
	if c.MaxEnemyCount < 0 {
		return fmt.Errorf("spawn.maxEnemyCount must be >= 0, got %d", c.MaxEnemyCount)
	}
	if c.TotalEnemyCount < 0 {
		return fmt.Errorf("spawn.totalEnemyCount must be >= 0, got %d", c.TotalEnemyCount)
	}
	return nil
}

func (c *PlayerConfig) validate() error {
	if c.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be > 0, got %d", c.MaxHealth)
	}
	if c.MaxAmmo <= 0 {
		return fmt.Errorf("player.maxAmmo must be > 0, got %d", c.MaxAmmo)
	}
	if c.GunDamage < 0 {
		return fmt.Errorf("player.gunDamage must be >= 0, got %d", c.GunDamage)
	}
	if c.AirControl < 0 || c.AirControl > 1 {
		return fmt.Errorf("player.airControl must be in [0, 1], got %v", c.AirControl)
	}
	if c.CameraDrag <= 0 || c.CameraDragZoomed <= 0 {
		return fmt.Errorf("player camera drag must be > 0, got %v/%v", c.CameraDrag, c.CameraDragZoomed)
	}
	if c.CameraRotSmoothing <= 0 {
		return fmt.Errorf("player.cameraRotSmoothing must be > 0, got %v", c.CameraRotSmoothing)
	}
	if c.ZoomDuration <= 0 {
		return fmt.Errorf("player.zoomDuration must be > 0, got %v", c.ZoomDuration)
	}
	if c.MinPitch >= c.MaxPitch {
		return fmt.Errorf("player pitch range invalid: min(%.1f) >= max(%.1f)", c.MinPitch, c.MaxPitch)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("player.radius must be > 0, got %v", c.Radius)
	}
	return nil
}

func (c *ZombieConfig) validate() error {
	if c.MaxHealth <= 0 {
		return fmt.Errorf("zombie.maxHealth must be > 0, got %d", c.MaxHealth)
	}
	if c.AttackInterval < 0 {
		return fmt.Errorf("zombie.attackInterval must be >= 0, got %v", c.AttackInterval)
	}
	if c.HealthDropOdds < 0 || c.HealthDropOdds > 1 {
		return fmt.Errorf("zombie.healthDropOdds must be in [0, 1], got %v", c.HealthDropOdds)
	}
	if c.LingerTime < 0 {
		return fmt.Errorf("zombie.lingerTime must be >= 0, got %v", c.LingerTime)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("zombie.radius must be > 0, got %v", c.Radius)
	}
	return nil
}

func (c *PickupConfig) validate() error {
	if c.HealthCount < 0 || c.AmmoCount < 0 {
		return fmt.Errorf("pickup counts must be >= 0, got %d/%d", c.HealthCount, c.AmmoCount)
	}
	if c.TriggerRadius <= 0 {
		return fmt.Errorf("pickup.triggerRadius must be > 0, got %v", c.TriggerRadius)
	}
	return nil
}
