package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// SpawnPointType 刷新点类型
type SpawnPointType int

const (
	// SpawnPointEnemy 敌人刷新点
	SpawnPointEnemy SpawnPointType = iota
	// SpawnPointPickup 拾取物刷新点（带占用标记）
	SpawnPointPickup
)

// String 返回刷新点类型名称（与配置文件中的写法一致）
func (t SpawnPointType) String() string {
	switch t {
	case SpawnPointEnemy:
		return "enemy"
	case SpawnPointPickup:
		return "pickup"
	default:
		return fmt.Sprintf("SpawnPointType(%d)", int(t))
	}
}

// ParseSpawnPointType 解析配置中的刷新点类型
func ParseSpawnPointType(s string) (SpawnPointType, error) {
	switch s {
	case "enemy":
		return SpawnPointEnemy, nil
	case "pickup":
		return SpawnPointPickup, nil
	default:
		return 0, fmt.Errorf("unknown spawn point type %q", s)
	}
}

// SpawnPoint 刷新点
type SpawnPoint struct {
	ID       string
	Type     SpawnPointType
	Position mgl64.Vec3
	Occupied bool // 仅拾取物刷新点使用
}

// SpawnRegistry 刷新点注册表
//
// 在比赛初始化时通过显式的 Register 调用构建，之后只有占用标记会变化。
// 按类型分别保存注册顺序，用于均匀随机选择。
type SpawnRegistry struct {
	points map[string]*SpawnPoint
	enemy  []string
	pickup []string
}

// NewSpawnRegistry 创建空的刷新点注册表
func NewSpawnRegistry() *SpawnRegistry {
	return &SpawnRegistry{
		points: make(map[string]*SpawnPoint),
	}
}

// Register 注册刷新点，ID 必须唯一且非空
func (r *SpawnRegistry) Register(id string, pointType SpawnPointType, position mgl64.Vec3) error {
	if id == "" {
		return fmt.Errorf("spawn point id cannot be empty")
	}
	if _, exists := r.points[id]; exists {
		return fmt.Errorf("spawn point %q already registered", id)
	}

	switch pointType {
	case SpawnPointEnemy:
		r.enemy = append(r.enemy, id)
	case SpawnPointPickup:
		r.pickup = append(r.pickup, id)
	default:
		return fmt.Errorf("spawn point %q: invalid type %v", id, pointType)
	}

	r.points[id] = &SpawnPoint{
		ID:       id,
		Type:     pointType,
		Position: position,
	}
	return nil
}

// Get 按 ID 查询刷新点
func (r *SpawnRegistry) Get(id string) (*SpawnPoint, bool) {
	p, ok := r.points[id]
	return p, ok
}

// EnemyPointCount 返回敌人刷新点数量
func (r *SpawnRegistry) EnemyPointCount() int {
	return len(r.enemy)
}

// PickupPointCount 返回拾取物刷新点数量
func (r *SpawnRegistry) PickupPointCount() int {
	return len(r.pickup)
}

// EnemyPointAt 按注册顺序返回第 i 个敌人刷新点
func (r *SpawnRegistry) EnemyPointAt(i int) *SpawnPoint {
	return r.points[r.enemy[i]]
}

// PickupPointAt 按注册顺序返回第 i 个拾取物刷新点
func (r *SpawnRegistry) PickupPointAt(i int) *SpawnPoint {
	return r.points[r.pickup[i]]
}

// Occupy 标记拾取物刷新点已占用
func (r *SpawnRegistry) Occupy(id string) {
	if p, ok := r.points[id]; ok && p.Type == SpawnPointPickup {
		p.Occupied = true
	}
}

// Release 释放拾取物刷新点
// 空 ID（不属于任何刷新点的拾取物）和未知 ID 都是无操作
func (r *SpawnRegistry) Release(id string) {
	if id == "" {
		return
	}
	if p, ok := r.points[id]; ok {
		p.Occupied = false
	}
}

// OccupiedCount 返回当前被占用的拾取物刷新点数量
func (r *SpawnRegistry) OccupiedCount() int {
	count := 0
	for _, id := range r.pickup {
		if r.points[id].Occupied {
			count++
		}
	}
	return count
}
