package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、僵尸等可被攻击的实体
//
// 不变量：0 <= Current <= Max；Dead 一旦置位不再清除（没有复活）
type HealthComponent struct {
	Current    int     // 当前生命值
	Max        int     // 最大生命值
	Dead       bool    // 死亡标记，保证死亡边沿只触发一次
	DeathForce float64 // 死亡时施加的冲量大小
}

// NewHealth 创建满血的生命值组件
func NewHealth(max int, deathForce float64) *HealthComponent {
	return &HealthComponent{
		Current:    max,
		Max:        max,
		DeathForce: deathForce,
	}
}

// IsAlive 是否存活
func (h *HealthComponent) IsAlive() bool {
	return !h.Dead && h.Current > 0
}

// Add 增加生命值
// 已满或已死亡时返回 false 且不修改；否则截断到上限并返回 true
func (h *HealthComponent) Add(amount int) bool {
	if h.Current >= h.Max || !h.IsAlive() {
		return false
	}
	h.Current = min(h.Current+amount, h.Max)
	return true
}

// Subtract 扣除生命值（截断到 0）
//
// 返回：
//   - int: 扣除后的生命值
//   - bool: 本次扣除是否触发了死亡边沿（每个实体最多一次）
func (h *HealthComponent) Subtract(amount int) (int, bool) {
	if h.Dead || h.Current <= 0 {
		return h.Current, false
	}
	h.Current = max(h.Current-amount, 0)
	if h.Current > 0 {
		return h.Current, false
	}
	h.Dead = true
	return 0, true
}

// Normalized 返回归一化生命值 [0, 1]，供 HUD 使用
func (h *HealthComponent) Normalized() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
