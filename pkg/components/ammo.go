package components

// AmmoComponent 存储弹药数量
// 不变量：0 <= Current <= Max
type AmmoComponent struct {
	Current int
	Max     int
}

// NewAmmo 创建满弹药组件
func NewAmmo(max int) *AmmoComponent {
	return &AmmoComponent{Current: max, Max: max}
}

// Add 增加弹药
// 已满或持有者已死亡时返回 false；否则截断到上限并返回 true
func (a *AmmoComponent) Add(amount int, ownerAlive bool) bool {
	if a.Current >= a.Max || !ownerAlive {
		return false
	}
	a.Current = min(a.Current+amount, a.Max)
	return true
}

// Consume 消耗一发弹药，弹药为 0 时返回 false
func (a *AmmoComponent) Consume() bool {
	if a.Current <= 0 {
		return false
	}
	a.Current--
	return true
}

// Normalized 返回归一化弹药量 [0, 1]
func (a *AmmoComponent) Normalized() float64 {
	if a.Max <= 0 {
		return 0
	}
	return float64(a.Current) / float64(a.Max)
}
