package components

// LifetimeComponent 延迟移除倒计时
// 用于死亡僵尸的尸体和命中特效：Remaining 归零后实体被标记删除
type LifetimeComponent struct {
	Duration  float64 // 总时长（秒）
	Remaining float64 // 剩余时间（秒）
}

// NewLifetime 创建 duration 秒后到期的倒计时
func NewLifetime(duration float64) *LifetimeComponent {
	return &LifetimeComponent{Duration: duration, Remaining: duration}
}

// Expired 倒计时是否已结束
func (l *LifetimeComponent) Expired() bool {
	return l.Remaining <= 0
}
