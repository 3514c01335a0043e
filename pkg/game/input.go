package game

// InputSnapshot 一帧的输入采样
// 模拟核心只消费快照，从不直接访问输入设备
type InputSnapshot struct {
	// 持续按住的按键
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool
	Aim     bool

	// 本帧刚按下（边沿触发）
	JumpPressed    bool
	FirePressed    bool
	RestartPressed bool

	// 鼠标位移（本帧增量）
	MouseDX float64
	MouseDY float64
}

// InputSource 输入源
type InputSource interface {
	Sample() InputSnapshot
}

// InputSourceFunc 将函数适配为 InputSource
type InputSourceFunc func() InputSnapshot

// Sample 实现 InputSource
func (f InputSourceFunc) Sample() InputSnapshot {
	return f()
}
