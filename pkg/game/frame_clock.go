package game

// 帧时钟默认值
const (
	// DefaultFixedTimestep 默认物理步长（秒）
	DefaultFixedTimestep = 0.02
	// DefaultMaxFrameTime 单帧最大时长（秒），超过部分丢弃，避免物理步数雪崩
	DefaultMaxFrameTime = 0.25
)

// FrameClock 固定步长累加器
//
// 每帧调用 Advance(frameTime) 得到本帧需要执行的物理步数，
// 可变步长的逻辑（输入、AI、计时器、镜头）每帧执行一次，
// 物理步长的逻辑（移动积分）每帧执行 0~N 次。
type FrameClock struct {
	fixedStep    float64
	maxFrameTime float64
	accumulator  float64
}

// NewFrameClock 创建帧时钟，非正参数使用默认值
func NewFrameClock(fixedStep, maxFrameTime float64) *FrameClock {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedTimestep
	}
	if maxFrameTime <= 0 {
		maxFrameTime = DefaultMaxFrameTime
	}
	return &FrameClock{
		fixedStep:    fixedStep,
		maxFrameTime: maxFrameTime,
	}
}

// FixedStep 返回物理步长
func (c *FrameClock) FixedStep() float64 {
	return c.fixedStep
}

// Advance 累加本帧时长，返回本帧应执行的物理步数
func (c *FrameClock) Advance(frameTime float64) int {
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > c.maxFrameTime {
		frameTime = c.maxFrameTime
	}

	c.accumulator += frameTime
	steps := 0
	for c.accumulator >= c.fixedStep {
		c.accumulator -= c.fixedStep
		steps++
	}
	return steps
}

// Alpha 返回渲染插值系数 [0, 1)
func (c *FrameClock) Alpha() float64 {
	return c.accumulator / c.fixedStep
}
