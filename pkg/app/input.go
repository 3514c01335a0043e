package app

import (
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 按键绑定
type KeyBindings struct {
	Forward, Back, Left, Right ebiten.Key
	Sprint, Jump, Restart      ebiten.Key
	Aim, Fire                  ebiten.MouseButton
}

// DefaultKeyBindings WASD 移动，Shift 冲刺，空格跳跃，R 重开，右键瞄准，左键开火
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward: ebiten.KeyW,
		Back:    ebiten.KeyS,
		Left:    ebiten.KeyA,
		Right:   ebiten.KeyD,
		Sprint:  ebiten.KeyShiftLeft,
		Jump:    ebiten.KeySpace,
		Restart: ebiten.KeyR,
		Aim:     ebiten.MouseButtonRight,
		Fire:    ebiten.MouseButtonLeft,
	}
}

// cursorTracker 把光标绝对位置转换为逐帧增量
type cursorTracker struct {
	lastX, lastY int
	primed       bool
}

// delta 返回相对上一次采样的位移，第一次采样返回 0
func (c *cursorTracker) delta(x, y int) (float64, float64) {
	if !c.primed {
		c.lastX, c.lastY, c.primed = x, y, true
		return 0, 0
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	return float64(dx), float64(dy)
}

// reset 下一次采样重新建立基准（窗口失焦、光标模式切换后使用）
func (c *cursorTracker) reset() {
	c.primed = false
}

// InputSampler 从 ebiten 采样一帧输入
// 每帧只能调用一次 Sample：边沿触发的按键和鼠标增量都以帧为单位
type InputSampler struct {
	bindings KeyBindings
	cursor   cursorTracker
	// MouseScale 光标像素到角度（度）的换算系数
	MouseScale float64
}

// NewInputSampler 创建输入采样器
func NewInputSampler(bindings KeyBindings) *InputSampler {
	return &InputSampler{
		bindings:   bindings,
		MouseScale: 0.2,
	}
}

// Sample 实现 game.InputSource
func (s *InputSampler) Sample() game.InputSnapshot {
	b := s.bindings

	if !ebiten.IsFocused() {
		s.cursor.reset()
		return game.InputSnapshot{}
	}

	x, y := ebiten.CursorPosition()
	dx, dy := s.cursor.delta(x, y)

	return game.InputSnapshot{
		Forward: ebiten.IsKeyPressed(b.Forward) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Back:    ebiten.IsKeyPressed(b.Back) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(b.Left) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(b.Right) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Sprint:  ebiten.IsKeyPressed(b.Sprint),
		Aim:     ebiten.IsMouseButtonPressed(b.Aim),

		JumpPressed:    inpututil.IsKeyJustPressed(b.Jump),
		FirePressed:    inpututil.IsMouseButtonJustPressed(b.Fire),
		RestartPressed: inpututil.IsKeyJustPressed(b.Restart),

		MouseDX: dx * s.MouseScale,
		MouseDY: dy * s.MouseScale,
	}
}

// ResetCursor 丢弃当前的光标基准
func (s *InputSampler) ResetCursor() {
	s.cursor.reset()
}
