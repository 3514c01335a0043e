package app

import (
	"fmt"
	"image/color"

	"github.com/gonewx/deadzone/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	barWidth   = 200
	barHeight  = 14
	barMargin  = 16
	bannerFade = 0.6 // 提示横幅淡入时长（秒）
)

var (
	healthColor  = color.RGBA{0xd0, 0x30, 0x30, 0xff}
	ammoColor    = color.RGBA{0xe0, 0xc0, 0x40, 0xff}
	barBackColor = color.RGBA{0x20, 0x20, 0x20, 0xc0}
)

// HUD 实现 game.HUD，并把状态绘制到屏幕上
//
// 模拟核心只向 HUD 推送归一化数值和事件，HUD 从不反向影响比赛。
type HUD struct {
	health    float64
	ammo      float64
	crosshair bool
	died      bool
	won       bool

	bannerTime float64
	face       *text.GoXFace
}

// NewHUD 创建 HUD
func NewHUD() *HUD {
	return &HUD{
		health: 1,
		ammo:   1,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetHealth 实现 game.HUD
func (h *HUD) SetHealth(normalized float64) { h.health = utils.Clamp01(normalized) }

// SetAmmo 实现 game.HUD
func (h *HUD) SetAmmo(normalized float64) { h.ammo = utils.Clamp01(normalized) }

// SetShowCrosshair 实现 game.HUD
func (h *HUD) SetShowCrosshair(show bool) { h.crosshair = show }

// PlayerDied 实现 game.HUD
func (h *HUD) PlayerDied() {
	h.died = true
	h.bannerTime = 0
}

// GameWon 实现 game.HUD
func (h *HUD) GameWon() {
	h.won = true
	h.bannerTime = 0
}

// Reset 新一局开始时清除结算横幅
func (h *HUD) Reset() {
	h.health, h.ammo = 1, 1
	h.crosshair, h.died, h.won = false, false, false
	h.bannerTime = 0
}

// Update 推进横幅动画
func (h *HUD) Update(deltaTime float64) {
	if h.died || h.won {
		h.bannerTime += deltaTime
	}
}

// banner 返回当前横幅文字与不透明度
func (h *HUD) banner() (string, float64) {
	var msg string
	switch {
	case h.won:
		msg = "ALL ZOMBIES DEFEATED - press R to play again"
	case h.died:
		msg = "YOU DIED - press R to restart"
	default:
		return "", 0
	}
	return msg, utils.EaseOutCubic(h.bannerTime / bannerFade)
}

// Draw 绘制血条、弹药条、准星和结算横幅
func (h *HUD) Draw(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	h.drawBar(screen, barMargin, float32(sh-barMargin-2*barHeight-6), h.health, healthColor, "HP")
	h.drawBar(screen, barMargin, float32(sh-barMargin-barHeight), h.ammo, ammoColor, "AMMO")

	if h.crosshair {
		cx, cy := float32(sw)/2, float32(sh)/2
		vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, color.White, false)
		vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, color.White, false)
	}

	if msg, alpha := h.banner(); msg != "" {
		a := uint8(alpha * 0xc0)
		vector.DrawFilledRect(screen, 0, float32(sh)/2-30, float32(sw), 60, color.RGBA{0, 0, 0, a}, false)

		w, _ := text.Measure(msg, h.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate((float64(sw)-w)/2, float64(sh)/2-6)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, msg, h.face, op)
	}
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y float32, value float64, clr color.Color, label string) {
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, barBackColor, false)
	vector.DrawFilledRect(screen, x, y, float32(value)*barWidth, barHeight, clr, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 1, color.White, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+barWidth+8), float64(y))
	text.Draw(screen, fmt.Sprintf("%s %3.0f%%", label, value*100), h.face, op)
}
