// Package app 提供游戏应用的核心包装器
//
// 该包把模拟核心接到 ebiten 上：采样输入、驱动场景管理器、绘制俯视图和 HUD。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 960
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 640

	settingsAppName = "deadzone"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MatchConfigPath 比赛配置路径（"data/" 开头时优先读取嵌入资源）
	MatchConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	input        *InputSampler
	hud          *HUD
	debugView    *DebugView
	maxFrameTime float64
	lastFrame    time.Time
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.MatchConfigPath
	if path == "" {
		path = config.DefaultMatchConfigPath
	}
	matchConfig, err := config.LoadMatchConfig(path)
	if err != nil {
		return nil, fmt.Errorf("比赛配置加载失败: %w", err)
	}
	log.Printf("[App] Match config loaded from %s", path)

	// 操作偏好读取失败时使用默认值
	settings := game.OpenSettingsManager(settingsAppName)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		settings:     settings,
		input:        NewInputSampler(DefaultKeyBindings()),
		hud:          NewHUD(),
		debugView:    NewDebugView(),
		maxFrameTime: matchConfig.Loop.MaxFrameTime,
	}

	opts := scenes.MatchSceneOptions{
		Config:   matchConfig,
		Controls: settings.GetSettings(),
		Input:    a.input,
		HUD:      a.hud,
		Seed:     seed,
	}
	// 每局开始前清除上一局的结算横幅
	factory := func(restarter game.Restarter) (game.Scene, error) {
		a.hud.Reset()
		return scenes.NewMatchScene(opts, restarter)
	}

	clock := game.NewFrameClock(matchConfig.Loop.FixedTimestep, matchConfig.Loop.MaxFrameTime)
	a.sceneManager = game.NewSceneManager(factory, clock)
	if err := a.sceneManager.Start(); err != nil {
		return nil, fmt.Errorf("比赛创建失败: %w", err)
	}

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	log.Printf("[App] Started with seed %d", seed)
	return a, nil
}

// Update 更新游戏逻辑
// 使用真实经过的时间作为可变步长，物理由帧时钟按固定步长推进
func (a *App) Update() error {
	now := time.Now()
	deltaTime := 1.0 / float64(ebiten.TPS())
	if !a.lastFrame.IsZero() {
		deltaTime = min(now.Sub(a.lastFrame).Seconds(), a.maxFrameTime)
	}
	a.lastFrame = now

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// Esc 释放/捕获鼠标
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ebiten.CursorMode() == ebiten.CursorModeCaptured {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
		a.input.ResetCursor()
	}

	a.handleSettingsKeys()

	if err := a.sceneManager.Frame(deltaTime); err != nil {
		return err
	}
	a.hud.Update(deltaTime)
	return nil
}

// handleSettingsKeys [ ] 调整鼠标灵敏度，Y 切换垂直反转
// 设置对象与玩家系统共享，修改立即生效
func (a *App) handleSettingsKeys() {
	controls := a.settings.GetSettings()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		a.settings.SetMouseSensitivity(controls.MouseSensitivityX*0.9, controls.MouseSensitivityY*0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		a.settings.SetMouseSensitivity(controls.MouseSensitivityX*1.1, controls.MouseSensitivityY*1.1)
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		a.settings.SetFlipMouseY(!controls.FlipMouseY)
	default:
		return
	}
	log.Printf("[App] Controls: sensitivity %.2f/%.2f, flip %v",
		controls.MouseSensitivityX, controls.MouseSensitivityY, controls.FlipMouseY)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	scene, _ := a.sceneManager.GetCurrentScene().(*scenes.MatchScene)
	a.debugView.Draw(screen, scene)
	a.hud.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Shutdown 保存操作偏好
func (a *App) Shutdown() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
