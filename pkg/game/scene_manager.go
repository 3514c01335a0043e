package game

import (
	"fmt"
	"log"
)

// SceneFactory 场景工厂函数类型
// 每次调用都必须从静态配置创建一个全新的场景，不携带任何旧状态
type SceneFactory func(restarter Restarter) (Scene, error)

// SceneManager 管理当前活动的场景，并驱动帧时钟
//
// 重开请求不会立即生效：当前帧的所有阶段执行完后，
// 才用工厂创建的新场景整体替换旧场景（事务性替换，从不部分重置）。
type SceneManager struct {
	currentScene   Scene
	sceneFactory   SceneFactory
	clock          *FrameClock
	restartPending bool
	generation     int // 已创建的场景数量（第一局为 1）
}

// NewSceneManager 创建场景管理器
func NewSceneManager(factory SceneFactory, clock *FrameClock) *SceneManager {
	if clock == nil {
		clock = NewFrameClock(DefaultFixedTimestep, DefaultMaxFrameTime)
	}
	return &SceneManager{
		sceneFactory: factory,
		clock:        clock,
	}
}

// Start 创建第一个场景
func (sm *SceneManager) Start() error {
	return sm.load()
}

// RequestRestart 请求在本帧结束后重开比赛
func (sm *SceneManager) RequestRestart() {
	if !sm.restartPending {
		log.Printf("[SceneManager] Restart requested")
	}
	sm.restartPending = true
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Generation 返回已创建的场景数量
func (sm *SceneManager) Generation() int {
	return sm.generation
}

// Frame 推进一帧
// frameTime 是自上一帧以来经过的真实时间（秒）
func (sm *SceneManager) Frame(frameTime float64) error {
	if sm.currentScene == nil {
		return nil
	}

	steps := sm.clock.Advance(frameTime)

	sm.currentScene.Update(frameTime)
	for i := 0; i < steps; i++ {
		sm.currentScene.FixedUpdate(sm.clock.FixedStep())
	}
	sm.currentScene.LateUpdate(frameTime)

	if sm.restartPending {
		sm.restartPending = false
		return sm.load()
	}
	return nil
}

// load 使用工厂函数创建新场景并替换当前场景
func (sm *SceneManager) load() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(sm)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	if old, ok := sm.currentScene.(Disposable); ok {
		old.Dispose()
	}
	sm.currentScene = newScene
	sm.generation++
	log.Printf("[SceneManager] Scene #%d started", sm.generation)
	return nil
}
