package systems

import (
	"log"

	"github.com/gonewx/deadzone/pkg/game"
)

// AliveChecker 报告玩家是否存活
type AliveChecker interface {
	IsAlive() bool
}

// MatchSystem 比赛协调
//
// 每帧驱动刷新调度并检查重开条件；接收敌人死亡通知并判定胜利。
// 胜利条件：预算已全部花完且没有存活的敌人，每局最多触发一次。
type MatchSystem struct {
	match     *game.MatchState
	spawner   *SpawnSystem
	player    AliveChecker
	hud       game.HUD
	restarter game.Restarter
}

// NewMatchSystem 创建比赛协调系统
// spawner 可以在创建后通过 SetSpawner 设置
func NewMatchSystem(match *game.MatchState, player AliveChecker, hud game.HUD, restarter game.Restarter) *MatchSystem {
	if hud == nil {
		hud = game.NopHUD{}
	}
	return &MatchSystem{
		match:     match,
		player:    player,
		hud:       hud,
		restarter: restarter,
	}
}

// SetSpawner 设置刷新调度
func (s *MatchSystem) SetSpawner(spawner *SpawnSystem) {
	s.spawner = spawner
}

// Update 驱动刷新调度，并在玩家死亡或胜利后响应重开输入
func (s *MatchSystem) Update(deltaTime float64, input game.InputSnapshot) {
	if s.spawner != nil {
		s.spawner.Update(deltaTime)
	}

	if s.CanRestart() && input.RestartPressed && s.restarter != nil {
		s.restarter.RequestRestart()
	}
}

// CanRestart 玩家死亡或已获胜时允许重开
func (s *MatchSystem) CanRestart() bool {
	return !s.player.IsAlive() || s.match.IsGameWon()
}

// EnemyDied 记录敌人死亡，满足条件时宣布胜利
func (s *MatchSystem) EnemyDied() {
	if !s.match.EnemyDied() {
		return
	}
	log.Printf("[MatchSystem] All enemies defeated, game won")
	s.hud.GameWon()
}
