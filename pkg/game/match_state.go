package game

import "log"

// MatchState 存储一局比赛的全局状态
//
// 每局比赛由场景显式创建并通过构造函数注入到需要它的系统中，
// 重开时整个实例被丢弃并重新创建，从不原地重置字段。
type MatchState struct {
	enemiesRemaining  int  // 尚未消耗的敌人预算（在生成时扣除）
	currentEnemyCount int  // 已生成且尚未死亡的敌人数量
	gameWon           bool // 单调：一旦置位，本局内不再清除
}

// NewMatchState 以敌人总预算创建比赛状态
func NewMatchState(totalEnemyCount int) *MatchState {
	if totalEnemyCount < 0 {
		totalEnemyCount = 0
	}
	return &MatchState{
		enemiesRemaining: totalEnemyCount,
	}
}

// EnemiesRemaining 返回尚未消耗的敌人预算
func (ms *MatchState) EnemiesRemaining() int {
	return ms.enemiesRemaining
}

// CurrentEnemyCount 返回当前存活的敌人数量
func (ms *MatchState) CurrentEnemyCount() int {
	return ms.currentEnemyCount
}

// IsGameWon 返回是否已经获胜
func (ms *MatchState) IsGameWon() bool {
	return ms.gameWon
}

// CanSpawnEnemy 检查预算与并发上限
func (ms *MatchState) CanSpawnEnemy(maxConcurrent int) bool {
	return ms.enemiesRemaining > 0 && ms.currentEnemyCount < maxConcurrent
}

// EnemySpawned 记录一次敌人生成：预算 -1，存活数 +1
// 预算已耗尽时返回 false 且不修改状态
func (ms *MatchState) EnemySpawned() bool {
	if ms.enemiesRemaining <= 0 {
		return false
	}
	ms.enemiesRemaining--
	ms.currentEnemyCount++
	return true
}

// EnemyDied 记录一次敌人死亡并检查胜利条件
//
// 返回 true 表示本次调用触发了胜利（每局最多一次）
func (ms *MatchState) EnemyDied() bool {
	if ms.currentEnemyCount > 0 {
		ms.currentEnemyCount--
	} else {
		log.Printf("[MatchState] Warning: enemy death reported with no live enemies")
	}

	if ms.gameWon || !ms.winConditionMet() {
		return false
	}
	ms.gameWon = true
	return true
}

// winConditionMet 预算已全部花完，且没有已生成的敌人存活
func (ms *MatchState) winConditionMet() bool {
	return ms.enemiesRemaining == 0 && ms.currentEnemyCount == 0
}
