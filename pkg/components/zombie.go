package components

// ZombieComponent 僵尸 AI 状态
type ZombieComponent struct {
	AttackTimer float64 // 攻击冷却（秒），<= 0 时可以攻击
}
