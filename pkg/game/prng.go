package game

import (
	"math/rand"
	"time"
)

// PRNGService 可设定种子的随机数服务
// 同一种子下，刷新点选择与掉落判定完全可复现
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService 以指定种子创建随机数服务
// 种子为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn 返回 [0, n) 内的随机整数
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 返回 [0.0, 1.0) 内的随机浮点数
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
