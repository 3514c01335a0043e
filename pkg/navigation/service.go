// Package navigation 提供一个进程内的沙盒寻路服务
//
// 代理沿直线以恒定速度走向目标点，到达停止距离后停下。
// 代理启用时直接驱动其运动学刚体的位置。
package navigation

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/game"
)

var (
	_ game.Pathing  = (*Service)(nil)
	_ game.Stepper  = (*Service)(nil)
	_ game.NavAgent = (*Agent)(nil)
)

// DefaultStoppingDistance 默认停止距离
const DefaultStoppingDistance = 1.0

// Service 沙盒寻路服务，实现 game.Pathing 和 game.Stepper
type Service struct {
	stoppingDistance float64
	agents           []*Agent
}

// NewService 创建寻路服务
func NewService(stoppingDistance float64) *Service {
	if stoppingDistance < 0 {
		stoppingDistance = 0
	}
	return &Service{stoppingDistance: stoppingDistance}
}

// NewAgent 为刚体创建寻路代理（默认启用）
func (s *Service) NewAgent(body game.Body, speed float64) game.NavAgent {
	a := &Agent{
		service: s,
		body:    body,
		speed:   speed,
		enabled: true,
	}
	s.agents = append(s.agents, a)
	return a
}

// AgentCount 返回代理数量
func (s *Service) AgentCount() int {
	return len(s.agents)
}

// Step 推进所有启用的代理
func (s *Service) Step(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for _, a := range s.agents {
		a.step(deltaTime, s.stoppingDistance)
	}
}

func (s *Service) remove(agent *Agent) {
	for i, a := range s.agents {
		if a == agent {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return
		}
	}
}

// Agent 直线寻路代理
type Agent struct {
	service        *Service
	body           game.Body
	speed          float64
	destination    mgl64.Vec3
	hasDestination bool
	enabled        bool
	removed        bool
	velocity       mgl64.Vec3
}

// SetDestination 设置目标点，禁用时忽略
func (a *Agent) SetDestination(point mgl64.Vec3) {
	if !a.enabled {
		return
	}
	a.destination = point
	a.hasDestination = true
}

// Warp 瞬移到指定位置并清除当前目标
func (a *Agent) Warp(point mgl64.Vec3) {
	a.body.SetPosition(point)
	a.hasDestination = false
	a.velocity = mgl64.Vec3{}
}

// SetEnabled 启用或禁用代理；禁用后不再驱动刚体
func (a *Agent) SetEnabled(enabled bool) {
	a.enabled = enabled
	if !enabled {
		a.hasDestination = false
		a.velocity = mgl64.Vec3{}
	}
}

// Enabled 是否启用
func (a *Agent) Enabled() bool {
	return a.enabled && !a.removed
}

// Position 代理当前位置
func (a *Agent) Position() mgl64.Vec3 {
	return a.body.Position()
}

// Velocity 上一步的移动速度
func (a *Agent) Velocity() mgl64.Vec3 {
	return a.velocity
}

// Remove 从服务中移除代理，重复调用是无操作
func (a *Agent) Remove() {
	if a.removed {
		return
	}
	a.removed = true
	a.enabled = false
	a.service.remove(a)
}

func (a *Agent) step(deltaTime, stoppingDistance float64) {
	a.velocity = mgl64.Vec3{}
	if !a.enabled || !a.hasDestination {
		return
	}

	pos := a.body.Position()
	to := a.destination.Sub(pos)
	to[1] = 0
	dist := to.Len()
	if dist <= stoppingDistance || dist == 0 {
		return
	}

	move := min(a.speed*deltaTime, dist-stoppingDistance)
	dir := to.Mul(1 / dist)
	a.velocity = dir.Mul(move / deltaTime)
	a.body.SetPosition(pos.Add(dir.Mul(move)))
}
