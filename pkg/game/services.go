package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/ecs"
)

// 外部协作者接口
//
// 模拟核心只依赖以下接口，不关心其具体实现：
//   - 物理世界（射线检测、刚体）：pkg/physics 提供沙盒实现
//   - 寻路服务（移动到目标点、瞬移）：pkg/navigation 提供沙盒实现
//   - HUD（归一化数值与事件，只接收不返回）：pkg/app 提供 ebiten 实现
//   - 输入源（按帧采样的输入快照）：pkg/app 提供 ebiten 实现

// BodyHandle 物理刚体句柄
type BodyHandle uint64

// Body 物理刚体
type Body interface {
	Handle() BodyHandle
	// Position 刚体底部中心（脚下）的世界坐标
	Position() mgl64.Vec3
	// SetPosition 直接放置刚体（寻路代理驱动运动学刚体时使用）
	SetPosition(p mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	// AddForceAtPosition 在指定世界坐标点施加冲量
	AddForceAtPosition(force, point mgl64.Vec3)
	// SetKinematic 运动学刚体不受力和重力影响（由导航代理驱动）
	SetKinematic(kinematic bool)
	// SetRotationLocked 锁定旋转（存活的玩家），解锁后可以翻滚（布娃娃效果）
	SetRotationLocked(locked bool)
	Remove()
}

// RaycastHit 射线检测的最近命中结果
type RaycastHit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	// Entity 被命中对象所属的实体，0 表示非实体对象（墙、箱子等）
	Entity ecs.EntityID
	// Body 被命中对象的刚体，可能为 nil（静态几何体）
	Body Body
}

// PhysicsWorld 物理世界查询服务
type PhysicsWorld interface {
	// NewBody 创建竖直圆柱形刚体；entity 为 0 表示不属于任何实体
	NewBody(entity ecs.EntityID, position mgl64.Vec3, radius, height float64) Body
	// Raycast 从 origin 沿 direction 发射射线，返回最近命中
	// 起点位于刚体内部时不会命中该刚体
	Raycast(origin, direction mgl64.Vec3, maxDistance float64) (RaycastHit, bool)
	// OnGroundContact 注册刚体落地回调
	OnGroundContact(body Body, callback func())
}

// NavAgent 寻路代理
type NavAgent interface {
	SetDestination(point mgl64.Vec3)
	// Warp 瞬移代理（导航控制下的实体不能直接设置位置）
	Warp(point mgl64.Vec3)
	SetEnabled(enabled bool)
	Enabled() bool
	Position() mgl64.Vec3
	Remove()
}

// Pathing 寻路服务
type Pathing interface {
	// NewAgent 为刚体创建寻路代理，代理启用时驱动刚体的位置与朝向
	NewAgent(body Body, speed float64) NavAgent
}

// HUD UI 接收端
// 所有通知都是即发即忘，不返回任何值
type HUD interface {
	SetHealth(normalized float64)
	SetAmmo(normalized float64)
	SetShowCrosshair(show bool)
	PlayerDied()
	GameWon()
}

// Stepper 需要由场景按帧推进的协作者（沙盒物理、沙盒寻路）
type Stepper interface {
	Step(deltaTime float64)
}

// Restarter 接收重开请求
type Restarter interface {
	RequestRestart()
}

// NopHUD 丢弃所有通知的 HUD（无界面运行和测试使用）
type NopHUD struct{}

func (NopHUD) SetHealth(float64)     {}
func (NopHUD) SetAmmo(float64)       {}
func (NopHUD) SetShowCrosshair(bool) {}
func (NopHUD) PlayerDied()           {}
func (NopHUD) GameWon()              {}
