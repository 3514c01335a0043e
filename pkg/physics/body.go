package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
)

// Body 竖直圆柱形刚体
type Body struct {
	world  *World
	handle game.BodyHandle
	entity ecs.EntityID

	position mgl64.Vec3 // 底部中心
	velocity mgl64.Vec3
	radius   float64
	height   float64
	mass     float64

	pendingForce   mgl64.Vec3
	kinematic      bool
	rotationLocked bool
	onGround       bool
	removed        bool

	onGroundContact func()
}

func (b *Body) Handle() game.BodyHandle  { return b.handle }
func (b *Body) Position() mgl64.Vec3     { return b.position }
func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }
func (b *Body) Velocity() mgl64.Vec3     { return b.velocity }
func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }

// AddForceAtPosition 施加力，在下一个物理步生效
// 运动学刚体忽略外力
func (b *Body) AddForceAtPosition(force, point mgl64.Vec3) {
	if b.kinematic || b.removed {
		return
	}
	b.pendingForce = b.pendingForce.Add(force)
}

// SetKinematic 切换运动学状态
func (b *Body) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
	if kinematic {
		b.velocity = mgl64.Vec3{}
	}
}

// IsKinematic 是否为运动学刚体
func (b *Body) IsKinematic() bool {
	return b.kinematic
}

// SetRotationLocked 设置旋转锁定
func (b *Body) SetRotationLocked(locked bool) {
	b.rotationLocked = locked
}

// RotationLocked 是否锁定旋转
func (b *Body) RotationLocked() bool {
	return b.rotationLocked
}

// PendingForce 返回尚未作用的累积外力
func (b *Body) PendingForce() mgl64.Vec3 {
	return b.pendingForce
}

// Radius 返回半径
func (b *Body) Radius() float64 {
	return b.radius
}

// Remove 从世界中移除刚体，重复调用是无操作
func (b *Body) Remove() {
	if b.removed {
		return
	}
	b.removed = true
	delete(b.world.bodies, b.handle)
}

// contains 点是否在圆柱内部
func (b *Body) contains(p mgl64.Vec3) bool {
	dx, dz := p.X()-b.position.X(), p.Z()-b.position.Z()
	return dx*dx+dz*dz < b.radius*b.radius &&
		p.Y() > b.position.Y() && p.Y() < b.position.Y()+b.height
}

// intersectRay 射线与圆柱求交，dir 必须已归一化
// 返回最近交点的参数 t 与表面法线
func (b *Body) intersectRay(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	if b.contains(origin) {
		return 0, mgl64.Vec3{}, false
	}

	bottom := b.position.Y()
	top := bottom + b.height
	best := math.Inf(1)
	var normal mgl64.Vec3

	// 侧面：水平面上的射线-圆求交
	ox, oz := origin.X()-b.position.X(), origin.Z()-b.position.Z()
	a := dir.X()*dir.X() + dir.Z()*dir.Z()
	if a > 1e-12 {
		half := ox*dir.X() + oz*dir.Z()
		c := ox*ox + oz*oz - b.radius*b.radius
		disc := half*half - a*c
		if disc >= 0 {
			t := (-half - math.Sqrt(disc)) / a
			if t >= 0 {
				y := origin.Y() + dir.Y()*t
				if y >= bottom && y <= top {
					best = t
					normal = mgl64.Vec3{ox + dir.X()*t, 0, oz + dir.Z()*t}.Normalize()
				}
			}
		}
	}

	// 顶面和底面
	if math.Abs(dir.Y()) > 1e-12 {
		for _, face := range [2]struct {
			y float64
			n mgl64.Vec3
		}{{top, mgl64.Vec3{0, 1, 0}}, {bottom, mgl64.Vec3{0, -1, 0}}} {
			t := (face.y - origin.Y()) / dir.Y()
			if t < 0 || t >= best {
				continue
			}
			px, pz := ox+dir.X()*t, oz+dir.Z()*t
			if px*px+pz*pz <= b.radius*b.radius {
				best = t
				normal = face.n
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, mgl64.Vec3{}, false
	}
	return best, normal, true
}
