// Package physics 提供一个进程内的沙盒物理世界
//
// 只模拟比赛需要的最小集合：竖直圆柱形刚体、重力、水平地面、
// 冲量、运动学刚体、射线检测和落地回调。刚体之间没有碰撞响应。
package physics

import (
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/deadzone/pkg/ecs"
	"github.com/gonewx/deadzone/pkg/game"
)

var (
	_ game.PhysicsWorld = (*World)(nil)
	_ game.Stepper      = (*World)(nil)
	_ game.Body         = (*Body)(nil)
)

// DefaultMass 刚体质量
const DefaultMass = 1.0

// Config 物理世界参数
type Config struct {
	Gravity      float64 // 竖直加速度（负值向下）
	GroundHeight float64
	Damping      float64 // 着地时的水平阻尼（每秒），0 表示无阻尼
}

// World 沙盒物理世界，实现 game.PhysicsWorld 和 game.Stepper
type World struct {
	config     Config
	nextHandle game.BodyHandle
	bodies     map[game.BodyHandle]*Body
}

// NewWorld 创建物理世界
func NewWorld(config Config) *World {
	return &World{
		config:     config,
		nextHandle: 1,
		bodies:     make(map[game.BodyHandle]*Body),
	}
}

// NewBody 创建竖直圆柱形刚体，position 为底部中心
func (w *World) NewBody(entity ecs.EntityID, position mgl64.Vec3, radius, height float64) game.Body {
	b := &Body{
		world:    w,
		handle:   w.nextHandle,
		entity:   entity,
		position: position,
		radius:   radius,
		height:   height,
		mass:     DefaultMass,
	}
	w.nextHandle++
	w.bodies[b.handle] = b
	return b
}

// BodyCount 返回世界中的刚体数量
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// OnGroundContact 注册刚体落地回调
// 回调在刚体从空中接触地面的那一步触发
func (w *World) OnGroundContact(body game.Body, callback func()) {
	b, ok := body.(*Body)
	if !ok || b.world != w {
		log.Printf("[Physics] Warning: OnGroundContact on foreign body")
		return
	}
	b.onGroundContact = callback
}

// Step 推进一个物理步
func (w *World) Step(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	for _, b := range w.sortedBodies() {
		if b.kinematic {
			b.pendingForce = mgl64.Vec3{}
			continue
		}

		// 累积的力在一个步长内作用（F = m·a）
		b.velocity = b.velocity.Add(b.pendingForce.Mul(deltaTime / b.mass))
		b.pendingForce = mgl64.Vec3{}

		b.velocity[1] += w.config.Gravity * deltaTime
		b.position = b.position.Add(b.velocity.Mul(deltaTime))

		if b.position.Y() <= w.config.GroundHeight {
			b.position[1] = w.config.GroundHeight
			if b.velocity.Y() < 0 {
				b.velocity[1] = 0
			}
			if w.config.Damping > 0 {
				k := math.Max(0, 1-w.config.Damping*deltaTime)
				b.velocity[0] *= k
				b.velocity[2] *= k
			}
			if !b.onGround {
				b.onGround = true
				if b.onGroundContact != nil {
					b.onGroundContact()
				}
			}
		} else {
			b.onGround = false
		}
	}
}

// Raycast 从 origin 沿 direction 发射射线，返回最近命中
// 检测对象为所有刚体和地面
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (game.RaycastHit, bool) {
	if direction.Len() == 0 {
		return game.RaycastHit{}, false
	}
	dir := direction.Normalize()

	best := maxDistance
	var hit game.RaycastHit
	found := false

	// 地面
	if dir.Y() < 0 {
		t := (w.config.GroundHeight - origin.Y()) / dir.Y()
		if t >= 0 && t <= best {
			best = t
			hit = game.RaycastHit{
				Point:  origin.Add(dir.Mul(t)),
				Normal: mgl64.Vec3{0, 1, 0},
			}
			found = true
		}
	}

	for _, b := range w.sortedBodies() {
		t, normal, ok := b.intersectRay(origin, dir)
		if !ok || t > best {
			continue
		}
		best = t
		hit = game.RaycastHit{
			Point:  origin.Add(dir.Mul(t)),
			Normal: normal,
			Entity: b.entity,
			Body:   b,
		}
		found = true
	}

	return hit, found
}

// sortedBodies 按句柄顺序返回刚体，保证步进结果确定
func (w *World) sortedBodies() []*Body {
	list := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].handle < list[j].handle })
	return list
}
