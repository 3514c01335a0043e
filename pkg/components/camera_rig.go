package components

import "github.com/go-gl/mathgl/mgl64"

// CameraRigComponent 第三人称镜头支架
//
// 镜头世界位置 = SlotPosition + SlotRotation * CameraOffset
type CameraRigComponent struct {
	SlotPosition        mgl64.Vec3 // 支架实际位置（死亡后冻结）
	CurrentSlotPosition mgl64.Vec3 // 拖拽平滑中的支架位置
	SlotRotation        mgl64.Quat
	CameraOffset        mgl64.Vec3 // 镜头相对支架的本地偏移（在自由视角和瞄准预设之间插值）
	FOV                 float64

	// Detached 死亡时从玩家层级中分离，之后不再跟随玩家身体
	Detached    bool
	DeathCamPos mgl64.Vec3
}

// CameraPosition 返回镜头的世界位置
func (c *CameraRigComponent) CameraPosition() mgl64.Vec3 {
	return c.SlotPosition.Add(c.SlotRotation.Rotate(c.CameraOffset))
}

// CameraForward 返回镜头朝向
func (c *CameraRigComponent) CameraForward() mgl64.Vec3 {
	return c.SlotRotation.Rotate(mgl64.Vec3{0, 0, 1})
}
