package components

import "github.com/go-gl/mathgl/mgl64"

// PlayerComponent 玩家控制状态
//
// InputVec 由可变帧率的输入采样写入，CurrentInputVec 由固定步长的移动积分平滑，
// 物理步只读取上一次采样的结果。
type PlayerComponent struct {
	InputVec        mgl64.Vec3 // 本帧采样的移动输入（已相对镜头、已归一化、已乘冲刺倍率）
	CurrentInputVec mgl64.Vec3 // 平滑后的移动输入
	Grounded        bool
	ShouldJump      bool // 跳跃请求，由下一个物理步消费
	Aiming          bool

	CameraYaw   float64 // 度，不限范围
	CameraPitch float64 // 度，限制在俯仰范围内
	ArmPitch    float64 // 手臂俯仰（度），仅用于表现

	MeshRotation mgl64.Quat // 可见模型的朝向（与刚体旋转分离）
}

// NewPlayerComponent 创建初始玩家状态
func NewPlayerComponent() *PlayerComponent {
	return &PlayerComponent{
		MeshRotation: mgl64.QuatIdent(),
	}
}
