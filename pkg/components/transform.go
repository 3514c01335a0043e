package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 存储实体的世界位置和朝向
// y 轴向上，本地 +Z 为前方，+X 为右方
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform 创建位于指定位置、无旋转的变换
func NewTransform(position mgl64.Vec3) *TransformComponent {
	return &TransformComponent{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	}
}
