package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 插值工具
//
// 所有插值系数 t 都先被限制到 [0, 1]，
// 因此 dt/smoothing 之类大于 1 的系数等价于"直接到达目标"。

// Epsilon 判定"有输入"/"有速度"的最小量
const Epsilon = 1e-6

// Clamp01 将 t 限制到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Clamp 将 v 限制到 [min, max]
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Lerp 标量线性插值
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// LerpVec3 向量线性插值
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

// Slerp 四元数球面插值
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	// 取最短路径
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// SafeNormalize 归一化向量，零向量原样返回
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() <= Epsilon {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Flatten 去掉向量的竖直分量
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Up 世界竖直方向
var Up = mgl64.Vec3{0, 1, 0}

// Forward 本地前方（+Z）
var Forward = mgl64.Vec3{0, 0, 1}

// Right 本地右方（+X）
var Right = mgl64.Vec3{1, 0, 0}

// YawPitchRotation 由偏航/俯仰角（度）构造旋转：先俯仰，后绕竖直轴偏航
// 正偏航向右转，正俯仰向下看
func YawPitchRotation(yawDeg, pitchDeg float64) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), Right)
	return yaw.Mul(pitch)
}

// YawRotation 只绕竖直轴的旋转
func YawRotation(yawDeg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up)
}

// FlatYaw 返回旋转的水平朝向角（度）
// 与去掉俯仰和翻滚后的欧拉偏航角一致
func FlatYaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	if math.Abs(f.X()) <= Epsilon && math.Abs(f.Z()) <= Epsilon {
		// 正对上下时用 up 轴推算朝向
		u := q.Rotate(Up)
		if f.Y() > 0 {
			u = u.Mul(-1)
		}
		return mgl64.RadToDeg(math.Atan2(u.X(), u.Z()))
	}
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}

// LookRotation 朝向水平方向 dir 的旋转，dir 为零向量时返回单位旋转
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	dir = Flatten(dir)
	if dir.Len() <= Epsilon {
		return mgl64.QuatIdent()
	}
	return YawRotation(mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z())))
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³，t 先被限制到 [0, 1]
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}
