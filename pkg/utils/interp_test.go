package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLerpClampsFactor(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	// dt/smoothing 大于 1 时直接到达目标，不会越过
	if got := Lerp(0, 10, 25); got != 10 {
		t.Errorf("Lerp(0, 10, 25) = %v, want 10", got)
	}
	if got := LerpVec3(mgl64.Vec3{}, mgl64.Vec3{2, 4, 6}, 100); got != (mgl64.Vec3{2, 4, 6}) {
		t.Errorf("LerpVec3 overshoot: got %v", got)
	}
}

func TestSafeNormalize(t *testing.T) {
	if got := SafeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("SafeNormalize(zero) = %v, want zero", got)
	}
	got := SafeNormalize(mgl64.Vec3{3, 0, 4})
	if !approxEqual(got.Len(), 1) {
		t.Errorf("SafeNormalize length = %v, want 1", got.Len())
	}
}

func TestYawPitchRotation(t *testing.T) {
	t.Run("positive yaw turns right", func(t *testing.T) {
		f := YawPitchRotation(90, 0).Rotate(Forward)
		if !approxEqual(f.X(), 1) || !approxEqual(f.Z(), 0) {
			t.Errorf("forward after yaw 90 = %v, want (1, 0, 0)", f)
		}
	})
	t.Run("positive pitch looks down", func(t *testing.T) {
		f := YawPitchRotation(0, 30).Rotate(Forward)
		if f.Y() >= 0 {
			t.Errorf("forward after pitch 30 = %v, want negative y", f)
		}
	})
	t.Run("flat yaw ignores pitch", func(t *testing.T) {
		if got := FlatYaw(YawPitchRotation(45, 60)); !approxEqual(got, 45) {
			t.Errorf("FlatYaw = %v, want 45", got)
		}
	})
}

func TestLookRotation(t *testing.T) {
	q := LookRotation(mgl64.Vec3{-1, 5, 0})
	f := q.Rotate(Forward)
	if !approxEqual(f.X(), -1) || !approxEqual(f.Y(), 0) {
		t.Errorf("LookRotation forward = %v, want (-1, 0, 0)", f)
	}
	if LookRotation(mgl64.Vec3{}) != mgl64.QuatIdent() {
		t.Error("LookRotation(zero) should be identity")
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := YawRotation(0)
	b := YawRotation(90)
	if got := Slerp(a, b, 0); got != a {
		t.Errorf("Slerp t=0 = %v, want %v", got, a)
	}
	if got := Slerp(a, b, 7); got != b {
		t.Errorf("Slerp t>1 = %v, want %v", got, b)
	}
	mid := FlatYaw(Slerp(a, b, 0.5))
	if !approxEqual(mid, 45) {
		t.Errorf("Slerp midpoint yaw = %v, want 45", mid)
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
