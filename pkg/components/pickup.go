package components

// PickupType 拾取物类型
type PickupType int

const (
	// PickupHealth 血包
	PickupHealth PickupType = iota
	// PickupAmmo 弹药
	PickupAmmo
)

// String 返回类型名称
func (t PickupType) String() string {
	switch t {
	case PickupHealth:
		return "health"
	case PickupAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// PickupComponent 拾取物
type PickupComponent struct {
	Type      PickupType
	Count     int
	SpinSpeed float64 // 度/秒
	// OwnerID 所属的刷新点 ID，空字符串表示不属于任何刷新点（如僵尸掉落）
	OwnerID string
}
