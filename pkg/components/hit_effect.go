package components

// HitEffectComponent 命中特效
// 仅供渲染使用，由 LifetimeComponent 定时移除
type HitEffectComponent struct {
	Blood bool // 命中僵尸时为血迹特效，否则为普通火花
}
