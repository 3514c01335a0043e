package game

// Scene 表示一个可运行的场景（一局完整的比赛）
//
// 每帧的调用顺序由 SceneManager 保证：
//  1. Update(deltaTime)        可变步长：输入采样、AI、计时器
//  2. FixedUpdate(fixedStep)   固定步长：移动积分，每帧 0~N 次
//  3. LateUpdate(deltaTime)    可变步长：镜头、UI 推送、实体清理
type Scene interface {
	Update(deltaTime float64)
	FixedUpdate(fixedStep float64)
	LateUpdate(deltaTime float64)
}

// Disposable 是一个可选接口，场景被替换时调用
type Disposable interface {
	Dispose()
}
