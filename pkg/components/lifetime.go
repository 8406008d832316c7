package components

// LifetimeComponent 短暂实体的存活时间
// 雨滴、水花、收获粒子在到期后由 LifetimeSystem 标记删除，
// 实际移除发生在本帧所有系统更新完成之后
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大存活时间(秒)
	CurrentLifetime float64 // 已存活时间(秒)
	IsExpired       bool
}
