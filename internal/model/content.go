package model

// Publishable 统一博客的状态机与工具/分类的布尔开关两套可见性表示
// 对外读取路径只关心 IsVisible
type Publishable interface {
	Kind() string
	ContentID() uint64
	IsVisible() bool
}
