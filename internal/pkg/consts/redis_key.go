package consts

const (
	// ContentViewKey + kind:id 阅读计数缓冲
	ContentViewKey = "content:view:"
	// ContentViewDirtyKey 有待落库阅读增量的内容集合，成员形如 kind:id
	ContentViewDirtyKey = "content:view:dirty"
)
