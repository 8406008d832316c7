package types

// Resource 砍树得到的物品，与作物收获分开计数
type Resource int

const (
	// ResourceWood 树被砍倒时得到
	ResourceWood Resource = iota
	// ResourceApple 每次砍树从树上打落一个
	ResourceApple
)

// AllResources HUD 显示顺序
var AllResources = []Resource{ResourceWood, ResourceApple}

func (r Resource) String() string {
	switch r {
	case ResourceWood:
		return "wood"
	case ResourceApple:
		return "apple"
	default:
		return "unknown"
	}
}
