package types

// BlockKind 表示一个块级结构的类型
type BlockKind int

const (
	// BlockKindHeading 标题块 (<h1>..<h6>)
	BlockKindHeading BlockKind = iota
	// BlockKindUnorderedList 无序列表块 (<ul>)
	BlockKindUnorderedList
	// BlockKindOrderedList 有序列表块 (<ol>)
	BlockKindOrderedList
	// BlockKindParagraph 段落块 (<p>)
	BlockKindParagraph
)

// String returns the string representation of BlockKind.
func (k BlockKind) String() string {
	switch k {
	case BlockKindHeading:
		return "heading"
	case BlockKindUnorderedList:
		return "unordered_list"
	case BlockKindOrderedList:
		return "ordered_list"
	case BlockKindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Fragment 表示一个块渲染后的 HTML 片段
//
// 每个源文档中识别出的块对应一个 Fragment，顺序与源顺序一致。
// HTML 字段可能跨多行（列表的 <li> 各占一行）。
type Fragment struct {
	Kind BlockKind
	HTML string
}

// Symbol 定义各类块和行内元素使用的 HTML 标签名
type Symbol struct {
	HeadingPrefix string // "h" → <h1>..<h6>
	UnorderedList string
	OrderedList   string
	ListItem      string
	Paragraph     string
	Bold          string
	Emphasis      string
}

// DefaultSymbol 返回默认标签配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		HeadingPrefix: "h",
		UnorderedList: "ul",
		OrderedList:   "ol",
		ListItem:      "li",
		Paragraph:     "p",
		Bold:          "b",
		Emphasis:      "em",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	HTMLSymbol *Symbol
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		HTMLSymbol: DefaultSymbol(),
	}
}
