package md2html

import (
	"github.com/riverfjs/md2html-go/internal/types"
)

// 导出类型别名
type BlockKind = types.BlockKind
type Fragment = types.Fragment

const (
	// BlockKindHeading represents a heading block (<h1>..<h6>).
	BlockKindHeading = types.BlockKindHeading
	// BlockKindUnorderedList represents an unordered list block (<ul>).
	BlockKindUnorderedList = types.BlockKindUnorderedList
	// BlockKindOrderedList represents an ordered list block (<ol>).
	BlockKindOrderedList = types.BlockKindOrderedList
	// BlockKindParagraph represents a paragraph block (<p>).
	BlockKindParagraph = types.BlockKindParagraph
)
