package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/md2html-go/internal/types"
)

// htmls 提取片段的 HTML 字符串，便于断言
func htmls(fragments []types.Fragment) []string {
	out := make([]string, len(fragments))
	for i, frag := range fragments {
		out[i] = frag.HTML
	}
	return out
}

// TestParse_Headings 测试 1..6 级标题
func TestParse_Headings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "level 1", text: "# Title", want: "<h1>Title</h1>"},
		{name: "level 2", text: "## Title", want: "<h2>Title</h2>"},
		{name: "level 6", text: "###### Deep", want: "<h6>Deep</h6>"},
		{name: "text is trimmed", text: "#   spaced   ", want: "<h1>spaced</h1>"},
		{name: "inline formatting applies", text: "# **Big**", want: "<h1><b>Big</b></h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := Parse(tt.text, nil)
			require.Len(t, fragments, 1)
			assert.Equal(t, types.BlockKindHeading, fragments[0].Kind)
			assert.Equal(t, tt.want, fragments[0].HTML)
		})
	}
}

// TestParse_InvalidHeadings 无效标题按段落处理
func TestParse_InvalidHeadings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "seven hashes", text: "####### Deep", want: "<p>####### Deep</p>"},
		{name: "no space after hashes", text: "#Title", want: "<p>#Title</p>"},
		{name: "hashes only", text: "##", want: "<p>##</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := Parse(tt.text, nil)
			require.Len(t, fragments, 1)
			assert.Equal(t, types.BlockKindParagraph, fragments[0].Kind)
			assert.Equal(t, tt.want, fragments[0].HTML)
		})
	}
}

// TestParse_UnorderedList 测试 "- " 列表
func TestParse_UnorderedList(t *testing.T) {
	fragments := Parse("- Apple\n- Banana", nil)
	require.Len(t, fragments, 1)
	assert.Equal(t, types.BlockKindUnorderedList, fragments[0].Kind)
	assert.Equal(t, "<ul>\n<li>Apple</li>\n<li>Banana</li>\n</ul>", fragments[0].HTML)
}

// TestParse_OrderedList 测试 "* " 列表
func TestParse_OrderedList(t *testing.T) {
	fragments := Parse("* First\n* Second", nil)
	require.Len(t, fragments, 1)
	assert.Equal(t, types.BlockKindOrderedList, fragments[0].Kind)
	assert.Equal(t, "<ol>\n<li>First</li>\n<li>Second</li>\n</ol>", fragments[0].HTML)
}

// TestParse_ListTerminators 列表终止规则：空行被消费，其他终止行不被消费
func TestParse_ListTerminators(t *testing.T) {
	t.Run("trailing blank line consumed", func(t *testing.T) {
		fragments := Parse("- a\n\n- b", nil)
		// 空行终止第一个列表并被消费；"- b" 开启第二个列表
		require.Len(t, fragments, 2)
		assert.Equal(t, "<ul>\n<li>a</li>\n</ul>", fragments[0].HTML)
		assert.Equal(t, "<ul>\n<li>b</li>\n</ul>", fragments[1].HTML)
	})

	t.Run("non-list line left for next block", func(t *testing.T) {
		fragments := Parse("- a\nplain text", nil)
		require.Len(t, fragments, 2)
		assert.Equal(t, types.BlockKindUnorderedList, fragments[0].Kind)
		assert.Equal(t, "<p>plain text</p>", fragments[1].HTML)
	})

	t.Run("other marker ends the list", func(t *testing.T) {
		fragments := Parse("- a\n* b", nil)
		require.Len(t, fragments, 2)
		assert.Equal(t, types.BlockKindUnorderedList, fragments[0].Kind)
		assert.Equal(t, types.BlockKindOrderedList, fragments[1].Kind)
	})

	t.Run("end of document ends the list", func(t *testing.T) {
		fragments := Parse("* only", nil)
		require.Len(t, fragments, 1)
		assert.Equal(t, "<ol>\n<li>only</li>\n</ol>", fragments[0].HTML)
	})
}

// TestParse_ListItemFormatting 列表项文本被修剪并行内格式化
func TestParse_ListItemFormatting(t *testing.T) {
	fragments := Parse("- **bold** item  ", nil)
	require.Len(t, fragments, 1)
	assert.Equal(t, "<ul>\n<li><b>bold</b> item</li>\n</ul>", fragments[0].HTML)
}

// TestParse_Paragraphs 测试段落收集与连接
func TestParse_Paragraphs(t *testing.T) {
	t.Run("consecutive lines joined with a space", func(t *testing.T) {
		fragments := Parse("Line one\nLine two", nil)
		require.Len(t, fragments, 1)
		assert.Equal(t, "<p>Line one Line two</p>", fragments[0].HTML)
	})

	t.Run("blank line splits paragraphs", func(t *testing.T) {
		fragments := Parse("one\n\ntwo", nil)
		require.Equal(t, []string{"<p>one</p>", "<p>two</p>"}, htmls(fragments))
	})

	t.Run("heading stops the paragraph without being consumed", func(t *testing.T) {
		fragments := Parse("text\n# Title", nil)
		require.Equal(t, []string{"<p>text</p>", "<h1>Title</h1>"}, htmls(fragments))
	})

	t.Run("list marker stops the paragraph", func(t *testing.T) {
		fragments := Parse("text\n- item", nil)
		require.Equal(t, []string{"<p>text</p>", "<ul>\n<li>item</li>\n</ul>"}, htmls(fragments))
	})

	t.Run("invalid heading line absorbed as paragraph text", func(t *testing.T) {
		fragments := Parse("text\n####### not a heading", nil)
		require.Len(t, fragments, 1)
		assert.Equal(t, "<p>text ####### not a heading</p>", fragments[0].HTML)
	})
}

// TestParse_BlankDocument 全空白输入不产生任何片段
func TestParse_BlankDocument(t *testing.T) {
	assert.Empty(t, Parse("", nil))
	assert.Empty(t, Parse("\n\n   \n\t\n", nil))
}

// TestParse_SourceOrder 片段顺序与源顺序一致
func TestParse_SourceOrder(t *testing.T) {
	markdown := "# H\n\npara\n\n- u\n\n* o\n\ntail"
	fragments := Parse(markdown, nil)
	require.Len(t, fragments, 5)
	kinds := make([]types.BlockKind, len(fragments))
	for i, frag := range fragments {
		kinds[i] = frag.Kind
	}
	assert.Equal(t, []types.BlockKind{
		types.BlockKindHeading,
		types.BlockKindParagraph,
		types.BlockKindUnorderedList,
		types.BlockKindOrderedList,
		types.BlockKindParagraph,
	}, kinds)
}

// TestSplitLines CRLF 行尾也被剥除
func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

// TestParse_CustomSymbol 自定义列表标签
func TestParse_CustomSymbol(t *testing.T) {
	config := &types.RenderConfig{
		HTMLSymbol: &types.Symbol{
			HeadingPrefix: "h",
			UnorderedList: "menu",
			OrderedList:   "ol",
			ListItem:      "li",
			Paragraph:     "p",
			Bold:          "b",
			Emphasis:      "em",
		},
	}
	fragments := Parse("- x", config)
	require.Len(t, fragments, 1)
	assert.Equal(t, "<menu>\n<li>x</li>\n</menu>", fragments[0].HTML)
}
