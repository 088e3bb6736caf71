// Package parser 实现块级解析：单次前向扫描源文本行，
// 识别标题、无序/有序列表和段落，并委托 inline 包完成行内格式化。
package parser

import (
	"fmt"
	"strings"

	"github.com/riverfjs/md2html-go/internal/inline"
	"github.com/riverfjs/md2html-go/internal/types"
)

// 列表标记与段落终止判断使用的前缀
const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// Parse 将 Markdown 源文本解析为有序的 Fragment 序列
//
// 每个片段对应一个块；片段顺序与块在源文本中出现的顺序一致。
// 每一行恰好被消费一次（归入某个块或作为空行跳过），游标只前进不回退。
func Parse(markdown string, config *types.RenderConfig) []types.Fragment {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return ParseLines(SplitLines(markdown), config)
}

// SplitLines 将源文本切分为去除行尾符的行序列
func SplitLines(markdown string) []string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseLines 对已切分的行序列执行块级扫描
func ParseLines(lines []string, config *types.RenderConfig) []types.Fragment {
	fragments := make([]types.Fragment, 0)
	i := 0

	for i < len(lines) {
		line := lines[i]

		// 1. 空行：跳过，不产生输出
		if isBlank(line) {
			i++
			continue
		}

		// 2. 标题 (#..###### + 单个空格)
		if level, ok := headingLevel(line); ok {
			fragments = append(fragments, renderHeading(line, level, config))
			i++
			continue
		}

		// 3. 无序列表 ("- ")
		if strings.HasPrefix(line, unorderedMarker) {
			frag, next := collectList(lines, i, unorderedMarker, types.BlockKindUnorderedList, config)
			fragments = append(fragments, frag)
			i = next
			continue
		}

		// 4. 有序列表 ("* ")
		if strings.HasPrefix(line, orderedMarker) {
			frag, next := collectList(lines, i, orderedMarker, types.BlockKindOrderedList, config)
			fragments = append(fragments, frag)
			i = next
			continue
		}

		// 5. 段落（默认）
		frag, next := collectParagraph(lines, i, config)
		fragments = append(fragments, frag)
		i = next
	}

	return fragments
}

// isBlank 判断是否为空行（空或全空白）
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// headingLevel 返回标题级别 (1..6)
//
// 行首的 # 连续段后必须紧跟单个空格才是标题；
// 第七个 # 或缺少空格的行按段落处理。
func headingLevel(line string) (int, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, false
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, false
	}
	return level, true
}

// startsBlock 判断某行是否会开启一个新的块（终止当前段落）
func startsBlock(line string) bool {
	if _, ok := headingLevel(line); ok {
		return true
	}
	return strings.HasPrefix(line, unorderedMarker) || strings.HasPrefix(line, orderedMarker)
}

// renderHeading 渲染单行标题块
func renderHeading(line string, level int, config *types.RenderConfig) types.Fragment {
	text := strings.TrimSpace(line[level+1:])
	text = inline.Format(text, config)
	tag := fmt.Sprintf("%s%d", config.HTMLSymbol.HeadingPrefix, level)
	return types.Fragment{
		Kind: types.BlockKindHeading,
		HTML: fmt.Sprintf("<%s>%s</%s>", tag, text, tag),
	}
}

// collectList 从 start 开始收集一个列表块，返回片段和下一个未消费行的下标
//
// 连续的标记行各成一个 <li>；遇到的第一个空行终止列表且本身被消费，
// 其他终止行留给下一轮处理。
func collectList(lines []string, start int, marker string, kind types.BlockKind, config *types.RenderConfig) (types.Fragment, int) {
	tag := config.HTMLSymbol.UnorderedList
	if kind == types.BlockKindOrderedList {
		tag = config.HTMLSymbol.OrderedList
	}
	itemTag := config.HTMLSymbol.ListItem

	var b strings.Builder
	fmt.Fprintf(&b, "<%s>", tag)

	i := start
	for i < len(lines) {
		line := lines[i]
		if strings.HasPrefix(line, marker) {
			text := strings.TrimSpace(line[len(marker):])
			text = inline.Format(text, config)
			fmt.Fprintf(&b, "\n<%s>%s</%s>", itemTag, text, itemTag)
			i++
			continue
		}
		// 空行终止列表，且空行本身被消费
		if isBlank(line) {
			i++
		}
		break
	}

	fmt.Fprintf(&b, "\n</%s>", tag)
	return types.Fragment{Kind: kind, HTML: b.String()}, i
}

// collectParagraph 从 start 开始收集一个段落块
//
// 连续的非空、非块起始行以单个空格连接；终止行不被消费，
// 留给下一轮顶层扫描（空行由顶层的空行规则跳过）。
func collectParagraph(lines []string, start int, config *types.RenderConfig) (types.Fragment, int) {
	var parts []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) || startsBlock(line) {
			break
		}
		parts = append(parts, line)
		i++
	}

	text := inline.Format(strings.Join(parts, " "), config)
	tag := config.HTMLSymbol.Paragraph
	return types.Fragment{
		Kind: types.BlockKindParagraph,
		HTML: fmt.Sprintf("<%s>%s</%s>", tag, text, tag),
	}, i
}
