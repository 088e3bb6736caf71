// Package inline 实现行内格式化：对单行块文本按固定顺序应用文本替换。
//
// 四个阶段依次执行，后一阶段作用于前一阶段的输出：
//  1. [[text]] → text 的 MD5（小写十六进制）
//  2. ((text)) → 删除所有 c/C 后的 text
//  3. **text** → <b>text</b>
//  4. __text__ → <em>text</em>
//
// 分隔符不支持嵌套和转义：内容由第一个匹配的结束分隔符截断。
// 未闭合的分隔符原样保留，不视为错误。
package inline

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/md2html-go/internal/types"
)

var (
	// hashRe 匹配 [[...]]，内容不含 ]
	hashRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

	// dropCRe 匹配 ((...))，内容不含 )
	dropCRe = regexp.MustCompile(`\(\(([^)]+)\)\)`)

	// boldRe 匹配 **...**，内容不含 *
	boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// emphasisRe 匹配 __...__，内容不含 _
	emphasisRe = regexp.MustCompile(`__([^_]+)__`)
)

// stage 是一个行内替换阶段
type stage func(text string, config *types.RenderConfig) string

// stages 按固定顺序执行；顺序不可调整，否则会改变
// 字面分隔符出现在前一阶段内容中时的行为。
var stages = []stage{
	expandHashes,
	dropMarkedC,
	renderBold,
	renderEmphasis,
}

// Format 对单行块文本应用全部行内替换，返回渲染后的字符串。
// 纯函数，无副作用。
func Format(text string, config *types.RenderConfig) string {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	for _, s := range stages {
		text = s(text, config)
	}
	return text
}

// expandHashes 将 [[text]] 替换为 text 的 MD5 摘要
func expandHashes(text string, _ *types.RenderConfig) string {
	return hashRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		return md5Hex(inner)
	})
}

// dropMarkedC 将 ((text)) 替换为删除所有 c/C 的 text
func dropMarkedC(text string, _ *types.RenderConfig) string {
	return dropCRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		return stripC(inner)
	})
}

// renderBold 将 **text** 包裹为 <b>text</b>
func renderBold(text string, config *types.RenderConfig) string {
	tag := config.HTMLSymbol.Bold
	return boldRe.ReplaceAllString(text, fmt.Sprintf("<%s>$1</%s>", tag, tag))
}

// renderEmphasis 将 __text__ 包裹为 <em>text</em>
func renderEmphasis(text string, config *types.RenderConfig) string {
	tag := config.HTMLSymbol.Emphasis
	return emphasisRe.ReplaceAllString(text, fmt.Sprintf("<%s>$1</%s>", tag, tag))
}

// md5Hex 返回文本 UTF-8 字节的 MD5 摘要（32 位小写十六进制）
func md5Hex(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// stripC 删除所有 ASCII 'c'/'C'，其余字符（含空白）原序保留
func stripC(text string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, text)
}
