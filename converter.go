package md2html

import (
	"strings"

	"github.com/riverfjs/md2html-go/internal/parser"
)

// Render 将 Markdown 转换为 HTML 字符串
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: HTML 文本，片段间以换行符连接，末尾带一个换行符
func Render(markdown string, config *RenderConfig) string {
	fragments := RenderFragments(markdown, config)
	htmls := make([]string, len(fragments))
	for i, frag := range fragments {
		htmls[i] = frag.HTML
	}
	return strings.Join(htmls, "\n") + "\n"
}

// RenderFragments 将 Markdown 转换为有序的 Fragment 序列
//
// 类似 Render()，但保留每个块的类型信息，供需要逐块处理输出的调用方使用。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - []Fragment: 每个识别出的块一个片段，顺序与源顺序一致
func RenderFragments(markdown string, config *RenderConfig) []Fragment {
	if config == nil {
		config = DefaultConfig()
	}
	return parser.Parse(markdown, config)
}
