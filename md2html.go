// Package md2html 将受限 Markdown 方言转换为 HTML
//
// 这个包逐行处理输入，将其划分为块级结构（标题、无序/有序列表、段落），
// 并对每个块的文本应用固定顺序的行内替换。
//
// 支持的语法：
//   - 标题：1–6 个 # 后跟单个空格
//   - 无序列表："- " 开头的连续行 → <ul>/<li>
//   - 有序列表："* " 开头的连续行 → <ol>/<li>
//   - 段落：其余连续非空行，以空格连接
//   - [[text]]：替换为 text 的 MD5 摘要（小写十六进制）
//   - ((text))：删除 text 中所有 c/C
//   - **text** → <b>text</b>，__text__ → <em>text</em>
//
// 主要 API：
//   - Convert(): 基于可选项的转换，返回完整 HTML 字符串
//   - Render() / RenderFragments(): 基于显式配置的底层转换
//   - ConvertFile(): 文件到文件的完整管道
//
// 示例：
//
//	html := md2html.Convert("# Hello\n\nSome **bold** text\n")
//	// "<h1>Hello</h1>\n<p>Some <b>bold</b> text</p>\n"
//
//	fragments := md2html.RenderFragments("- a\n- b\n", nil)
//	for _, frag := range fragments {
//	    fmt.Println(frag.Kind, frag.HTML)
//	}
package md2html

// Convert 将 Markdown 转换为 HTML 字符串
//
// 这是主要的入口。输出为每个识别出的块一个 HTML 片段，
// 片段之间以换行符连接，末尾恒有一个换行符。
// 对任意输入都有定义良好的输出，不产生错误。
//
// 参数：
//   - markdown: 原始 Markdown 文本
//   - opts: 可选配置项，缺省使用 DefaultConfig()
func Convert(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	return Render(markdown, options.Config)
}
