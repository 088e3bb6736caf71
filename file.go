package md2html

import (
	"fmt"
	"os"
)

// ConvertFile 文件到文件的完整管道：读取 Markdown 源文件，
// 转换为 HTML 并写入目标文件
//
// 这是库中唯一执行 I/O 的入口；转换本身是纯函数。
// 输入输出均为 UTF-8 文本。
//
// 参数：
//   - inputPath: Markdown 源文件路径
//   - outputPath: HTML 目标文件路径
//   - opts: 可选配置项，缺省使用 DefaultConfig()
//
// 返回：
//   - error: 源文件不存在时返回 "missing <path>"；读写失败时返回包装后的错误
func ConvertFile(inputPath, outputPath string, opts ...Option) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("missing %s", inputPath)
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	html := Convert(string(source), opts...)
	if html == "\n" {
		// 没有识别出任何块，输出仅含结尾换行
		Logger.Printf("no blocks recognized in %s", inputPath)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
