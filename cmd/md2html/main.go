// Command md2html converts a restricted Markdown dialect to HTML.
//
// Usage:
//
//	md2html <input> <output>
//
// The input file is read as UTF-8 Markdown, converted block by block,
// and the resulting HTML fragments are written to the output file.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	md2html "github.com/riverfjs/md2html-go"
)

// CLI defines the command-line interface for md2html.
var CLI struct {
	Input  string `arg:"" help:"Path to the Markdown source file" type:"path"`
	Output string `arg:"" help:"Path to write the rendered HTML" type:"path"`
}

// cliOptions returns the kong options shared by main and the tests.
//
// kong 对用法错误默认以 80 退出；这里统一映射为 1，--help 仍保持 0。
func cliOptions(exit func(int)) []kong.Option {
	return []kong.Option{
		kong.Name("md2html"),
		kong.Description("Convert a restricted Markdown dialect to HTML"),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			if code != 0 {
				code = 1
			}
			exit(code)
		}),
	}
}

func main() {
	ctx := kong.Parse(&CLI, cliOptions(os.Exit)...)
	err := md2html.ConvertFile(CLI.Input, CLI.Output)
	ctx.FatalIfErrorf(err)
}
