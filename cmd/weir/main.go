// Weir is a shell for structured data. Commands pass values, not text:
// pipelines carry lists, numbers and ranges, and the interactive mode shows
// each value a command produces. It is suitable for both interactive use
// and scripting.
package main

import (
	"os"

	"src.weir.sh/pkg/buildinfo"
	"src.weir.sh/pkg/lsp"
	"src.weir.sh/pkg/prog"
	"src.weir.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, lsp.Program, shell.Program{})))
}
