// Package lsp implements a language server for Weir.
package lsp

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"src.weir.sh/pkg/logutil"
	"src.weir.sh/pkg/prog"
)

var logger = logutil.GetLogger("[lsp] ")

// Program is the language server subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.LSP {
		return prog.ErrNotSuitable
	}
	conn := jsonrpc2.NewConn(context.Background(),
		jsonrpc2.NewBufferedStream(
			transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		newServer().handler())
	<-conn.DisconnectNotify()
	return nil
}

// transport speaks the protocol on the program's standard input and output.
type transport struct {
	in  *os.File
	out *os.File
}

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error {
	if err := t.in.Close(); err != nil {
		return err
	}
	return t.out.Close()
}
