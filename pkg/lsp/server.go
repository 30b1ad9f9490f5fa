package lsp

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"src.weir.sh/pkg/diag"
	"src.weir.sh/pkg/eval"
	"src.weir.sh/pkg/parse"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// A server keeps the state of one editing session: an Evaler to check code
// with and the current content of every open document. Handlers run one at
// a time, so the state needs no locking.
type server struct {
	evaler    *eval.Evaler
	documents map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{eval.NewEvaler(), make(map[lsp.DocumentURI]string)}
}

func (s *server) handler() jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize": handler(s.initialize),
		"shutdown":   noop,
		"exit":       noop,

		"textDocument/didOpen":    handler(s.didOpen),
		"textDocument/didChange":  handler(s.didChange),
		"textDocument/didClose":   noop,
		"textDocument/completion": handler(s.completion),

		// Required by a well-behaved client, but nothing to do.
		"initialized":                      noop,
		"workspace/didChangeConfiguration": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		if req.Params == nil {
			return fn(ctx, conn, nil)
		}
		return fn(ctx, conn, *req.Params)
	})
}

// handler wraps a method with typed params into a method. The wrapper
// refuses params that don't unmarshal into the expected type.
func handler[T any](fn func(context.Context, jsonrpc2.JSONRPC2, T) (any, error)) method {
	return func(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
		var params T
		if rawParams != nil {
			if err := json.Unmarshal(rawParams, &params); err != nil {
				return nil, errInvalidParams
			}
		}
		return fn(ctx, conn, params)
	}
}

// Handler implementations. Requests and notifications not listed here are
// handled as noops above.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidOpenTextDocumentParams) (any, error) {
	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.updateDocument(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, params lsp.DidChangeTextDocumentParams) (any, error) {
	// Sync is full, so the latest change always carries the whole document.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.updateDocument(ctx, conn, params.TextDocument.URI, content)
	return nil, nil
}

func (s *server) updateDocument(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	s.documents[uri] = content
	// Publishing from the handler itself keeps diagnostics in the order of
	// the edits.
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: s.diagnostics(uri, content)})
	if err != nil {
		logger.Println("failed to publish diagnostics:", err)
	}
}

// diagnostics checks the document and converts the parse or compilation
// errors to LSP diagnostics. Checking never runs the code.
func (s *server) diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	err := s.evaler.Check(parse.Source{Name: string(uri), Code: content})
	if err == nil {
		return []lsp.Diagnostic{}
	}
	var entries []*diag.Error
	var source string
	if errs := parse.UnpackErrors(err); errs != nil {
		entries, source = errs, "parse"
	} else if errs := eval.UnpackCompilationErrors(err); errs != nil {
		entries, source = errs, "compile"
	}
	diagnostics := make([]lsp.Diagnostic, len(entries))
	for i, e := range entries {
		diagnostics[i] = lsp.Diagnostic{
			Range:    lspRangeFromRange(content, e),
			Severity: lsp.Error,
			Source:   source,
			Message:  e.Message,
		}
	}
	return diagnostics
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, params lsp.CompletionParams) (any, error) {
	content, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return []lsp.CompletionItem{}, nil
	}
	idx := idxFromLSPPosition(content, params.Position)
	start, seed := completionSeed(content, idx)
	startPosition := lspPositionFromIdx(content, start)

	var items []lsp.CompletionItem
	for _, cmd := range s.evaler.Commands() {
		name := cmd.Name()
		if !strings.HasPrefix(name, seed) {
			continue
		}
		items = append(items, lsp.CompletionItem{
			Label:  name,
			Kind:   lsp.CIKFunction,
			Detail: cmd.Usage(),
			TextEdit: &lsp.TextEdit{
				Range:   lsp.Range{Start: startPosition, End: params.Position},
				NewText: name,
			},
		})
	}
	return items, nil
}

// completionSeed finds the word being completed: the longest run of
// bareword-looking characters just before the cursor. It returns the byte
// index where that run starts along with the run itself.
func completionSeed(content string, idx int) (int, string) {
	if idx > len(content) {
		idx = len(content)
	}
	start := idx
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:start])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			break
		}
		start -= size
	}
	return start, content[start:idx]
}

// Index-to-position conversions. LSP positions count in lines and UTF-16
// units within the line.

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func idxFromLSPPosition(s string, p lsp.Position) int {
	var idx int
	walkString(s, func(i int, q lsp.Position) bool {
		idx = i
		return q.Line < p.Line || (q.Line == p.Line && q.Character < p.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, i int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(j int, q lsp.Position) bool {
		pos = q
		return j < i
	})
	return pos
}

// walkString calls f for each position in s, until f returns false. The
// position passed to the last call, which may be the end of the string, is
// where the walk stopped.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\n':
			p.Line++
			p.Character = 0
		case r >= 0x10000:
			// A rune outside the BMP takes a surrogate pair in UTF-16.
			p.Character += 2
		default:
			p.Character++
		}
	}
	f(len(s), p)
}
