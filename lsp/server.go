// Package lsp serves calculator worksheets over the Language Server
// Protocol: every failing line gets a diagnostic and hovering a line shows
// its value.
package lsp

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/dhamidi/minilab/calc"
	"github.com/dhamidi/minilab/worksheet"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "minilab"

var log = commonlog.GetLogger("minilab.lsp")

type Server struct {
	documents *Documents
	handler   protocol.Handler
	server    *server.Server
	version   string
	digits    int
}

func NewServer(version string, digits int, opts ...calc.Option) *Server {
	ls := &Server{
		documents: NewDocuments(opts...),
		version:   version,
		digits:    digits,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := ls.documents.Update(params.TextDocument.URI, []byte(params.TextDocument.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return fmt.Errorf("incremental change for %s: only full sync is supported", params.TextDocument.URI)
	}
	doc := ls.documents.Update(params.TextDocument.URI, []byte(textChange.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.documents.Remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	doc := ls.documents.Update(params.TextDocument.URI, []byte(*params.Text))
	ls.publish(ctx, doc)
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := ls.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	result, ok := doc.ResultAt(int(params.Position.Line))
	if !ok {
		return nil, nil
	}

	var text string
	if result.Err != nil {
		text = result.Err.Error()
	} else {
		text = "= " + strconv.FormatFloat(result.Value, 'g', ls.digits, 64)
	}

	line := params.Position.Line
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: text,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: utf16Column(result.Text, len(result.Text))},
		},
	}, nil
}

func (ls *Server) publish(ctx *glsp.Context, doc *Document) {
	diagnostics := Diagnostics(doc.Results)
	log.Debugf("%s: %d diagnostics", doc.URI, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diagnostics,
	})
}

// Diagnostics returns one error diagnostic per failed result, starting at
// the failing column and running to the end of the line. Columns count
// UTF-16 code units, as LSP positions do.
func Diagnostics(results []worksheet.Result) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		line := protocol.UInteger(r.Line - 1)
		offset := min(max(r.Column(), 0), len(r.Text))
		column := utf16Column(r.Text, offset)
		end := max(utf16Column(r.Text, len(r.Text)), column+1)

		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: column},
				End:   protocol.Position{Line: line, Character: end},
			},
			Severity: &severity,
			Source:   &source,
			Message:  r.Err.Error(),
		})
	}
	return diagnostics
}

// utf16Column converts a byte offset into text to a UTF-16 column.
func utf16Column(text string, offset int) protocol.UInteger {
	column := 0
	for _, r := range text[:offset] {
		column += utf16.RuneLen(r)
	}
	return protocol.UInteger(column)
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
