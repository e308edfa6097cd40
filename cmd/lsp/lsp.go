package lsp

import (
	"context"
	"os"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/gluax-lang/dpp/compiler"
	file_path "github.com/gluax-lang/dpp/filepath"
	"github.com/gluax-lang/dpp/frontend"
	diag "github.com/gluax-lang/dpp/frontend/common"
	protocol "github.com/gluax-lang/lsp"
)

var log = commonlog.GetLogger("dpp.lsp")

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	mu        sync.Mutex
	fileCache map[string]string           // uri -> text
	results   map[string]*compiler.Result // uri -> last compilation
	workspace string
	options   compiler.Options
}

func NewHandler() *Handler {
	h := newHandler()
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func newHandler() *Handler {
	return &Handler{
		fileCache: make(map[string]string),
		results:   make(map[string]*compiler.Result),
	}
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		root, err := file_path.FromURI((*p.WorkspaceFolders)[0].URI)
		if err != nil {
			log.Errorf("invalid workspace folder: %s", err)
		} else {
			h.setWorkspace(root)
		}
	}
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		InlayHintProvider: protocol.NewInlayHintProviderOptions(protocol.InlayHintOptions{
			ResolveProvider: false,
		}),
		CompletionProvider: protocol.CompletionOptions{
			ResolveProvider: false,
		},
	}}, nil
}

// setWorkspace picks up the project options of root, if it is a project.
func (h *Handler) setWorkspace(root string) {
	h.workspace = root
	log.Infof("root: %s", root)
	dt, err := frontend.LoadDppToml(root)
	if err != nil {
		log.Infof("no project options: %s", err)
		return
	}
	h.options = compiler.ProjectOptions(dt)
}

func (h *Handler) Initialized() error {
	log.Info("initialized")
	return nil
}

func (h *Handler) compile(uri, code string) (*compiler.Result, error) {
	src := uri
	if path, err := file_path.FromURI(uri); err == nil {
		src = path
	}
	res, err := compiler.Compile(src, code, h.options)
	if err != nil {
		log.Debugf("%s: %s", src, err)
	}
	h.results[uri] = res
	return res, err
}

// diagnostics lists the errors of a compilation. The checker reports every
// undefined name; the other stages stop at their first error.
func diagnostics(res *compiler.Result, err error) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if res != nil && res.Analysis != nil && len(res.Analysis.Errors) > 0 {
		for _, e := range res.Analysis.Errors {
			diags = append(diags, *e.Diagnostic())
		}
		return diags
	}
	if cerr, ok := diag.AsError(err); ok {
		diags = append(diags, *cerr.Diagnostic())
	}
	return diags
}

func (h *Handler) handleDiagnostics(uri, code string) {
	res, err := h.compile(uri, code)
	h.PublishDiagnostics(uri, diagnostics(res, err))
}
