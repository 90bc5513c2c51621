// Package langserver answers language server requests for Espresso
// documents: diagnostics, completion, document symbols and hover. It keeps
// the parsed form of each open document in a cache and leaves transport to
// the caller.
package langserver

import (
	"context"
	"strings"

	"github.com/espresso-lang/espresso/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

// Option configures a Server.
type Option func(*Server)

// WithMaxDepth limits the nesting depth accepted when parsing documents.
func WithMaxDepth(depth int) Option {
	return func(s *Server) {
		s.maxDepth = depth
	}
}

// Server holds the open documents of one client.
type Server struct {
	name     string
	version  string
	maxDepth int
	cache    *cache
}

// NewServer returns a Server with no open documents.
func NewServer(name, version string, opts ...Option) *Server {
	s := &Server{name: name, version: version, cache: newCache()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the server name reported to clients.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version reported to clients.
func (s *Server) Version() string {
	return s.version
}

func (s *Server) parse(item protocol.TextDocumentItem) *document {
	doc := &document{item: item}
	doc.ast, doc.err = parser.Parse(item.Text,
		parser.WithFilename(string(item.URI)),
		parser.WithMaxDepth(s.maxDepth))
	if doc.err != nil {
		log.Debug().Str("uri", string(item.URI)).Err(doc.err).Msg("parse failed")
	}
	return doc
}

// DidOpen parses and caches a newly opened document.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.cache.put(s.parse(params.TextDocument))
}

// DidChange replaces the text of a document. Only full document
// synchronization is supported, so the last change carries the new text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DidChange").Msg("failed to get document")
		return err
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	item := doc.item
	item.Text = params.ContentChanges[len(params.ContentChanges)-1].Text
	item.Version = params.TextDocument.Version
	return s.cache.put(s.parse(item))
}

// DidSave reparses a document, using the saved text when the client sends it.
func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DidSave").Msg("failed to get document")
		return err
	}
	item := doc.item
	if params.Text != nil {
		item.Text = *params.Text
	}
	return s.cache.put(s.parse(item))
}

// DidClose forgets a document.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.cache.remove(params.TextDocument.URI)
	return nil
}

// PublishDiagnostics returns the diagnostics notification for a document.
func (s *Server) PublishDiagnostics(ctx context.Context, uri protocol.DocumentURI) (*protocol.PublishDiagnosticsParams, error) {
	doc, err := s.cache.get(uri)
	if err != nil {
		log.Error().Err(err).Str("call", "PublishDiagnostics").Msg("failed to get document")
		return nil, err
	}
	return &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.item.Version,
		Diagnostics: Diagnostics(doc.err),
	}, nil
}

// DocumentSymbol returns the functions and variables declared in a document.
func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "DocumentSymbol").Msg("failed to get document")
		return nil, err
	}
	if doc.ast == nil {
		return []interface{}{}, nil
	}
	symbols := Symbols(doc.ast)
	result := make([]interface{}, 0, len(symbols))
	for _, sym := range symbols {
		result = append(result, sym)
	}
	return result, nil
}

// Hover describes the declaration of the name under the cursor.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "Hover").Msg("failed to get document")
		return nil, err
	}
	if doc.ast == nil {
		return nil, nil
	}
	word := wordAt(doc.item.Text, params.Position)
	if word == "" {
		return nil, nil
	}
	for _, decl := range declarations(doc.ast) {
		if decl.name == word {
			return &protocol.Hover{
				Contents: protocol.MarkupContent{
					Kind:  "markdown",
					Value: "```espresso\n" + decl.signature + "\n```",
				},
			}, nil
		}
	}
	return nil, nil
}

// wordAt returns the identifier that contains pos, if any.
func wordAt(text string, pos protocol.Position) string {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		return ""
	}
	isWord := func(c byte) bool {
		return c == '_' || c == '$' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
	}
	start, end := col, col
	for start > 0 && isWord(line[start-1]) {
		start--
	}
	for end < len(line) && isWord(line[end]) {
		end++
	}
	return line[start:end]
}
