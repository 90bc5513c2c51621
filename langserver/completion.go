package langserver

import (
	"context"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog/log"
)

// Espresso keywords and word literals for completion
var espressoKeywords = []string{
	"and", "else", "fail", "false", "if", "let", "new", "nil", "not",
	"or", "return", "this", "true", "var", "while",
}

// Completion offers keywords plus the variables and functions declared in
// the document. Declarations are only known while the document parses.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		log.Error().Err(err).Str("call", "Completion").Msg("failed to get document")
		return &protocol.CompletionList{IsIncomplete: false, Items: nil}, nil
	}

	var items []protocol.CompletionItem
	for _, keyword := range espressoKeywords {
		items = append(items, protocol.CompletionItem{
			Label:  keyword,
			Kind:   14, // Keyword
			Detail: "Espresso keyword",
		})
	}

	if doc.ast != nil && doc.err == nil {
		seen := map[string]bool{}
		for _, decl := range declarations(doc.ast) {
			if seen[decl.name] {
				continue
			}
			seen[decl.name] = true
			if decl.function {
				items = append(items, protocol.CompletionItem{
					Label:      decl.name,
					Kind:       3, // Function
					Detail:     decl.signature,
					InsertText: decl.name + "()",
				})
			} else {
				items = append(items, protocol.CompletionItem{
					Label:  decl.name,
					Kind:   6, // Variable
					Detail: "Variable",
				})
			}
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
