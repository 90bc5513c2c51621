package langserver

import (
	"fmt"
	"sync"

	"github.com/espresso-lang/espresso/ast"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// document is an open text document and the result of its last parse.
type document struct {
	item protocol.TextDocumentItem
	ast  *ast.Group
	err  error
}

type cache struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

func newCache() *cache {
	return &cache{docs: map[protocol.DocumentURI]*document{}}
}

func (c *cache) put(doc *document) error {
	if doc == nil || doc.item.URI == "" {
		return fmt.Errorf("document has no uri")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[doc.item.URI] = doc
	return nil
}

func (c *cache) get(uri protocol.DocumentURI) (*document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return doc, nil
}

func (c *cache) remove(uri protocol.DocumentURI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, uri)
}
