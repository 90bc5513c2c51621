package langserver

import (
	"strings"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/internal/token"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// declaration is a name introduced by "var", "let" or a parameter list.
type declaration struct {
	name      string
	signature string
	function  bool
	pos       token.Position
}

// declarations lists every declared name in source order, including those
// in nested function bodies.
func declarations(root ast.Node) []declaration {
	var decls []declaration
	ast.Inspect(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionExpression:
			if n.Name != nil {
				decls = append(decls, declaration{
					name:      n.Name.Name,
					signature: signature(n),
					function:  true,
					pos:       n.Name.Pos(),
				})
			}
		case *ast.FunctionParameter:
			decls = append(decls, declaration{
				name:      n.Name.Name,
				signature: "param " + n.String(),
				pos:       n.Name.Pos(),
			})
		case *ast.VariableBinding:
			decls = append(decls, declaration{
				name:      n.Name.Name,
				signature: "var " + n.Name.Name,
				pos:       n.Name.Pos(),
			})
		}
		return true
	})
	return decls
}

// signature renders the head of a function, e.g. "let add(a, b = 1)".
func signature(fn *ast.FunctionExpression) string {
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, p.String())
	}
	name := ""
	if fn.Name != nil {
		name = " " + fn.Name.Name
	}
	return "let" + name + "(" + strings.Join(params, ", ") + ")"
}

// Symbols returns the document outline: named functions, with the symbols
// of their bodies as children, and variables. Functions without a name add
// their body's symbols to the enclosing level.
func Symbols(root ast.Node) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	ast.Inspect(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionExpression:
			if n.Name == nil {
				return true
			}
			symbols = append(symbols, protocol.DocumentSymbol{
				Name:           n.Name.Name,
				Detail:         signature(n),
				Kind:           12, // Function
				Range:          nameRange(n.Let, n.Name),
				SelectionRange: nameRange(n.Name.Pos(), n.Name),
				Children:       Symbols(n.Body),
			})
			return false
		case *ast.VariableBinding:
			symbols = append(symbols, protocol.DocumentSymbol{
				Name:           n.Name.Name,
				Detail:         "var",
				Kind:           13, // Variable
				Range:          nameRange(n.Name.Pos(), n.Name),
				SelectionRange: nameRange(n.Name.Pos(), n.Name),
			})
		}
		return true
	})
	return symbols
}

// nameRange spans from start to the end of name.
func nameRange(start token.Position, name *ast.Identifier) protocol.Range {
	end := name.Pos()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line), Character: uint32(start.Column)},
		End:   protocol.Position{Line: uint32(end.Line), Character: uint32(end.Column + len(name.Name))},
	}
}
