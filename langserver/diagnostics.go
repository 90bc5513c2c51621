package langserver

import (
	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/token"
	"github.com/espresso-lang/espresso/parser"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
)

// Diagnostics converts a parse error into LSP diagnostics. A nil error gives
// an empty list.
func Diagnostics(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}
	diag := protocol.Diagnostic{
		Severity: 1, // Error
		Source:   "espresso",
		Message:  err.Error(),
	}
	if perr, ok := err.(parser.ParserError); ok {
		diag.Range = tokenRange(perr.StartPosition(), perr.EndPosition())
		diag.Code = perr.Code().String()
		diag.Message = perr.ToFormatted().Message
	} else if ferr, ok := err.(errors.FormattableError); ok {
		formatted := ferr.ToFormatted()
		pos := protocol.Position{Line: uint32(formatted.Line - 1), Character: uint32(formatted.Column - 1)}
		diag.Range = protocol.Range{Start: pos, End: pos}
		diag.Code = formatted.Code.String()
		diag.Message = formatted.Message
	}
	return []protocol.Diagnostic{diag}
}

// tokenRange converts token positions, whose end is the last character of
// the token, into a half open LSP range.
func tokenRange(start, end token.Position) protocol.Range {
	r := protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line), Character: uint32(start.Column)},
		End:   protocol.Position{Line: uint32(end.Line), Character: uint32(end.Column + 1)},
	}
	if end.Char < start.Char {
		r.End = r.Start
	}
	return r
}
