package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/espresso-lang/espresso/internal/token"
)

// Literal is an expression node that holds a constant. Value is one of nil,
// bool, int64 or string.
type Literal struct {
	ValuePos token.Position // position of the literal
	Value    interface{}    // the constant value
}

func (x *Literal) exprNode() {}

func (x *Literal) Pos() token.Position { return x.ValuePos }

func (x *Literal) String() string {
	switch v := x.Value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Quote returns s as a double quoted Espresso string literal.
func Quote(s string) string {
	var out strings.Builder
	out.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			out.WriteByte('\\')
			out.WriteByte(c)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&out, `\x%02x`, c)
			} else {
				out.WriteByte(c)
			}
		}
	}
	out.WriteByte('"')
	return out.String()
}

// Identifier is an expression node that refers to a variable by name.
type Identifier struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Identifier) exprNode() {}

func (x *Identifier) Pos() token.Position { return x.NamePos }

func (x *Identifier) String() string { return x.Name }

// ThisExpression is the "this" keyword.
type ThisExpression struct {
	This token.Position // position of "this" keyword
}

func (x *ThisExpression) exprNode() {}

func (x *ThisExpression) Pos() token.Position { return x.This }

func (x *ThisExpression) String() string { return "this" }

// ArrayLiteral is an expression node that describes an array literal.
type ArrayLiteral struct {
	Lbrack token.Position // position of "["
	Items  []Expr         // array items
}

func (x *ArrayLiteral) exprNode() {}

func (x *ArrayLiteral) Pos() token.Position { return x.Lbrack }

func (x *ArrayLiteral) String() string {
	items := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		items = append(items, operand(item))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ObjectEntry is a single key/value pair within an ObjectLiteral. The
// shorthand entry {name} is stored as Literal("name"): Identifier(name).
type ObjectEntry struct {
	Key   Expr // key expression; Literal for identifier keys
	Value Expr // value expression
}

func (x *ObjectEntry) Pos() token.Position { return x.Key.Pos() }

func (x *ObjectEntry) String() string {
	key := propertyKey(x.Key)
	if k, ok := x.Key.(*Literal); ok {
		if v, ok := x.Value.(*Identifier); ok && k.Value == v.Name && token.IsIdentifier(v.Name) {
			return v.Name
		}
	}
	return key + ": " + operand(x.Value)
}

// propertyKey renders a key so that an identifier-like string literal stays
// bare while computed keys are parenthesized.
func propertyKey(key Expr) string {
	lit, ok := key.(*Literal)
	if !ok {
		return "(" + key.String() + ")"
	}
	if s, ok := lit.Value.(string); ok && token.IsIdentifier(s) {
		return s
	}
	return lit.String()
}

// ObjectLiteral is an expression node that describes an object literal.
type ObjectLiteral struct {
	Lbrace  token.Position // position of "{"
	Entries []*ObjectEntry // entries in source order
}

func (x *ObjectLiteral) exprNode() {}

func (x *ObjectLiteral) Pos() token.Position { return x.Lbrace }

func (x *ObjectLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, entry := range x.Entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.String())
	}
	out.WriteString("}")
	return out.String()
}
