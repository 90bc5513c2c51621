package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/espresso-lang/espresso/parser"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestPrintASTDump(t *testing.T) {
	var out bytes.Buffer
	err := printAST(&out, source{code: "var x = 1 + 2;\nf(x)", filename: "test.esp"}, "dump")
	require.NoError(t, err)
	assert.Equal(t,
		"VariableDeclaration([VariableBinding(Identifier(x), BinaryExpression(+, Literal(1), Literal(2)))], var)\n"+
			"CallExpression((, Identifier(f), [Identifier(x)])\n",
		out.String())
}

func TestPrintASTString(t *testing.T) {
	var out bytes.Buffer
	err := printAST(&out, source{code: "var x=1+2\nx = x*2"}, "string")
	require.NoError(t, err)
	assert.Equal(t, "var x = (1 + 2);\nx = (x * 2);\n", out.String())
}

func TestPrintASTJSON(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	err := printAST(&out, source{code: "a.b(1)"}, "json")
	require.NoError(t, err)

	var root ASTNode
	require.NoError(t, json.Unmarshal(out.Bytes(), &root))
	assert.Equal(t, "Group", root.Type)
	require.Len(t, root.Children, 1)

	call := root.Children[0]
	assert.Equal(t, "MethodCallExpression", call.Type)
	assert.Equal(t, "(", call.Value)
	require.Len(t, call.Children, 3)
	assert.Equal(t, "Identifier", call.Children[0].Type)
	assert.Equal(t, "a", call.Children[0].Value)
	assert.Equal(t, "Literal", call.Children[1].Type)
	assert.Equal(t, "b", call.Children[1].Value)
	assert.Equal(t, 1, call.Children[1].Line)
	assert.Equal(t, 3, call.Children[1].Column)
	assert.Equal(t, float64(1), call.Children[2].Value)
}

func TestPrintASTUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := printAST(&out, source{code: "1"}, "yaml")
	require.Error(t, err)
	assert.Equal(t, "unknown output format: yaml", err.Error())
}

func TestPrintASTSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := printAST(&out, source{code: "f(1, 2", filename: "bad.esp"}, "dump")
	require.Error(t, err)
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.True(t, syntaxErr.Incomplete())
	assert.Empty(t, out.String())
}

func TestNodeToJSONSkipsHoles(t *testing.T) {
	script, err := parser.Parse("(a;;b)")
	require.NoError(t, err)
	root := nodeToJSON(script)
	require.Len(t, root.Children, 1)
	group := root.Children[0]
	assert.Equal(t, "Group", group.Type)
	require.Len(t, group.Children, 2)
	assert.Equal(t, "a", group.Children[0].Value)
	assert.Equal(t, "b", group.Children[1].Value)
}
