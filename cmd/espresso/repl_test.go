package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplSessionDump(t *testing.T) {
	s := newReplSession()
	out, quit := s.input("1 + 2; x")
	assert.False(t, quit)
	assert.Equal(t, "BinaryExpression(+, Literal(1), Literal(2))\nIdentifier(x)\n", out)
}

func TestReplSessionContinuation(t *testing.T) {
	s := newReplSession()
	assert.Equal(t, promptMain, s.prompt())

	out, quit := s.input("let f(a) {")
	assert.False(t, quit)
	assert.Empty(t, out)
	assert.Equal(t, promptCont, s.prompt())

	out, _ = s.input("  a")
	assert.Empty(t, out)

	out, _ = s.input("}")
	assert.Equal(t, "FunctionExpression(Identifier(f), [FunctionParameter(Identifier(a), nil)], Identifier(a))\n", out)
	assert.Equal(t, promptMain, s.prompt())
}

func TestReplSessionError(t *testing.T) {
	disableColor(t)

	s := newReplSession()
	out, quit := s.input("1 = 2")
	assert.False(t, quit)
	assert.Contains(t, out, "E1004")
	assert.Contains(t, out, "<repl>:1:1")
	assert.Equal(t, promptMain, s.prompt())
}

func TestReplSessionCommands(t *testing.T) {
	s := newReplSession()

	out, _ := s.input(":help")
	assert.Equal(t, replHelp, out)

	out, _ = s.input(":string")
	assert.Equal(t, "output mode: string\n", out)
	out, _ = s.input("var x=1+2")
	assert.Equal(t, "var x = (1 + 2);\n", out)

	out, _ = s.input(":dump")
	assert.Equal(t, "output mode: dump\n", out)

	out, quit := s.input("")
	assert.Empty(t, out)
	assert.False(t, quit)

	_, quit = s.input(":quit")
	assert.True(t, quit)
}

func TestReplSessionReset(t *testing.T) {
	s := newReplSession()
	s.input("[1,")
	assert.Equal(t, promptCont, s.prompt())
	s.reset()
	assert.Equal(t, promptMain, s.prompt())
	out, _ := s.input("2")
	assert.Equal(t, "Literal(2)\n", out)
}

func TestRunPlainRepl(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("a.b\n[1,\n2]\n:quit\nignored\n")
	require.NoError(t, runRepl(in, &out))
	assert.Equal(t,
		"AccessExpression(Identifier(a), Literal(\"b\"))\n"+
			"ArrayLiteral([Literal(1), Literal(2)])\n",
		out.String())
}

func TestRunPlainReplUnfinished(t *testing.T) {
	var out bytes.Buffer
	err := runRepl(strings.NewReader("f(1,\n"), &out)
	require.Error(t, err)
	assert.Equal(t, "unexpected end of input", err.Error())
}

func TestReplSessionMaxDepth(t *testing.T) {
	disableColor(t)
	viper.Set("max-depth", 3)
	t.Cleanup(func() { viper.Set("max-depth", 0) })

	s := newReplSession()
	out, quit := s.input("f(g(h(x)))")
	assert.False(t, quit)
	assert.Contains(t, out, "E1006")
	assert.Contains(t, out, "maximum nesting depth exceeded")
	assert.Equal(t, promptMain, s.prompt())
}
