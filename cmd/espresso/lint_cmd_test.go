package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintOK(t *testing.T) {
	var out bytes.Buffer
	ok, err := lint(&out, source{code: "var x = 1; x + 1", filename: "good.esp"}, "text")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "good.esp: ok\n", out.String())
}

func TestLintText(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	ok, err := lint(&out, source{code: "f(1, 2", filename: "bad.esp"}, "text")
	require.NoError(t, err)
	assert.False(t, ok)

	text := out.String()
	assert.Contains(t, text, "syntax error[E1003]: expected GroupClose{)}, got EOF{}")
	assert.Contains(t, text, "--> bad.esp:1:7")
	assert.Contains(t, text, `add the missing ")"`)
	assert.Contains(t, text, `= note: "(" opened at line 1, column 2`)
}

func TestLintLSP(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	ok, err := lint(&out, source{code: "var x = 1\n1 = x", filename: "bad.esp"}, "lsp")
	require.NoError(t, err)
	assert.False(t, ok)

	var params protocol.PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(out.Bytes(), &params))
	assert.Equal(t, protocol.DocumentURI("bad.esp"), params.URI)
	require.Len(t, params.Diagnostics, 1)

	diag := params.Diagnostics[0]
	assert.Equal(t, "E1004", diag.Code)
	assert.Equal(t, "espresso", diag.Source)
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, diag.Range.Start)
	assert.Contains(t, diag.Message, "invalid assignment target")
}

func TestLintLSPClean(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	ok, err := lint(&out, source{code: "x", filename: "good.esp"}, "lsp")
	require.NoError(t, err)
	assert.True(t, ok)
	var params protocol.PublishDiagnosticsParams
	require.NoError(t, json.Unmarshal(out.Bytes(), &params))
	assert.Equal(t, protocol.DocumentURI("good.esp"), params.URI)
	assert.NotNil(t, params.Diagnostics)
	assert.Empty(t, params.Diagnostics)
}

func TestLintUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	_, err := lint(&out, source{code: "x"}, "xml")
	require.Error(t, err)
	assert.Equal(t, "unknown output format: xml", err.Error())
}
