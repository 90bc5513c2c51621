package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/espresso-lang/espresso/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTokensText(t *testing.T) {
	var out bytes.Buffer
	err := printTokens(&out, source{code: "x = 1 // one"}, tokenizer.Config{}, "text")
	require.NoError(t, err)
	assert.Equal(t,
		"Identifier   \"x\"\n"+
			"Punctuator   \"=\"\n"+
			"Numeric      \"1\"\n",
		out.String())
}

func TestPrintTokensRangeAndLoc(t *testing.T) {
	var out bytes.Buffer
	config := tokenizer.Config{Comment: true, Range: true, Loc: true}
	err := printTokens(&out, source{code: "ab\n// c"}, config, "text")
	require.NoError(t, err)
	assert.Equal(t,
		"Identifier   \"ab\" [0, 2) 1:0-1:2\n"+
			"LineComment  \"// c\" [3, 7) 2:0-2:4\n",
		out.String())
}

func TestPrintTokensJSON(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	err := printTokens(&out, source{code: "f()"}, tokenizer.Config{}, "json")
	require.NoError(t, err)

	var entries []tokenizer.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Equal(t, []tokenizer.Entry{
		{Type: "Identifier", Value: "f"},
		{Type: "GroupOpen", Value: "("},
		{Type: "GroupClose", Value: ")"},
	}, entries)
}

func TestPrintTokensEmptyJSON(t *testing.T) {
	disableColor(t)

	var out bytes.Buffer
	require.NoError(t, printTokens(&out, source{code: "  "}, tokenizer.Config{}, "json"))
	assert.Equal(t, "[]\n", out.String())
}

func TestPrintTokensError(t *testing.T) {
	var out bytes.Buffer
	err := printTokens(&out, source{code: "a\n  #", filename: "bad.esp"}, tokenizer.Config{}, "text")
	require.Error(t, err)
	var tokErr *tokenizer.Error
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, "bad.esp", tokErr.Location.Filename)
	assert.Equal(t, 2, tokErr.Location.Line)
	assert.Empty(t, out.String())
}
