package tokenizer

import (
	"encoding/json"
	"testing"

	"github.com/espresso-lang/espresso/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	entries, err := Tokenize(`var x = 0x1f; if (x) "s" else nil // done`, Config{})
	require.NoError(t, err)

	expected := []Entry{
		{Type: "Keyword", Value: "var"},
		{Type: "Identifier", Value: "x"},
		{Type: "Punctuator", Value: "="},
		{Type: "Numeric", Value: "0x1f"},
		{Type: "Punctuator", Value: ";"},
		{Type: "Keyword", Value: "if"},
		{Type: "GroupOpen", Value: "("},
		{Type: "Identifier", Value: "x"},
		{Type: "GroupClose", Value: ")"},
		{Type: "String", Value: `"s"`},
		{Type: "Keyword", Value: "else"},
		{Type: "Nil", Value: "nil"},
	}
	assert.Equal(t, expected, entries)
}

func TestTokenizeWordTypes(t *testing.T) {
	entries, err := Tokenize("true and not false or this", Config{})
	require.NoError(t, err)
	var types []string
	for _, e := range entries {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{"Boolean", "Punctuator", "Punctuator", "Boolean", "Punctuator", "Keyword"}, types)
}

func TestTokenizeComments(t *testing.T) {
	input := "a // line\n/* block */ b"

	entries, err := Tokenize(input, Config{Comment: true})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Type: "Identifier", Value: "a"},
		{Type: "LineComment", Value: "// line"},
		{Type: "BlockComment", Value: "/* block */"},
		{Type: "Identifier", Value: "b"},
	}, entries)

	entries, err = Tokenize(input, Config{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTokenizeRangeAndLoc(t *testing.T) {
	entries, err := Tokenize("ab\n  'c'", Config{Range: true, Loc: true})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, &[2]int{0, 2}, entries[0].Range)
	assert.Equal(t, &SourceLocation{
		Start: Location{Line: 1, Column: 0},
		End:   Location{Line: 1, Column: 2},
	}, entries[0].Loc)

	assert.Equal(t, "'c'", entries[1].Value)
	assert.Equal(t, &[2]int{5, 8}, entries[1].Range)
	assert.Equal(t, &SourceLocation{
		Start: Location{Line: 2, Column: 2},
		End:   Location{Line: 2, Column: 5},
	}, entries[1].Loc)
}

func TestNextReturnsNilAtEnd(t *testing.T) {
	tk := New("x", Config{})
	e, err := tk.Next()
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "x", e.Value)

	for i := 0; i < 3; i++ {
		e, err = tk.Next()
		require.NoError(t, err)
		assert.Nil(t, e)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	entries, err := Tokenize("  \n\t", Config{Comment: true})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTokenizeError(t *testing.T) {
	tk := New("a\n  #", Config{})
	tk.SetFilename("bad.esp")
	_, err := tk.Next()
	require.NoError(t, err)

	_, err = tk.Next()
	require.Error(t, err)
	terr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "unexpected character '#' at bad.esp:2:3", terr.Error())
	assert.Equal(t, 4, terr.Offset)
	assert.False(t, terr.Incomplete)

	formatted := terr.ToFormatted()
	assert.Equal(t, errors.E1007, formatted.Code)
	assert.Equal(t, "  #", formatted.SourceLines[0].Text)

	// The tokenizer stops after an error.
	e, err := tk.Next()
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestTokenizeIncomplete(t *testing.T) {
	_, err := Tokenize(`x = "open`, Config{})
	require.Error(t, err)
	terr, ok := err.(*Error)
	require.True(t, ok)
	assert.True(t, terr.Incomplete)
	assert.Equal(t, 4, terr.Offset)
}

func TestEntryJSON(t *testing.T) {
	entries, err := Tokenize("x", Config{})
	require.NoError(t, err)
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"Identifier","value":"x"}]`, string(data))

	entries, err = Tokenize("x", Config{Range: true, Loc: true})
	require.NoError(t, err)
	data, err = json.Marshal(entries[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Identifier","value":"x","range":[0,1],
		"loc":{"start":{"line":1,"column":0},"end":{"line":1,"column":1}}}`, string(data))
}
