package normalizer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	input := `{"name":"John","age":30,"tags":["a","b"],"nested":{"x":null,"y":true}}`

	formatted, err := Format(input, 4)
	require.NoError(t, err)

	var want, got interface{}
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal([]byte(formatted), &got))
	assert.Equal(t, want, got)
}

func TestFormatPreservesKeyOrder(t *testing.T) {
	formatted, err := Format(`{"zebra":1,"apple":2}`, 2)
	require.NoError(t, err)

	assert.Less(t, strings.Index(formatted, "zebra"), strings.Index(formatted, "apple"))
}

func TestFormatSingleQuoteSubstitution(t *testing.T) {
	formatted, err := Format(`{'a': 1}`, 4)
	require.NoError(t, err)
	assert.Contains(t, formatted, `"a": 1`)
}

func TestFormatApostropheCorruption(t *testing.T) {
	// The blind substitution turns the apostrophe into a closing quote,
	// so otherwise valid input fails. This behavior is contractual.
	_, err := Format(`{"a": "it's fine"}`, 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestFormatIndentWidth(t *testing.T) {
	formatted, err := Format(`{"a":{"b":1}}`, 2)
	require.NoError(t, err)

	lines := strings.Split(formatted, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `{`, lines[0])
	assert.Equal(t, `  "a": {`, lines[1])
	assert.Equal(t, `    "b": 1`, lines[2])
	assert.Equal(t, `  }`, lines[3])
	assert.Equal(t, `}`, lines[4])
}

func TestFormatZeroIndent(t *testing.T) {
	formatted, err := Format(`{"a":1}`, 0)
	require.NoError(t, err)

	// Zero indent still breaks lines, it just doesn't indent them.
	assert.Equal(t, "{\n\"a\": 1\n}", formatted)
}

func TestFormatNegativeIndent(t *testing.T) {
	_, err := Format(`{"a":1}`, -2)
	require.Error(t, err)

	var perr *ParseError
	assert.False(t, strings.Contains(err.Error(), "panic"))
	assert.NotErrorAs(t, err, &perr)
}

func TestFormatInvalidInput(t *testing.T) {
	_, err := Format(`{invalid`, 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.NotEmpty(t, perr.Message)
	assert.Equal(t, 1, perr.Line)
	assert.Greater(t, perr.Column, 1)
}

func TestFormatErrorLinePosition(t *testing.T) {
	_, err := Format("{\n  \"a\": 1,\n  oops\n}", 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 3, perr.Column)
}

func TestFormatEmptyInput(t *testing.T) {
	_, err := Format("", 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 1, perr.Column)
}

func TestFormatWhitespaceOnlyInput(t *testing.T) {
	_, err := Format("   \n  ", 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestFormatTrailingData(t *testing.T) {
	_, err := Format(`{"a":1} {"b":2}`, 4)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 9, perr.Column)
}

func TestFormatDuplicateKeys(t *testing.T) {
	formatted, err := Format(`{"a":1,"a":2}`, 0)
	require.NoError(t, err)

	// Both members survive; this reformats syntax, it doesn't dedupe.
	assert.Equal(t, 2, strings.Count(formatted, `"a"`))
}

func TestFormatNonASCIIPassthrough(t *testing.T) {
	formatted, err := Format(`{"greeting":"héllo wörld ☺"}`, 4)
	require.NoError(t, err)
	assert.Contains(t, formatted, "héllo wörld ☺")
}

func TestFormatScalarValue(t *testing.T) {
	formatted, err := Format(`42`, 4)
	require.NoError(t, err)
	assert.Equal(t, "42", formatted)
}
