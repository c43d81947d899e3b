// Package normalizer re-serializes lenient JSON-like text into
// canonical JSON and reports structured diagnostics on failure.
package normalizer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// DefaultIndent is the indent width used when a request does not
// specify one.
const DefaultIndent = 4

// ParseError describes a JSON syntax failure with its 1-based
// position in the substituted input.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// Format validates and re-serializes JSON text.
//
// Every single-quote character is first replaced with a double quote.
// This is a blind textual substitution, not quote-aware escaping: it
// also corrupts apostrophes inside already-valid strings. The quirk is
// part of the contract and must not be fixed here.
//
// The substituted text is then decoded and re-encoded at the syntax
// level, which keeps object member order and number spellings intact
// and never introduces escaping of non-ASCII characters. On malformed
// input the returned error is a *ParseError carrying the failure
// position; any other failure (such as a negative indent) yields a
// plain error.
func Format(text string, indent int) (string, error) {
	substituted := strings.ReplaceAll(text, "'", `"`)

	if indent < 0 {
		return "", fmt.Errorf("indent must be a non-negative integer, got %d", indent)
	}

	dec := jsontext.NewDecoder(
		strings.NewReader(substituted),
		jsontext.AllowDuplicateNames(true),
	)

	value, err := dec.ReadValue()
	if err != nil {
		return "", parseError(substituted, err)
	}

	// Anything after the top-level value is a failure, not ignored input.
	offset := dec.InputOffset()
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return "", parseError(substituted, err)
		}
		line, col := position(substituted, skipSpace(substituted, offset))
		return "", &ParseError{Message: "extra data after top-level value", Line: line, Column: col}
	}

	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf,
		jsontext.AllowDuplicateNames(true),
		jsontext.Multiline(true),
		jsontext.WithIndent(strings.Repeat(" ", indent)),
	)
	if err := enc.WriteValue(value); err != nil {
		return "", fmt.Errorf("failed to reserialize value: %w", err)
	}

	// The encoder terminates top-level values with a newline.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// parseError converts a decoder error into a *ParseError positioned
// in the substituted input.
func parseError(input string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		line, col := position(input, int64(len(input)))
		return &ParseError{Message: "unexpected end of JSON input", Line: line, Column: col}
	}

	var serr *jsontext.SyntacticError
	if errors.As(err, &serr) {
		msg := serr.Error()
		if serr.Err != nil {
			msg = serr.Err.Error()
		}
		line, col := position(input, serr.ByteOffset)
		return &ParseError{Message: msg, Line: line, Column: col}
	}

	return err
}

// position converts a byte offset into a 1-based line and column.
func position(input string, offset int64) (line, col int) {
	if offset > int64(len(input)) {
		offset = int64(len(input))
	}
	if offset < 0 {
		offset = 0
	}

	prefix := input[:offset]
	line = 1 + strings.Count(prefix, "\n")
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = len(prefix) - i
	} else {
		col = len(prefix) + 1
	}
	return line, col
}

// skipSpace advances offset past JSON whitespace so that trailing-data
// diagnostics point at the extra token rather than the gap before it.
func skipSpace(input string, offset int64) int64 {
	for offset < int64(len(input)) {
		switch input[offset] {
		case ' ', '\t', '\r', '\n':
			offset++
		default:
			return offset
		}
	}
	return offset
}
