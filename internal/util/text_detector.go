package util

import (
	"bytes"
	"net/http"
	"strings"
	"unicode/utf8"
)

// TextDetector is responsible for inspecting uploaded content before
// conversion
type TextDetector struct{}

// NewTextDetector creates a new text detector
func NewTextDetector() *TextDetector {
	return &TextDetector{}
}

// IsText reports whether content is a text document with valid UTF-8
// encoding. It combines UTF-8 validation with MIME sniffing of the
// first 512 bytes, which is enough for most file signatures.
func (d *TextDetector) IsText(content []byte) bool {
	if !utf8.Valid(content) {
		return false
	}

	head := content
	if len(head) > 512 {
		head = head[:512]
	}

	contentType := http.DetectContentType(head)

	// DetectContentType falls back to application/octet-stream for
	// content it cannot classify; valid UTF-8 that reached this point
	// is still text.
	return strings.HasPrefix(contentType, "text/") ||
		contentType == "application/octet-stream"
}

// IsMarkdown applies a simple heuristic to decide whether text content
// looks like a Markdown document
func (d *TextDetector) IsMarkdown(content []byte) bool {
	head := content
	if len(head) > 512 {
		head = head[:512]
	}

	return bytes.Contains(head, []byte("# ")) ||
		bytes.Contains(head, []byte("## ")) ||
		bytes.Contains(head, []byte("```")) ||
		bytes.Contains(head, []byte("- "))
}
