// Package model contains data structures shared by the text services
package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutputFormat represents supported conversion output formats
type OutputFormat string

// Supported output formats
const (
	FormatHTML OutputFormat = "html"
	FormatPDF  OutputFormat = "pdf"
)

// Valid reports whether the format is one the converter can produce.
func (f OutputFormat) Valid() bool {
	return f == FormatHTML || f == FormatPDF
}

// Extension returns the file extension for the format, including the dot.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// MediaType returns the MIME type for the format.
func (f OutputFormat) MediaType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/html; charset=utf-8"
}

// DefaultTitle is used when neither the request nor an uploaded
// filename provides one.
const DefaultTitle = "Document"

// Document represents a markdown document to be converted
type Document struct {
	// ID is a unique identifier for the document
	ID string

	// Name is the original filename, empty for pasted content
	Name string

	// Title is the document title used in the rendered output
	Title string

	// Content is the raw markdown text
	Content []byte

	// Size is the content size in bytes
	Size int64

	// CreatedAt is the time when the document was received
	CreatedAt time.Time
}

// NewDocument creates a Document from pasted or uploaded content.
// When title is empty it falls back to the filename without its
// extension, then to DefaultTitle.
func NewDocument(name, title string, content []byte) *Document {
	if title == "" {
		title = titleFromName(name)
	}

	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Title:     title,
		Content:   content,
		Size:      int64(len(content)),
		CreatedAt: time.Now(),
	}
}

// titleFromName derives a title from a filename by stripping the
// directory and extension.
func titleFromName(name string) string {
	if name == "" {
		return DefaultTitle
	}

	_, base := filepath.Split(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return DefaultTitle
	}
	return base
}

// Filename returns the suggested download filename for the given
// format, with spaces in the title replaced by underscores.
func (d *Document) Filename(format OutputFormat) string {
	return strings.ReplaceAll(d.Title, " ", "_") + format.Extension()
}
