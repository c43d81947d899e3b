// Package converter transforms markdown documents into HTML or PDF
// output streams.
package converter

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"text-processor/internal/model"
)

// Renderer produces final output bytes from a wrapped HTML page.
// Implementations delegate layout entirely to their backing engine.
type Renderer interface {
	// Render converts the full HTML page into output bytes
	Render(page string) ([]byte, error)

	// CanRender checks if this renderer produces the given format
	CanRender(format model.OutputFormat) bool
}

// RenderResult carries converted bytes plus the response metadata
// needed to stream them back.
type RenderResult struct {
	Data      []byte
	MediaType string
	Filename  string
}

// Manager selects the appropriate renderer for a requested format
// This is the "context" in the strategy pattern
type Manager struct {
	md        *Markdown
	renderers []Renderer
}

// NewManager creates a new manager with the given renderers
func NewManager(renderers ...Renderer) *Manager {
	return &Manager{
		md:        NewMarkdown(),
		renderers: renderers,
	}
}

// RegisterRenderer adds a new renderer to the manager
func (m *Manager) RegisterRenderer(renderer Renderer) {
	m.renderers = append(m.renderers, renderer)
}

// Convert renders the document's markdown to an HTML fragment, wraps
// it in the document template stamped with the conversion time, and
// produces output in the requested format.
func (m *Manager) Convert(doc *model.Document, format model.OutputFormat) (*RenderResult, error) {
	fragment, err := m.md.ToHTML(doc.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render markdown")
	}

	page := WrapPage(doc.Title, fragment, time.Now())

	for _, renderer := range m.renderers {
		if renderer.CanRender(format) {
			data, err := renderer.Render(page)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to render %s output", format)
			}

			return &RenderResult{
				Data:      data,
				MediaType: format.MediaType(),
				Filename:  doc.Filename(format),
			}, nil
		}
	}

	return nil, fmt.Errorf("no renderer found for format: %s", format)
}

// CreateDefaultManager creates a manager with the default set of renderers
func CreateDefaultManager() *Manager {
	manager := NewManager()

	manager.RegisterRenderer(NewHTMLRenderer())
	manager.RegisterRenderer(NewPDFRenderer())

	return manager
}
