package converter

import (
	"text-processor/internal/model"
)

// HTMLRenderer implements the Renderer interface for HTML output
type HTMLRenderer struct{}

// NewHTMLRenderer creates a new HTML renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the wrapped page as UTF-8 bytes
func (r *HTMLRenderer) Render(page string) ([]byte, error) {
	return []byte(page), nil
}

// CanRender checks if this renderer produces the given format
func (r *HTMLRenderer) CanRender(format model.OutputFormat) bool {
	return format == model.FormatHTML
}
