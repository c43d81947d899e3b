package util

import (
	"text-processor/internal/model"
)

// CreateTestDocument creates a test document with the given name,
// title and markdown content
func CreateTestDocument(name, title, content string) *model.Document {
	return &model.Document{
		ID:      "test-doc",
		Name:    name,
		Title:   title,
		Content: []byte(content),
		Size:    int64(len(content)),
	}
}
