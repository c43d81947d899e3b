package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsText(t *testing.T) {
	detector := NewTextDetector()

	assert.True(t, detector.IsText([]byte("# A markdown file\n\nwith text")))
	assert.True(t, detector.IsText([]byte("héllo wörld")))
	assert.False(t, detector.IsText([]byte{0xff, 0xfe, 0x00, 0x01}))
	assert.False(t, detector.IsText([]byte{'h', 'i', 0xc3, 0x28})) // broken UTF-8 sequence
}

func TestIsMarkdown(t *testing.T) {
	detector := NewTextDetector()

	assert.True(t, detector.IsMarkdown([]byte("# Heading")))
	assert.True(t, detector.IsMarkdown([]byte("- a list item")))
	assert.True(t, detector.IsMarkdown([]byte("```\ncode\n```")))
	assert.False(t, detector.IsMarkdown([]byte("just a plain sentence.")))
}
