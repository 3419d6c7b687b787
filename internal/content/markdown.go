// Package content renders embedded markdown pages and sanitizes
// catalog-supplied rich text before it reaches templates.
package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ugcPolicy allows basic formatting in book descriptions coming from the
// catalog API while stripping scripts and event handlers.
var ugcPolicy = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown source to sanitized HTML for direct
// template embedding.
func RenderMarkdown(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(ugcPolicy.SanitizeBytes(buf.Bytes())), nil
}

// SanitizeDescription cleans a book description fetched from the catalog
// API. The API is external; its text is treated as untrusted input.
func SanitizeDescription(s string) template.HTML {
	return template.HTML(ugcPolicy.Sanitize(s))
}
