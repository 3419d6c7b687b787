package uikit

import (
	"fmt"
	"html/template"
	"strings"
)

// TemplateFuncs returns a template.FuncMap with pure helper functions used
// by the storefront and back-office templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"truncate": func(s string, length int) string {
			if len(s) <= length {
				return s
			}
			return s[:length] + "..."
		},
		"price": func(v float64) string {
			return fmt.Sprintf("฿%.2f", v)
		},
		"stars": func(rating float64) string {
			full := int(rating + 0.5)
			if full < 0 {
				full = 0
			}
			if full > 5 {
				full = 5
			}
			return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}
