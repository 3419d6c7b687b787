package uikit

import (
	"html/template"
	"testing"
)

func TestTemplateFuncs(t *testing.T) {
	funcs := TemplateFuncs()

	t.Run("title", func(t *testing.T) {
		fn := funcs["title"].(func(string) string)
		tests := []struct{ in, want string }{
			{"fiction", "Fiction"},
			{"non-fiction", "Non-fiction"},
			{"", ""},
		}
		for _, tt := range tests {
			if got := fn(tt.in); got != tt.want {
				t.Errorf("title(%q) = %q; want %q", tt.in, got, tt.want)
			}
		}
	})

	t.Run("truncate", func(t *testing.T) {
		fn := funcs["truncate"].(func(string, int) string)
		if got := fn("a long book title", 6); got != "a long..." {
			t.Errorf("truncate = %q; want %q", got, "a long...")
		}
		if got := fn("short", 10); got != "short" {
			t.Errorf("truncate of short string = %q; want unchanged", got)
		}
	})

	t.Run("price", func(t *testing.T) {
		fn := funcs["price"].(func(float64) string)
		if got := fn(19.5); got != "฿19.50" {
			t.Errorf("price(19.5) = %q; want ฿19.50", got)
		}
	})

	t.Run("stars", func(t *testing.T) {
		fn := funcs["stars"].(func(float64) string)
		tests := []struct {
			rating float64
			want   string
		}{
			{0, "☆☆☆☆☆"},
			{3, "★★★☆☆"},
			{4.6, "★★★★★"},
			{4.4, "★★★★☆"},
			{5, "★★★★★"},
			{7, "★★★★★"},
		}
		for _, tt := range tests {
			if got := fn(tt.rating); got != tt.want {
				t.Errorf("stars(%v) = %q; want %q", tt.rating, got, tt.want)
			}
		}
	})

	t.Run("safe", func(t *testing.T) {
		fn := funcs["safe"].(func(string) template.HTML)
		if got := fn("<b>hi</b>"); got != template.HTML("<b>hi</b>") {
			t.Errorf("safe = %q", got)
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		add := funcs["add"].(func(int, int) int)
		sub := funcs["sub"].(func(int, int) int)
		if add(2, 3) != 5 || sub(5, 3) != 2 {
			t.Error("add/sub returned wrong results")
		}
	})
}
