// Package catalog provides the client for the external book catalog API
// and the pure view-state pipeline (search, category filter, sort) applied
// to a fetched catalog snapshot.
package catalog

import "strings"

// Categories is the fixed set of catalog categories. "all" is the sentinel
// that disables category filtering.
var Categories = []string{
	"fiction", "non-fiction", "science", "history", "art",
	"psychology", "business", "technology", "cooking",
}

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Book represents a single catalog entry as returned by the catalog API.
// The catalog service owns the data; the client holds a read-only snapshot
// per page load and never mutates it locally.
type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	ISBN          string  `json:"isbn"`
	Year          int     `json:"year"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	CoverImage    string  `json:"coverImage,omitempty"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	IsNew         bool    `json:"isNew,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
}

// HasDiscount returns true if the book has an active discount.
func (b Book) HasDiscount() bool {
	return b.Discount > 0 && b.OriginalPrice > b.Price
}

// Draft holds the writable fields of a book for create and update requests.
// The identifier is server-assigned and never part of a draft.
type Draft struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	ISBN          string  `json:"isbn"`
	Year          int     `json:"year"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	CoverImage    string  `json:"coverImage,omitempty"`
	Description   string  `json:"description,omitempty"`
	IsNew         bool    `json:"isNew,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
}

// IsValidCategory reports whether cat is one of the known categories.
// The "all" sentinel is not a category a book can carry, so it is not
// valid here. Comparison is case-insensitive.
func IsValidCategory(cat string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, cat) {
			return true
		}
	}
	return false
}
