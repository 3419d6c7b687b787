package catalog

import (
	"sort"
	"strings"
)

// Sort keys for the catalog listing. SortNewest uses the identifier as a
// proxy for recency: the API assigns IDs in creation order and carries no
// creation timestamp.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

// SortKeys lists the supported sort keys in display order.
var SortKeys = []string{SortNewest, SortPriceLow, SortPriceHigh, SortPopular}

// View holds the listing selections applied to a catalog snapshot.
// It is derived state: rebuilt from the request on every page load,
// never persisted.
type View struct {
	Query    string
	Category string
	Sort     string
	Page     int
}

// NormalizeView fills in defaults for empty or unknown selections.
func NormalizeView(v View) View {
	if !strings.EqualFold(v.Category, CategoryAll) && !IsValidCategory(v.Category) {
		v.Category = CategoryAll
	}
	switch v.Sort {
	case SortNewest, SortPriceLow, SortPriceHigh, SortPopular:
	default:
		v.Sort = SortNewest
	}
	if v.Page < 1 {
		v.Page = 1
	}
	return v
}

// Apply runs the full pipeline over a snapshot: search, then category
// filter, then sort. All active criteria conjunct over the snapshot every
// time; no filter narrows a previously filtered result. The snapshot is
// never mutated and the result is always a subset or permutation of it.
func (v View) Apply(snapshot []Book) []Book {
	books := Search(snapshot, v.Query)
	books = FilterCategory(books, v.Category)
	return SortBooks(books, v.Sort)
}

// Search keeps books whose title or author contains term, case-insensitive.
// An empty term passes everything through.
func Search(books []Book, term string) []Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return copyBooks(books)
	}
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term) {
			out = append(out, b)
		}
	}
	return out
}

// FilterCategory keeps books whose category equals cat, case-insensitive.
// The "all" sentinel (or an empty string) disables filtering.
func FilterCategory(books []Book, cat string) []Book {
	if cat == "" || strings.EqualFold(cat, CategoryAll) {
		return copyBooks(books)
	}
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.EqualFold(b.Category, cat) {
			out = append(out, b)
		}
	}
	return out
}

// SortBooks returns a sorted copy of books. The sort is stable so that
// equal-key books keep their snapshot order and pagination stays
// reproducible. Unknown keys fall back to newest.
func SortBooks(books []Book, key string) []Book {
	out := copyBooks(books)
	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// Featured returns the first n books of the snapshot for the home page.
func Featured(books []Book, n int) []Book {
	if n > len(books) {
		n = len(books)
	}
	return copyBooks(books[:n])
}

// CountByCategory counts snapshot books per known category,
// case-insensitive.
func CountByCategory(books []Book) map[string]int {
	counts := make(map[string]int, len(Categories))
	for _, b := range books {
		for _, c := range Categories {
			if strings.EqualFold(b.Category, c) {
				counts[c]++
				break
			}
		}
	}
	return counts
}

func copyBooks(books []Book) []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}
