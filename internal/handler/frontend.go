// Package handler provides HTTP handlers for the storefront and the
// store manager back office.
package handler

import (
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/mybookstore/web/internal/catalog"
	"github.com/mybookstore/web/internal/content"
	"github.com/mybookstore/web/internal/middleware"
	"github.com/mybookstore/web/internal/render"
	"github.com/mybookstore/web/internal/uikit"
)

// FrontendHandler serves the public storefront pages.
type FrontendHandler struct {
	catalog        *catalog.Client
	renderer       *render.Renderer
	sessionManager *scs.SessionManager

	// Pre-rendered static page bodies, built once at startup from the
	// embedded markdown sources.
	aboutHTML   template.HTML
	contactHTML template.HTML
}

// NewFrontendHandler creates a FrontendHandler. contentFS holds the embedded
// markdown sources for the static pages.
func NewFrontendHandler(client *catalog.Client, renderer *render.Renderer, sm *scs.SessionManager, contentFS fs.FS) (*FrontendHandler, error) {
	h := &FrontendHandler{
		catalog:        client,
		renderer:       renderer,
		sessionManager: sm,
	}

	for _, p := range []struct {
		file string
		dst  *template.HTML
	}{
		{"about.md", &h.aboutHTML},
		{"contact.md", &h.contactHTML},
	} {
		src, err := fs.ReadFile(contentFS, p.file)
		if err != nil {
			return nil, err
		}
		html, err := content.RenderMarkdown(src)
		if err != nil {
			return nil, err
		}
		*p.dst = html
	}

	return h, nil
}

// BookView wraps a Book with template-ready fields. FetchError is set
// instead of the book when the catalog request fails.
type BookView struct {
	catalog.Book
	SafeDescription template.HTML
	FetchError      string
}

// SortLink is one entry of the sort selector on the listing pages.
type SortLink struct {
	Key    string
	Label  string
	URL    string
	Active bool
}

// ListingData is the template payload for every book listing page.
type ListingData struct {
	Books      []catalog.Book
	View       catalog.View
	Categories []string
	SortLinks  []SortLink
	Total      int
	Pagination uikit.Pagination
	FetchError string
	// CategoryLocked hides the category selector on per-category pages.
	CategoryLocked bool
}

// HomeData is the template payload for the home page.
type HomeData struct {
	Featured   []catalog.Book
	Newest     []catalog.Book
	Total      int
	FetchError string
}

// viewFromRequest builds the listing view state from query parameters.
// The search and filter forms never submit a page parameter, so changing
// either resets the page to 1. Page links and sort links preserve all
// other parameters, so paging and sorting keep the reader's place.
func viewFromRequest(r *http.Request) catalog.View {
	return catalog.NormalizeView(catalog.View{
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
		Page:     uikit.ParsePageParam(r),
	})
}

var sortLabels = map[string]string{
	catalog.SortNewest:    "Newest",
	catalog.SortPriceLow:  "Price: low to high",
	catalog.SortPriceHigh: "Price: high to low",
	catalog.SortPopular:   "Most popular",
}

// sortLinks builds one link per sort key, carrying the current query,
// category, and page. Sorting never resets the page.
func sortLinks(baseURL string, view catalog.View, categoryLocked bool) []SortLink {
	links := make([]SortLink, 0, len(catalog.SortKeys))
	for _, key := range catalog.SortKeys {
		params := url.Values{}
		if view.Query != "" {
			params.Set("q", view.Query)
		}
		if !categoryLocked && view.Category != catalog.CategoryAll {
			params.Set("category", view.Category)
		}
		params.Set("sort", key)
		if view.Page > 1 {
			params.Set("page", strconv.Itoa(view.Page))
		}
		links = append(links, SortLink{
			Key:    key,
			Label:  sortLabels[key],
			URL:    baseURL + "?" + params.Encode(),
			Active: key == view.Sort,
		})
	}
	return links
}

// fetchErrorMessage extracts a display message from a catalog error.
func fetchErrorMessage(err error) string {
	var fe *catalog.FetchError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "failed to load books"
}

// Home renders the storefront home page with featured and newest books.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := HomeData{}

	books, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch catalog", "error", err, "page", "home")
		data.FetchError = fetchErrorMessage(err)
	} else {
		data.Featured = catalog.Featured(books, FeaturedCount)
		data.Newest = uikit.PageSlice(catalog.SortBooks(books, catalog.SortNewest), 8, 1)
		data.Total = len(books)
	}

	renderOrError(w, r, h.renderer, "pages/home", render.TemplateData{
		Title:     "MyBookStore",
		Data:      data,
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// Books renders the public listing with search, category filter, sort,
// and pagination applied client-side of the catalog API: the full snapshot
// is fetched on every page load and the pipeline runs over it.
func (h *FrontendHandler) Books(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, viewFromRequest(r), false)
}

// CategoryBooks renders the listing for a single category path.
func (h *FrontendHandler) CategoryBooks(w http.ResponseWriter, r *http.Request) {
	cat := chi.URLParam(r, "category")
	if !catalog.IsValidCategory(cat) {
		h.NotFound(w, r)
		return
	}

	view := viewFromRequest(r)
	view.Category = strings.ToLower(cat)
	h.renderListing(w, r, view, true)
}

func (h *FrontendHandler) renderListing(w http.ResponseWriter, r *http.Request, view catalog.View, categoryLocked bool) {
	data := ListingData{
		View:           view,
		Categories:     catalog.Categories,
		CategoryLocked: categoryLocked,
	}

	snapshot, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch catalog", "error", err, "page", "books")
		data.FetchError = fetchErrorMessage(err)
		data.SortLinks = sortLinks(r.URL.Path, view, categoryLocked)
		renderOrError(w, r, h.renderer, "pages/books", render.TemplateData{
			Title:     "All Books",
			Data:      data,
			IsManager: middleware.IsManager(h.sessionManager, r),
		})
		return
	}

	filtered := view.Apply(snapshot)
	page, _ := uikit.NormalizePagination(view.Page, len(filtered), BooksPerPage)
	data.View.Page = page
	data.Total = len(filtered)
	data.Books = uikit.PageSlice(filtered, BooksPerPage, page)

	baseURL := r.URL.Path
	data.Pagination = uikit.Build(page, len(filtered), BooksPerPage, baseURL, r.URL.Query())
	data.SortLinks = sortLinks(baseURL, data.View, categoryLocked)

	renderOrError(w, r, h.renderer, "pages/books", render.TemplateData{
		Title:     "All Books",
		Data:      data,
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// BookDetail renders a single book page.
func (h *FrontendHandler) BookDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		h.NotFound(w, r)
		return
	}

	book, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		var fe *catalog.FetchError
		if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
			h.NotFound(w, r)
			return
		}
		slog.Error("failed to fetch book", "error", err, "book_id", id)
		renderOrError(w, r, h.renderer, "pages/book_detail", render.TemplateData{
			Title:     "Book",
			Data:      BookView{FetchError: fetchErrorMessage(err)},
			IsManager: middleware.IsManager(h.sessionManager, r),
		})
		return
	}

	renderOrError(w, r, h.renderer, "pages/book_detail", render.TemplateData{
		Title: book.Title,
		Data: BookView{
			Book:            book,
			SafeDescription: content.SanitizeDescription(book.Description),
		},
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// CategoryIndexData is the template payload for the category index page.
type CategoryIndexData struct {
	Categories []string
	Counts     map[string]int
	FetchError string
}

// Categories renders the category index with per-category book counts.
func (h *FrontendHandler) Categories(w http.ResponseWriter, r *http.Request) {
	data := CategoryIndexData{Categories: catalog.Categories}

	books, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch catalog", "error", err, "page", "categories")
		data.FetchError = fetchErrorMessage(err)
	} else {
		data.Counts = catalog.CountByCategory(books)
	}

	renderOrError(w, r, h.renderer, "pages/categories", render.TemplateData{
		Title:     "Categories",
		Data:      data,
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// About renders the about page from embedded markdown.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "pages/static", render.TemplateData{
		Title:     "About Us",
		Data:      h.aboutHTML,
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// Contact renders the contact page from embedded markdown.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	renderOrError(w, r, h.renderer, "pages/static", render.TemplateData{
		Title:     "Contact",
		Data:      h.contactHTML,
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}

// NotFound renders the catch-all 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	renderOrError(w, r, h.renderer, "pages/notfound", render.TemplateData{
		Title:     "Page Not Found",
		IsManager: middleware.IsManager(h.sessionManager, r),
	})
}
