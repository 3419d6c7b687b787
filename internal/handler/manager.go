package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/mybookstore/web/internal/catalog"
	"github.com/mybookstore/web/internal/render"
	"github.com/mybookstore/web/internal/uikit"
)

// ManagerHandler handles the store manager back office: listing, add,
// edit, and delete. Every mutation round-trips through the catalog API and
// the next listing render refetches the snapshot wholesale; nothing is
// patched locally.
type ManagerHandler struct {
	catalog        *catalog.Client
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewManagerHandler creates a new ManagerHandler.
func NewManagerHandler(client *catalog.Client, renderer *render.Renderer, sm *scs.SessionManager) *ManagerHandler {
	return &ManagerHandler{
		catalog:        client,
		renderer:       renderer,
		sessionManager: sm,
	}
}

// ManagerListData is the template payload for the management listing.
type ManagerListData struct {
	Books      []catalog.Book
	Query      string
	Total      int
	Pagination uikit.Pagination
	FetchError string
}

// AllBooks renders the management listing with search and pagination.
// Search uses the same title-or-author matching as the storefront.
func (h *ManagerHandler) AllBooks(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := ManagerListData{Query: query}

	snapshot, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch catalog", "error", err, "page", "manager")
		data.FetchError = fetchErrorMessage(err)
		renderOrError(w, r, h.renderer, "manager/all_books", render.TemplateData{
			Title:     "Manage Books",
			Data:      data,
			IsManager: true,
		})
		return
	}

	filtered := catalog.Search(snapshot, query)
	page, _ := uikit.NormalizePagination(uikit.ParsePageParam(r), len(filtered), BooksPerPage)
	data.Total = len(filtered)
	data.Books = uikit.PageSlice(filtered, BooksPerPage, page)
	data.Pagination = uikit.Build(page, len(filtered), BooksPerPage, RouteManager+RouteManagerAllBooks, r.URL.Query())

	renderOrError(w, r, h.renderer, "manager/all_books", render.TemplateData{
		Title:     "Manage Books",
		Data:      data,
		IsManager: true,
	})
}

// BookFormData is the template payload for the add/edit form.
type BookFormData struct {
	// EditID is 0 for a new book, otherwise the book being edited.
	EditID     int64
	Draft      catalog.Draft
	Categories []string
	Errors     []string
	FetchError string
}

// AddBookForm renders the add form, or the edit form when an edit target
// is supplied via the "edit" query parameter.
func (h *ManagerHandler) AddBookForm(w http.ResponseWriter, r *http.Request) {
	data := BookFormData{Categories: catalog.Categories}

	if editParam := r.URL.Query().Get("edit"); editParam != "" {
		id, err := strconv.ParseInt(editParam, 10, 64)
		if err != nil || id < 1 {
			flashError(w, r, h.renderer, RouteManager+RouteManagerAllBooks, "Invalid edit target")
			return
		}

		book, err := h.catalog.Get(r.Context(), id)
		if err != nil {
			slog.Error("failed to fetch book for edit", "error", err, "book_id", id)
			flashError(w, r, h.renderer, RouteManager+RouteManagerAllBooks, fetchErrorMessage(err))
			return
		}

		data.EditID = book.ID
		data.Draft = catalog.Draft{
			Title:         book.Title,
			Author:        book.Author,
			ISBN:          book.ISBN,
			Year:          book.Year,
			Price:         book.Price,
			Category:      book.Category,
			CoverImage:    book.CoverImage,
			Description:   book.Description,
			IsNew:         book.IsNew,
			Discount:      book.Discount,
			OriginalPrice: book.OriginalPrice,
		}
	}

	renderOrError(w, r, h.renderer, "manager/add_book", render.TemplateData{
		Title:     "Add Book",
		Data:      data,
		IsManager: true,
	})
}

// SaveBook handles the add/edit form submission: create when no edit
// target is present, update otherwise. On success it redirects back to the
// listing, which refetches the catalog; on failure the form is re-rendered
// with the error inline and nothing is altered.
func (h *ManagerHandler) SaveBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteManager+RouteManagerAddBook, "Invalid form data")
		return
	}

	var editID int64
	if editParam := r.FormValue("edit"); editParam != "" {
		id, err := strconv.ParseInt(editParam, 10, 64)
		if err != nil || id < 1 {
			flashError(w, r, h.renderer, RouteManager+RouteManagerAllBooks, "Invalid edit target")
			return
		}
		editID = id
	}

	draft, fieldErrors := draftFromForm(r)
	data := BookFormData{
		EditID:     editID,
		Draft:      draft,
		Categories: catalog.Categories,
		Errors:     fieldErrors,
	}

	if len(fieldErrors) > 0 {
		renderOrError(w, r, h.renderer, "manager/add_book", render.TemplateData{
			Title:     "Add Book",
			Data:      data,
			IsManager: true,
		})
		return
	}

	var err error
	if editID > 0 {
		_, err = h.catalog.Update(r.Context(), editID, draft)
	} else {
		_, err = h.catalog.Create(r.Context(), draft)
	}
	if err != nil {
		slog.Error("failed to save book", "error", err, "edit_id", editID)
		data.FetchError = fetchErrorMessage(err)
		renderOrError(w, r, h.renderer, "manager/add_book", render.TemplateData{
			Title:     "Add Book",
			Data:      data,
			IsManager: true,
		})
		return
	}

	message := fmt.Sprintf("%q added", draft.Title)
	if editID > 0 {
		message = fmt.Sprintf("%q updated", draft.Title)
	}
	flashSuccess(w, r, h.renderer, RouteManager+RouteManagerAllBooks, message)
}

// DeleteBook handles the delete action. The confirmation step happens in
// the browser before the form posts. On success the redirect to the
// listing refetches the snapshot; on failure the error is surfaced as an
// inline flash and the displayed list stays as it was.
func (h *ManagerHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		flashError(w, r, h.renderer, RouteManager+RouteManagerAllBooks, "Invalid book ID")
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete book", "error", err, "book_id", id)
		flashError(w, r, h.renderer, RouteManager+RouteManagerAllBooks, "Delete failed: "+fetchErrorMessage(err))
		return
	}

	slog.Info("book deleted", "book_id", id)
	flashSuccess(w, r, h.renderer, RouteManager+RouteManagerAllBooks, "Book deleted")
}

// draftFromForm builds a Draft from the submitted form values and returns
// any validation errors.
func draftFromForm(r *http.Request) (catalog.Draft, []string) {
	var errs []string

	draft := catalog.Draft{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Author:      strings.TrimSpace(r.FormValue("author")),
		ISBN:        strings.TrimSpace(r.FormValue("isbn")),
		Category:    strings.ToLower(strings.TrimSpace(r.FormValue("category"))),
		CoverImage:  strings.TrimSpace(r.FormValue("coverImage")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsNew:       r.FormValue("isNew") == "on",
	}

	if draft.Title == "" {
		errs = append(errs, "Title is required")
	}
	if draft.Author == "" {
		errs = append(errs, "Author is required")
	}

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			errs = append(errs, "Price must be a non-negative number")
		} else {
			draft.Price = price
		}
	} else {
		errs = append(errs, "Price is required")
	}

	if v := r.FormValue("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year < 0 {
			errs = append(errs, "Year must be a valid number")
		} else {
			draft.Year = year
		}
	}

	if v := r.FormValue("originalPrice"); v != "" {
		orig, err := strconv.ParseFloat(v, 64)
		if err != nil || orig < 0 {
			errs = append(errs, "Original price must be a non-negative number")
		} else {
			draft.OriginalPrice = orig
		}
	}

	if v := r.FormValue("discount"); v != "" {
		discount, err := strconv.Atoi(v)
		if err != nil || discount < 0 || discount > 100 {
			errs = append(errs, "Discount must be between 0 and 100")
		} else {
			draft.Discount = discount
		}
	}

	if draft.Category != "" && !catalog.IsValidCategory(draft.Category) {
		errs = append(errs, "Unknown category")
	}

	return draft, errs
}
