package handler

import (
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mybookstore/web/internal/auth"
	"github.com/mybookstore/web/internal/catalog"
	"github.com/mybookstore/web/internal/middleware"
	"github.com/mybookstore/web/internal/render"
	"github.com/mybookstore/web/internal/session"
	"github.com/mybookstore/web/web"
)

// newFakeCatalog starts a fake catalog API seeded with the given books.
func newFakeCatalog(t *testing.T, books map[int64]catalog.Book) *httptest.Server {
	t.Helper()

	var nextID int64 = 1000

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		out := make([]catalog.Book, 0, len(books))
		for _, b := range books {
			out = append(out, b)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		var d catalog.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		nextID++
		b := catalog.Book{ID: nextID, Title: d.Title, Author: d.Author, Price: d.Price, Category: d.Category}
		books[b.ID] = b
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)
	})
	mux.HandleFunc("/api/v1/books/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/v1/books/"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b, ok := books[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(b)
		case http.MethodPut:
			var d catalog.Draft
			if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			b.Title = d.Title
			b.Author = d.Author
			b.Price = d.Price
			b.Category = d.Category
			books[id] = b
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(b)
		case http.MethodDelete:
			delete(books, id)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestApp wires the full storefront against a fake catalog and returns
// a running test server. The CSRF and security header layers are left out;
// they are covered by their own package tests.
func newTestApp(t *testing.T, books map[int64]catalog.Book) *httptest.Server {
	t.Helper()
	return newTestAppAt(t, newFakeCatalog(t, books).URL)
}

// newTestAppAt wires the storefront against an arbitrary catalog URL,
// which may point at nothing to exercise fetch failures.
func newTestAppAt(t *testing.T, catalogURL string) *httptest.Server {
	t.Helper()

	client := catalog.NewClient(catalogURL, 5*time.Second)
	t.Cleanup(func() { _ = client.Close() })

	sm := session.New(true)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("accessing templates: %v", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, SessionManager: sm, IsDev: true})
	if err != nil {
		t.Fatalf("initializing renderer: %v", err)
	}

	contentFS := fstest.MapFS{
		"about.md":   &fstest.MapFile{Data: []byte("# About\n\nTest about page.")},
		"contact.md": &fstest.MapFile{Data: []byte("# Contact\n\nTest contact page.")},
	}

	frontend, err := NewFrontendHandler(client, renderer, sm, contentFS)
	if err != nil {
		t.Fatalf("initializing frontend handler: %v", err)
	}
	authHandler := NewAuthHandler(renderer, sm, auth.NewStaticCredentials("", ""))
	manager := NewManagerHandler(client, renderer, sm)
	health := NewHealthHandler()

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get(RouteRoot, frontend.Home)
	r.Get(RouteBooks, frontend.Books)
	r.Get(RouteBookByID, frontend.BookDetail)
	r.Get(RouteCategories, frontend.Categories)
	r.Get(RouteCategoryBooks, frontend.CategoryBooks)
	r.Get(RouteAbout, frontend.About)
	r.Get(RouteContact, frontend.Contact)
	r.Get(RouteHealth, health.Health)

	r.Get(RouteLogin, authHandler.LoginForm)
	r.Post(RouteLogin, authHandler.Login)
	r.Post(RouteLogout, authHandler.Logout)

	r.Route(RouteManager, func(r chi.Router) {
		r.Use(middleware.RequireManager(sm))
		r.Get(RouteManagerAllBooks, manager.AllBooks)
		r.Get(RouteManagerAddBook, manager.AddBookForm)
		r.Post(RouteManagerAddBook, manager.SaveBook)
		r.Post(RouteManagerDeleteBook, manager.DeleteBook)
	})

	r.NotFound(frontend.NotFound)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newBrowser returns an HTTP client with a cookie jar that follows
// redirects, mimicking a browser session.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// noRedirect stops a client from following redirects so the raw response
// can be inspected.
func noRedirect(c *http.Client) *http.Client {
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

// login authenticates the client's session with the demo credentials.
func login(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	resp, err := client.PostForm(baseURL+RouteLogin, url.Values{
		"username": {auth.DefaultUsername},
		"password": {auth.DefaultPassword},
	})
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
}

// getBody fetches a URL and returns the response status and body.
func getBody(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// seedBooks returns a catalog of n books spread across categories.
func seedBooks(n int) map[int64]catalog.Book {
	categories := []string{"fiction", "science", "history", "technology"}
	books := make(map[int64]catalog.Book, n)
	for i := 1; i <= n; i++ {
		books[int64(i)] = catalog.Book{
			ID:       int64(i),
			Title:    "Book " + strconv.Itoa(i),
			Author:   "Author " + strconv.Itoa(i),
			Price:    float64(10 + i),
			Category: categories[i%len(categories)],
			Reviews:  i * 10,
		}
	}
	return books
}
