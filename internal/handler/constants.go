package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteBooks is the public book listing route.
	RouteBooks = "/books"
	// RouteBookByID is the book detail route pattern.
	RouteBookByID = "/books/{id}"
	// RouteCategories is the category index route.
	RouteCategories = "/categories"
	// RouteCategoryBooks is the per-category listing route pattern.
	RouteCategoryBooks = "/categories/{category}"
	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteContact is the contact page route.
	RouteContact = "/contact"

	// RouteLogin is the back-office login route.
	RouteLogin = "/login"
	// RouteLogout is the back-office logout route.
	RouteLogout = "/logout"

	// RouteManager is the store manager route prefix.
	RouteManager = "/store-manager"
	// RouteManagerAllBooks is the management listing route.
	RouteManagerAllBooks = "/all-books"
	// RouteManagerAddBook is the add/edit form route.
	RouteManagerAddBook = "/add-book"
	// RouteManagerDeleteBook is the delete action route pattern.
	RouteManagerDeleteBook = "/books/{id}/delete"

	// RouteHealth is the liveness probe route.
	RouteHealth = "/health"
)

// BooksPerPage is the fixed page size for all book listings.
const BooksPerPage = 12

// FeaturedCount is the number of featured books shown on the home page.
const FeaturedCount = 3
