package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/mybookstore/web/internal/auth"
	"github.com/mybookstore/web/internal/catalog"
	"github.com/mybookstore/web/internal/config"
	"github.com/mybookstore/web/internal/handler"
	"github.com/mybookstore/web/internal/middleware"
	"github.com/mybookstore/web/internal/render"
	"github.com/mybookstore/web/internal/session"
	"github.com/mybookstore/web/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "MyBookStore - online bookstore storefront\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKSTORE_SESSION_SECRET   Session key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKSTORE_CATALOG_URL      Catalog API base URL (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKSTORE_SERVER_PORT      Server port (default: 3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKSTORE_ENV              Environment: development|production (default: development)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("bookstore %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	catalogClient := catalog.NewClient(cfg.CatalogURL, time.Duration(cfg.CatalogTimeout)*time.Second)
	defer func() {
		if err := catalogClient.Close(); err != nil {
			slog.Error("error closing catalog client", "error", err)
		}
	}()
	slog.Info("catalog client ready", "base_url", cfg.CatalogURL)

	sessionManager := session.New(cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("accessing templates: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	contentFS, err := fs.Sub(web.Content, "content")
	if err != nil {
		return fmt.Errorf("accessing page content: %w", err)
	}

	frontendHandler, err := handler.NewFrontendHandler(catalogClient, renderer, sessionManager, contentFS)
	if err != nil {
		return fmt.Errorf("initializing frontend handler: %w", err)
	}
	authHandler := handler.NewAuthHandler(renderer, sessionManager,
		auth.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword))
	managerHandler := handler.NewManagerHandler(catalogClient, renderer, sessionManager)
	healthHandler := handler.NewHealthHandler()

	r := chi.NewRouter()

	// Base middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.StripSlashes)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerAddr())))

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("accessing static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Public storefront
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteBooks, frontendHandler.Books)
	r.Get(handler.RouteBookByID, frontendHandler.BookDetail)
	r.Get(handler.RouteCategories, frontendHandler.Categories)
	r.Get(handler.RouteCategoryBooks, frontendHandler.CategoryBooks)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteContact, frontendHandler.Contact)
	r.Get(handler.RouteHealth, healthHandler.Health)

	// Back-office authentication
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.Post(handler.RouteLogin, authHandler.Login)
	r.Post(handler.RouteLogout, authHandler.Logout)

	// Store manager console, session-gated
	r.Route(handler.RouteManager, func(r chi.Router) {
		r.Use(middleware.RequireManager(sessionManager))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, handler.RouteManager+handler.RouteManagerAllBooks, http.StatusSeeOther)
		})
		r.Get(handler.RouteManagerAllBooks, managerHandler.AllBooks)
		r.Get(handler.RouteManagerAddBook, managerHandler.AddBookForm)
		r.Post(handler.RouteManagerAddBook, managerHandler.SaveBook)
		r.Post(handler.RouteManagerDeleteBook, managerHandler.DeleteBook)
	})

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
