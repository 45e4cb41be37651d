package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/sort-a-short/internal/http/handlers"
	"github.com/pribylovaa/sort-a-short/internal/http/middleware"
)

// Options - параметры сборки роутера view API.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/v1"; пустой - маршруты на корне.
	DevTools bool   // отладочные маршруты (/dev/*), только вне prod.
}

// NewRouter собирает http.Handler view API.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Внешний -> внутренний. RequestID до Logging, чтобы id попал в логгер.
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts.DevTools)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, opts.DevTools)
	return root
}

// registerRoutes - единая точка регистрации маршрутов view API.
func registerRoutes(r chi.Router, h *handlers.Handlers, devTools bool) {
	// session / auth
	r.Get("/session", h.GetSession)
	r.Post("/session/refresh", h.RefreshSession)
	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/confirm", h.ConfirmSignUp)
	r.Post("/auth/signin", h.SignIn)
	r.Post("/auth/signout", h.SignOut)

	// profile
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/ratings", h.Rate)

	// social
	r.Get("/users/search", h.SearchUsers)
	r.Get("/users/{email}", h.GetUser)
	r.Get("/following", h.ListFollowing)
	r.Get("/followers", h.ListFollowers)
	r.Post("/follow", h.ToggleFollow)
	r.Post("/follow/code", h.FollowByCode)
	r.Get("/feed", h.Feed)

	// catalog
	r.Get("/catalog", h.ListCatalog)
	r.Get("/collections", h.ListCollections)
	r.Post("/shuffle", h.Shuffle)

	if devTools {
		r.Post("/dev/refill", h.DevRefill)
	}
}
