package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	// inside logging and metrics so a recovered panic is still seen as a 500
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/profile", h.updateProfile)
		r.Put("/change-password", h.changePassword)
		r.Delete("/delete-user", h.deleteUser)
		r.Post("/favorites/add", h.addFavorite)
		r.Delete("/favorites/remove/{itemId}", h.removeFavorite)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
