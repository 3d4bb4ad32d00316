package devserver

import (
	"net/http"

	"fluentedge/internal/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// NewServer returns the dev handler: the order API middleware in front of
// a static file server rooted at staticDir.
func NewServer(api func(http.Handler) http.Handler, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(handlers.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(api)

	r.Get("/healthz", handlers.Healthz)
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	return r
}
