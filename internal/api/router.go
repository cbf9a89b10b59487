package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/mannaz/internal/portfolioservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced on the admin
// surface; the public read/submit surface is never guarded.
// notify, if non-nil, is called after successful content mutations.
// eventsHandler, if non-nil, is mounted at GET /events.
// mediaDir is the directory uploaded media files are stored in.
func NewRouter(svc *portfolioservice.Service, authEnabled bool, token string, notify EventPublisher, eventsHandler http.Handler, mediaDir string) chi.Router {
	h := NewHandler(svc, notify)
	mh := NewMediaHandler(mediaDir)

	r := chi.NewRouter()

	// Public surface.
	r.Get("/portfolio", h.GetPortfolio)
	r.Post("/contact", h.SubmitContact)
	r.Get("/media/{filename}", mh.ServeFile)

	// Admin surface.
	r.Group(func(admin chi.Router) {
		admin.Use(AuthMiddleware(authEnabled, token))
		admin.Post("/portfolio", h.CreatePortfolio)
		admin.Put("/portfolio", h.UpdatePortfolio)
		admin.Get("/contact", h.ListContacts)
		admin.Put("/contact/{id}", h.UpdateContactStatus)
		admin.Post("/media", mh.Upload)
	})

	// SSE endpoint (public; events carry ids only).
	if eventsHandler != nil {
		r.Get("/events", eventsHandler.ServeHTTP)
	}

	return r
}
