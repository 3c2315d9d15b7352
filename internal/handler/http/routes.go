package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router. Every request passes through trace id, access
// logging, the error boundary and the authenticator, in that order.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withErrorBoundary, h.authenticate)

	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/authenticate", h.authenticateUser)
		r.Post("/register", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Get("/", h.getAllUsers)
			r.Get("/{id}", h.getUserByID)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
