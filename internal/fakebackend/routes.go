package fakebackend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		s.recoverer,
		s.requestID,
		s.recordRequests,
		s.cannedResponses,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.Post("/refresh", s.handleRefresh)
			r.Group(func(r chi.Router) {
				r.Use(s.requireUser)
				r.Post("/logout", s.handleLogout)
				r.Get("/me", s.handleMe)
			})
		})

		r.Route("/company-auth", func(r chi.Router) {
			r.Post("/login", s.handleCompanyLogin)
			r.Post("/refresh", s.handleCompanyRefresh)
		})

		r.Get("/items", s.handleListItems)
		r.Get("/items/categories", s.handleItemCategories)
		r.Get("/items/{itemID}", s.handleGetItem)
		r.Get("/categories", s.handleListCategories)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)
			r.Post("/items/{itemID}/images", s.handleUploadImages)
			r.Get("/users/{userID}", s.handleGetUser)
			r.Get("/exchanges", s.handleListExchanges)
			r.Get("/exchanges/{exchangeID}", s.handleGetExchange)
			r.Get("/notifications", s.handleListNotifications)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireUser, s.requireAdmin)
			r.Get("/items", s.handleAdminItems)
			r.Get("/users", s.handleAdminUsers)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}
