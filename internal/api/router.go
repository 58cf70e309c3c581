package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/23302610sole/clear-path-png/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Get("/departments", h.Departments)

			r.Post("/auth/student/signin", h.SignInStudent)
			r.Post("/auth/department/signin", h.SignInOfficer)
			r.Post("/auth/admin/signin", h.SignInAdmin)
			r.Post("/auth/signout", h.SignOut)
			r.Get("/auth/session", h.Session)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/clearance", h.GetClearance)
			r.Post("/clearance", h.RecordClearance)
			r.Post("/clearance/reminder", h.SendReminder)
			r.Get("/clearance/certificate", h.Certificate)

			r.Get("/admin/stats", h.Stats)
		})
	})

	return router
}
