package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hanco1/D2Cdashboard/app"
	"github.com/hanco1/D2Cdashboard/log"
	"github.com/hanco1/D2Cdashboard/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/form", GetForm(app))
	api.Post("/submissions", SubmitAssessment(app))
	api.Delete("/submissions", ClearSubmissions(app))

	api.Route("/admin", func(r chi.Router) {
		if app.DemoMode() {
			log.Warn("no storage configured: reviewer API runs unprotected on the in-memory store")
		} else {
			r.Use(middlewares.Admin(app.TokenSecret))
		}

		r.Get("/submissions", ListSubmissions(app))
		r.Get("/submissions/{id}", GetSubmissionById(app))
		r.Put("/submissions/{id}/status", UpdateSubmissionStatus(app))
		r.Get("/metrics", GetDashboardMetrics(app))
	})

	if !app.DemoMode() {
		api.Post("/login", Login(app))
		api.Post("/refresh", Refresh(app))
	}

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
