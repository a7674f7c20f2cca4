package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcallaghan/tradebook/internal/http/admin"
	"github.com/jcallaghan/tradebook/internal/http/budget"
	"github.com/jcallaghan/tradebook/internal/http/client"
	"github.com/jcallaghan/tradebook/internal/http/importcsv"
	"github.com/jcallaghan/tradebook/internal/http/job"
	authmw "github.com/jcallaghan/tradebook/internal/http/middleware"
)

func New(
	jobsV1 *job.Handler,
	clientsV1 *client.Handler,
	budgetV1 *budget.Handler,
	importV1 *importcsv.Handler,
	adminV1 *admin.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			jobsV1.Routes(r)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/budget", budgetV1.Routes)

		r.Route("/import", importV1.Routes)

		// Admin routes stay off unless a secret is configured.
		if authSecret != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(authmw.RequireToken(authSecret))
				adminV1.Routes(r)
			})
		}
	})

	return router
}
