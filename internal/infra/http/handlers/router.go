package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prospectfinder/backend/internal/infra/http/middleware"
)

// RouterDeps collects every handler the router mounts. main builds one of
// these and nothing else touches routing.
type RouterDeps struct {
	Auth           *middleware.Auth
	AuthHandler    *AuthHandler
	ProspectH      *ProspectHandler
	SearchH        *SearchHandler
	LushaH         *LushaHandler
	UserH          *UserHandler
	AnalysisH      *AnalysisHandler
	HealthH        *HealthHandler
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", deps.HealthH.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", deps.AuthHandler.Signup)
		r.Post("/auth/login", deps.AuthHandler.Login)

		// Everything else requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Middleware)

			r.Get("/auth/verify", deps.AuthHandler.Verify)
			r.Post("/auth/company-info", deps.AuthHandler.SaveCompanyInfo)

			r.Route("/prospects", func(r chi.Router) {
				r.Get("/", deps.ProspectH.List)
				r.Post("/", deps.ProspectH.Create)
				r.Get("/suggestions", deps.ProspectH.Suggestions)
				r.Get("/{id}", deps.ProspectH.Get)
				r.Put("/{id}", deps.ProspectH.Update)
				r.Delete("/{id}", deps.ProspectH.Delete)
			})

			r.Route("/prospecting", func(r chi.Router) {
				r.Post("/search", deps.SearchH.Search)
				r.Get("/search/{kind}/last", deps.SearchH.LastSearch)
				r.Post("/enrich", deps.SearchH.Enrich)
			})

			r.Route("/lusha", deps.LushaH.Mount)

			r.Route("/users", func(r chi.Router) {
				r.Get("/filters", deps.UserH.ListFilters)
				r.Post("/filters", deps.UserH.SaveFilter)
				r.Delete("/filters/{id}", deps.UserH.DeleteFilter)
				r.Get("/lists", deps.UserH.ListProspectLists)
				r.Post("/lists", deps.UserH.CreateProspectList)
				r.Post("/lists/{id}/prospects", deps.UserH.AddProspectToList)
			})

			r.Route("/analysis", func(r chi.Router) {
				r.Get("/suggestions", deps.AnalysisH.Suggestions)
				r.Post("/", deps.AnalysisH.Create)
				r.Get("/", deps.AnalysisH.List)
				r.Get("/{id}", deps.AnalysisH.Get)
			})
		})
	})

	return r
}
