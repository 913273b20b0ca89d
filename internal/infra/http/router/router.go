package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/rock-bullion-api/internal/infra/http/handlers"
	"github.com/xavierca1/rock-bullion-api/internal/infra/http/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Leads     *handlers.LeadHandler
	Products  *handlers.ProductHandler
	SpotPrice *handlers.SpotPriceHandler
}

func New(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Handle)

		r.Post("/leads", h.Leads.CreateLead)
		r.Get("/leads", h.Leads.ListLeads)

		r.Get("/products", h.Products.ListProducts)
		r.Get("/products/{id}", h.Products.GetProduct)

		r.Get("/spot-price", h.SpotPrice.Handle)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
