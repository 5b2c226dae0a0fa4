package routes

import (
	"net/http"
	"time"

	"transferhub/backend/internal/api"
	"transferhub/backend/internal/db"
	"transferhub/backend/internal/logging"
	"transferhub/backend/internal/metrics"
	"transferhub/backend/internal/middleware"
	"transferhub/backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes builds the resource router: /routes, /fleet and /bookings
// plus health and metrics endpoints.
func RegisterRoutes(images storage.ImageStore, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewRegistry()

	// global middleware; admin token runs before metrics so the request log
	// sees it in the context
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.AdminTokenMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))
	r.Handle("/metrics", promhttp.Handler())

	deps := api.InitDependencies(db.DB, images, metricsReg)

	r.Route("/routes", func(r chi.Router) {
		r.Use(resourceCORS([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}))
		r.Options("/", optionsHandler)
		r.Get("/", api.ListRoutesHandler(deps.Routes))
		r.Post("/", api.CreateRouteHandler(deps.Routes))
		r.Put("/", api.UpdateRouteHandler(deps.Routes))
		r.Delete("/", api.DeleteRouteHandler(deps.Routes))
	})

	r.Route("/fleet", func(r chi.Router) {
		r.Use(resourceCORS([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}))
		r.Options("/", optionsHandler)
		r.Get("/", api.ListFleetHandler(deps.Fleet))
		r.Post("/", api.CreateFleetHandler(deps.Fleet))
		r.Put("/", api.UpdateFleetHandler(deps.Fleet))
		r.Delete("/", api.DeleteFleetHandler(deps.Fleet))
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(resourceCORS([]string{"GET", "POST", "PUT", "OPTIONS"}))
		r.Options("/", optionsHandler)
		r.Get("/", api.ListBookingsHandler(deps.Bookings))
		r.Post("/", api.CreateBookingHandler(deps.Bookings))
		r.Put("/", api.UpdateBookingHandler(deps.Bookings))
	})

	return r
}

// resourceCORS builds the permissive cross-origin policy with the method
// allow-list of one resource.
func resourceCORS(methods []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   methods,
		AllowedHeaders:   []string{"Content-Type", "X-Admin-Token", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// optionsHandler answers bare OPTIONS probes with an empty 200; preflights
// are already handled by the CORS middleware.
func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
}
