package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rahulrajrrk/finance-tracker/internal/handler"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(
	logger *slog.Logger,
	health handler.HealthHandler,
	customers handler.CustomerHandler,
	transactions handler.TransactionHandler,
	expenses handler.ExpenseHandler,
	whatsapp handler.WhatsAppHandler,
	services handler.ServicesHandler,
	stats handler.StatsHandler,
	export handler.ExportHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(ar chi.Router) {
		customers.RegisterRoutes(ar)
		transactions.RegisterRoutes(ar)
		expenses.RegisterRoutes(ar)
		whatsapp.RegisterRoutes(ar)
		services.RegisterRoutes(ar)
		stats.RegisterRoutes(ar)
		export.RegisterRoutes(ar)
	})

	return r
}
