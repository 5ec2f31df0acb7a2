// Package rental предоставляет маршруты сервиса проката.
package rental

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/allvinyls"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/balance"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/byartist"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/bygenre"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/bytitle"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/rent"
	"github.com/melomanka/vinyl-rental/internal/http/handlers/rental/returnvinyl"
	rentalservice "github.com/melomanka/vinyl-rental/internal/services/rental"
)

// RegisterRoutes регистрирует все маршруты сервиса проката.
func RegisterRoutes(r chi.Router, logger *slog.Logger, rentals *rentalservice.RentalService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Post("/rent", rent.New(logger, rentals).ServeHTTP)
	r.Post("/return", returnvinyl.New(logger, rentals).ServeHTTP)
	r.Post("/balance", balance.New(logger, rentals).ServeHTTP)
	r.Get("/all-vinyls", allvinyls.New(logger, rentals).ServeHTTP)
	r.Get("/vinyl", bytitle.New(logger, rentals).ServeHTTP)
	r.Get("/by-artist", byartist.New(logger, rentals).ServeHTTP)
	r.Get("/by-genre", bygenre.New(logger, rentals).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
