// Package backoffice предоставляет маршруты сервиса back-office.
package backoffice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	clientbalance "github.com/melomanka/vinyl-rental/internal/http/handlers/client/balance"
	clientcreate "github.com/melomanka/vinyl-rental/internal/http/handlers/client/create"
	clientget "github.com/melomanka/vinyl-rental/internal/http/handlers/client/get"
	clientlist "github.com/melomanka/vinyl-rental/internal/http/handlers/client/list"
	clientremove "github.com/melomanka/vinyl-rental/internal/http/handlers/client/remove"
	clientupdate "github.com/melomanka/vinyl-rental/internal/http/handlers/client/update"
	vinylbyartist "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/byartist"
	vinylbygenre "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/bygenre"
	vinylcreate "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/create"
	vinylget "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/get"
	vinyllist "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/list"
	vinylremove "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/remove"
	vinylupdateprice "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/updateprice"
	vinylupdatestock "github.com/melomanka/vinyl-rental/internal/http/handlers/vinyl/updatestock"
	clientservice "github.com/melomanka/vinyl-rental/internal/services/client"
	vinylservice "github.com/melomanka/vinyl-rental/internal/services/vinyl"
)

// RegisterRoutes регистрирует все маршруты сервиса back-office.
func RegisterRoutes(r chi.Router, logger *slog.Logger, clients *clientservice.ClientService, vinyls *vinylservice.VinylService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/clients", func(r chi.Router) {
		r.Post("/client", clientcreate.New(logger, clients).ServeHTTP)
		r.Get("/client", clientget.New(logger, clients).ServeHTTP)
		r.Delete("/client", clientremove.New(logger, clients).ServeHTTP)
		r.Get("/all-clients", clientlist.New(logger, clients).ServeHTTP)
		r.Post("/balance", clientbalance.New(logger, clients).ServeHTTP)
		r.Post("/update-client", clientupdate.New(logger, clients).ServeHTTP)
	})

	r.Route("/api/vinyls", func(r chi.Router) {
		r.Post("/vinyl", vinylcreate.New(logger, vinyls).ServeHTTP)
		r.Get("/vinyl", vinylget.New(logger, vinyls).ServeHTTP)
		r.Delete("/vinyl", vinylremove.New(logger, vinyls).ServeHTTP)
		r.Get("/all-vinyls", vinyllist.New(logger, vinyls).ServeHTTP)
		r.Get("/by-artist", vinylbyartist.New(logger, vinyls).ServeHTTP)
		r.Get("/by-genre", vinylbygenre.New(logger, vinyls).ServeHTTP)
		r.Post("/update-price", vinylupdateprice.New(logger, vinyls).ServeHTTP)
		r.Post("/update-stock", vinylupdatestock.New(logger, vinyls).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
