// Package backoffice собирает и запускает HTTP-сервис back-office:
// хранилище, миграции, сервисы клиентов и каталога, маршруты.
package backoffice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/melomanka/vinyl-rental/internal/config"
	"github.com/melomanka/vinyl-rental/internal/migrations"
	clientservice "github.com/melomanka/vinyl-rental/internal/services/client"
	vinylservice "github.com/melomanka/vinyl-rental/internal/services/vinyl"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и хранилище сервиса back-office.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New инициализирует приложение: подключается к базе, накатывает миграции
// и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	clients := clientservice.NewClientService(db, logger)
	vinyls := vinylservice.NewVinylService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, clients, vinyls)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
