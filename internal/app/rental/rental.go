// Package rental собирает и запускает HTTP-сервис проката: журнал аренды,
// клиентов back-office, подключение к RabbitMQ и маршруты.
package rental

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/melomanka/vinyl-rental/internal/backoffice"
	"github.com/melomanka/vinyl-rental/internal/config"
	"github.com/melomanka/vinyl-rental/internal/lib/rabbitmq"
	"github.com/melomanka/vinyl-rental/internal/migrations"
	rentalservice "github.com/melomanka/vinyl-rental/internal/services/rental"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер, хранилище и подключение к брокеру.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
}

// amqpPublisher адаптирует канал RabbitMQ к интерфейсу публикации событий.
type amqpPublisher struct {
	ch *amqp.Channel
}

func (p *amqpPublisher) Publish(routingKey string, message any) error {
	return rabbitmq.PublishMessage(p.ch, routingKey, message)
}

// New инициализирует приложение: подключается к базе журнала аренды,
// накатывает миграции, поднимает клиента back-office и, если задан URL
// брокера, подключение к RabbitMQ.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	backOffice := backoffice.New(cfg.BackOfficeURL)

	var rabbitConn *amqp.Connection
	var publisher rentalservice.EventPublisher
	if cfg.RabbitURL != "" {
		rabbitConn, err = rabbitmq.Connect(cfg.RabbitURL, cfg.RabbitRetries, cfg.RabbitDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(rabbitConn)
		if err != nil {
			return nil, err
		}
		publisher = &amqpPublisher{ch: ch}
	} else {
		logger.Warn("rabbit url is empty, rental events will not be published")
	}

	rentals := rentalservice.NewRentalService(backOffice, backOffice, db, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, rentals)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
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
		if a.rabbitConn != nil {
			_ = a.rabbitConn.Close()
		}
		return err
	}
}
