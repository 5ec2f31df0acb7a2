// Package get реализует HTTP-обработчик чтения клиента по email.
package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// Handler управляет HTTP-запросами на чтение клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения клиента.
type Service interface {
	Get(ctx context.Context, email string) (*models.Client, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request parameters"))
		return
	}

	client, err := h.service.Get(r.Context(), email)
	switch {
	case errors.Is(err, repository.ErrClientNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Client not found"))
		return
	case err != nil:
		log.Error("failed to fetch client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	render.JSON(w, r, client)
}
