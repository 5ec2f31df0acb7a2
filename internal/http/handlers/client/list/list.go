// Package list реализует HTTP-обработчик чтения всех клиентов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// Handler управляет HTTP-запросами на чтение списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения списка клиентов.
type Service interface {
	List(ctx context.Context) ([]*models.Client, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	clients, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to fetch clients", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}
	if len(clients) == 0 {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("No clients found"))
		return
	}

	render.JSON(w, r, clients)
}
