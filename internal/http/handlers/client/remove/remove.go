// Package remove реализует HTTP-обработчик удаления клиента.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// Handler управляет HTTP-запросами на удаление клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления клиента.
type Service interface {
	Remove(ctx context.Context, email string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить клиента
// @Tags Clients
// @Produce  json
// @Param email query string true "Email клиента"
// @Success 200 {object} response.MessageResponse "Клиент удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/clients/client [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.remove"
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

	err := h.service.Remove(r.Context(), email)
	switch {
	case errors.Is(err, repository.ErrClientNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Client not found"))
		return
	case err != nil:
		log.Error("failed to delete client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("client deleted", slog.String("email", email))
	render.JSON(w, r, response.Message("Client deleted successfully"))
}
