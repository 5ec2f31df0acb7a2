// Package remove реализует HTTP-обработчик удаления пластинки из каталога.
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

// Handler управляет HTTP-запросами на удаление пластинок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления пластинки.
type Service interface {
	Remove(ctx context.Context, title string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пластинку
// @Tags Vinyls
// @Produce  json
// @Param title query string true "Название пластинки"
// @Success 200 {object} response.MessageResponse "Пластинка удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Пластинка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/vinyls/vinyl [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vinyl.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := r.URL.Query().Get("title")
	if title == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request parameters"))
		return
	}

	err := h.service.Remove(r.Context(), title)
	switch {
	case errors.Is(err, repository.ErrVinylNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Vinyl not found"))
		return
	case err != nil:
		log.Error("failed to delete vinyl", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("vinyl deleted", slog.String("title", title))
	render.JSON(w, r, response.Message("Vinyl deleted successfully"))
}
