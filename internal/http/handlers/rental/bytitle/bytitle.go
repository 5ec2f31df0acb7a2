// Package bytitle реализует HTTP-обработчик поиска пластинки по названию
// через back-office.
package bytitle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/melomanka/vinyl-rental/internal/backoffice"
	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// Handler управляет HTTP-запросами на поиск пластинки по названию.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс поиска пластинки.
type Service interface {
	VinylByTitle(ctx context.Context, title string) (*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пластинка по названию
// @Tags Catalog
// @Produce  json
// @Param title query string true "Название пластинки"
// @Success 200 {object} models.Vinyl
// @Failure 400 {object} response.ErrorResponse "Не передано название"
// @Failure 404 {object} response.ErrorResponse "Пластинка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /vinyl [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.bytitle"
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

	vinyl, err := h.service.VinylByTitle(r.Context(), title)
	switch {
	case errors.Is(err, backoffice.ErrVinylNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Vinyl not found"))
		return
	case err != nil:
		log.Error("failed to fetch vinyl", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	render.JSON(w, r, vinyl)
}
