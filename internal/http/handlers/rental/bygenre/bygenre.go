// Package bygenre реализует HTTP-обработчик поиска пластинок жанра
// через back-office.
package bygenre

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

// Handler управляет HTTP-запросами на поиск пластинок жанра.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс поиска по жанру.
type Service interface {
	VinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пластинки жанра
// @Tags Catalog
// @Produce  json
// @Param genre query string true "Жанр"
// @Success 200 {array} models.Vinyl
// @Failure 400 {object} response.ErrorResponse "Не передан жанр"
// @Failure 404 {object} response.ErrorResponse "Ничего не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /by-genre [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.bygenre"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	genre := r.URL.Query().Get("genre")
	if genre == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request parameters"))
		return
	}

	vinyls, err := h.service.VinylsByGenre(r.Context(), genre)
	switch {
	case errors.Is(err, backoffice.ErrVinylNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Vinyl not found"))
		return
	case err != nil:
		log.Error("failed to fetch vinyls by genre", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	render.JSON(w, r, vinyls)
}
