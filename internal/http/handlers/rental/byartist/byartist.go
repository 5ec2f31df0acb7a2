// Package byartist реализует HTTP-обработчик поиска пластинок исполнителя
// через back-office.
package byartist

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

// Handler управляет HTTP-запросами на поиск пластинок исполнителя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс поиска по исполнителю.
type Service interface {
	VinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пластинки исполнителя
// @Tags Catalog
// @Produce  json
// @Param artist query string true "Имя исполнителя"
// @Success 200 {array} models.Vinyl
// @Failure 400 {object} response.ErrorResponse "Не передан исполнитель"
// @Failure 404 {object} response.ErrorResponse "Ничего не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /by-artist [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.byartist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	artist := r.URL.Query().Get("artist")
	if artist == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request parameters"))
		return
	}

	vinyls, err := h.service.VinylsByArtist(r.Context(), artist)
	switch {
	case errors.Is(err, backoffice.ErrVinylNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Vinyl not found"))
		return
	case err != nil:
		log.Error("failed to fetch vinyls by artist", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	render.JSON(w, r, vinyls)
}
