// Package bygenre реализует HTTP-обработчик выборки пластинок жанра.
package bygenre

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

// Handler управляет HTTP-запросами на выборку по жанру.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки пластинок жанра.
type Service interface {
	ByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пластинки жанра
// @Tags Vinyls
// @Produce  json
// @Param genre query string true "Жанр"
// @Success 200 {array} models.Vinyl "Пластинки жанра"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Ничего не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/vinyls/by-genre [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vinyl.bygenre"
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

	vinyls, err := h.service.ByGenre(r.Context(), genre)
	if err != nil {
		log.Error("failed to list vinyls by genre", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}
	if len(vinyls) == 0 {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("No vinyls found"))
		return
	}

	render.JSON(w, r, vinyls)
}
