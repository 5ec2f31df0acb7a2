// Package list реализует HTTP-обработчик получения всего каталога пластинок.
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

// Handler управляет HTTP-запросами на получение каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки всего каталога.
type Service interface {
	List(ctx context.Context) ([]*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить весь каталог пластинок
// @Tags Vinyls
// @Produce  json
// @Success 200 {array} models.Vinyl "Каталог"
// @Failure 404 {object} response.ErrorResponse "Каталог пуст"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/vinyls/all-vinyls [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vinyl.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	vinyls, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list vinyls", sl.Err(err))
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
