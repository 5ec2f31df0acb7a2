// Package allvinyls реализует HTTP-обработчик чтения всего каталога
// пластинок через back-office.
package allvinyls

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

// Handler управляет HTTP-запросами на чтение каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения каталога.
type Service interface {
	AllVinyls(ctx context.Context) ([]*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Весь каталог пластинок
// @Tags Catalog
// @Produce  json
// @Success 200 {array} models.Vinyl
// @Failure 404 {object} response.ErrorResponse "Каталог пуст"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /all-vinyls [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.allvinyls"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	vinyls, err := h.service.AllVinyls(r.Context())
	switch {
	case errors.Is(err, backoffice.ErrVinylNotFound):
		// Пустой каталог back-office отдаёт как 404.
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("No vinyls found"))
		return
	case err != nil:
		log.Error("failed to fetch vinyls", sl.Err(err))
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
