// Package create реализует HTTP-обработчик добавления пластинки в каталог.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// Handler управляет HTTP-запросами на добавление пластинок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс добавления пластинки.
type Service interface {
	Create(ctx context.Context, req models.CreateVinylRequest) (*models.Vinyl, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить пластинку в каталог
// @Tags Vinyls
// @Accept  json
// @Produce  json
// @Param request body models.CreateVinylRequest true "Данные новой пластинки"
// @Success 200 {object} response.MessageResponse "Пластинка добавлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 409 {object} response.ErrorResponse "Название уже занято"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/vinyls/vinyl [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vinyl.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateVinylRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request parameters"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	_, err := h.service.Create(r.Context(), req)
	switch {
	case errors.Is(err, repository.ErrVinylExists):
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("Vinyl already exists"))
		return
	case err != nil:
		log.Error("failed to create vinyl", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("vinyl created", slog.String("title", req.Title))
	render.JSON(w, r, response.Message("Vinyl created successfully"))
}
