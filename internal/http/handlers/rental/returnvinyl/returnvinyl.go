// Package returnvinyl реализует HTTP-обработчик возврата пластинки.
package returnvinyl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// Handler управляет HTTP-запросами на возврат пластинок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики возврата.
type Service interface {
	ReturnVinyl(ctx context.Context, email, title string) error
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
// @Summary Вернуть пластинку
// @Description Увеличивает остаток и закрывает запись аренды. Любой сбой возвращается как 500.
// @Tags Rental
// @Accept  json
// @Produce  json
// @Param request body models.RentRequest true "Клиент и пластинка"
// @Success 200 {object} response.MessageResponse "Пластинка возвращена"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /return [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.returnvinyl"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RentRequest
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

	if err := h.service.ReturnVinyl(r.Context(), req.Email, req.Title); err != nil {
		log.Error("failed to return vinyl", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("vinyl returned", slog.String("email", req.Email), slog.String("title", req.Title))
	render.JSON(w, r, response.Message("Vinyl returned successfully"))
}
