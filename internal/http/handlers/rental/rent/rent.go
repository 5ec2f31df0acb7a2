// Package rent реализует HTTP-обработчик выдачи пластинки клиенту.
//
// Handler принимает JSON-запрос с email клиента и названием пластинки,
// валидирует его и передает оркестратору аренды. Ошибки о нехватке средств
// и отсутствии пластинки на складе возвращаются клиенту как 400 с исходным
// текстом, остальные сбои — как 500 без деталей.
package rent

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
	rentalservice "github.com/melomanka/vinyl-rental/internal/services/rental"
)

// Handler управляет HTTP-запросами на аренду пластинок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики аренды.
type Service interface {
	RentVinyl(ctx context.Context, email, title string) (*models.Client, error)
}

// RentResponse — успешный ответ на аренду: подтверждение и новый баланс.
type RentResponse struct {
	Message     string  `json:"message" example:"Vinyl rented successfully"`
	UserBalance float64 `json:"userBalance" example:"10"`
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
// @Summary Арендовать пластинку
// @Description Списывает стоимость с баланса клиента, уменьшает остаток и открывает запись аренды.
// @Tags Rental
// @Accept  json
// @Produce  json
// @Param request body models.RentRequest true "Клиент и пластинка"
// @Success 200 {object} RentResponse "Пластинка выдана"
// @Failure 400 {object} response.ErrorResponse "Недостаточно средств, нет на складе или некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /rent [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.rent"
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

	updatedClient, err := h.service.RentVinyl(r.Context(), req.Email, req.Title)
	switch {
	case errors.Is(err, rentalservice.ErrInsufficientFunds),
		errors.Is(err, rentalservice.ErrNoStock):
		log.Info("rent rejected", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	case err != nil:
		log.Error("failed to rent vinyl", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("vinyl rented", slog.String("email", req.Email), slog.String("title", req.Title))
	render.JSON(w, r, RentResponse{
		Message:     "Vinyl rented successfully",
		UserBalance: updatedClient.Balance,
	})
}
