// Package balance реализует HTTP-обработчик пополнения баланса клиента
// через сервис проката: запрос передаётся в back-office без изменений.
package balance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/melomanka/vinyl-rental/internal/http/response"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// Handler управляет HTTP-запросами на изменение баланса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс изменения баланса.
type Service interface {
	UpdateBalance(ctx context.Context, email string, delta float64) (*models.Client, error)
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
// @Summary Пополнить баланс
// @Description Прибавляет знаковую дельту к балансу клиента.
// @Tags Rental
// @Accept  json
// @Produce  json
// @Param request body models.BalanceRequest true "Клиент и дельта баланса"
// @Success 200 {object} response.MessageResponse "Баланс обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /balance [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.balance"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.BalanceRequest
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

	updatedClient, err := h.service.UpdateBalance(r.Context(), req.Email, req.Balance)
	if err != nil {
		log.Error("failed to update balance", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("balance updated", slog.String("email", req.Email))
	render.JSON(w, r, response.Message(fmt.Sprintf(
		"Balance updated successfully. Your balance is now %.2f", updatedClient.Balance)))
}
