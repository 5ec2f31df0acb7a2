// Package create реализует HTTP-обработчик регистрации клиента.
//
// Handler принимает JSON-запрос с данными клиента, валидирует его и передает
// бизнес-логике, которая хэширует пароль и сохраняет запись. Повторная
// регистрация занятого email возвращает 409.
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

// Handler управляет HTTP-запросами на регистрацию клиентов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс регистрации клиента.
type Service interface {
	Register(ctx context.Context, req models.CreateClientRequest) (*models.Client, error)
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
// @Summary Зарегистрировать клиента
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param request body models.CreateClientRequest true "Данные нового клиента"
// @Success 200 {object} response.MessageResponse "Клиент создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/clients/client [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateClientRequest
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

	_, err := h.service.Register(r.Context(), req)
	switch {
	case errors.Is(err, repository.ErrClientExists):
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("Client already exists"))
		return
	case err != nil:
		log.Error("failed to create client", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal Server Error"))
		return
	}

	log.Info("client created", slog.String("email", req.Email))
	render.JSON(w, r, response.Message("Client created successfully"))
}
