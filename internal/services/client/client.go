// Package services содержит бизнес-логику back-office для работы с клиентами:
// регистрацию, изменение баланса и частичное обновление анкеты.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/melomanka/vinyl-rental/internal/lib/password"
	"github.com/melomanka/vinyl-rental/internal/models"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// ClientRepository определяет методы для работы с клиентами в хранилище.
type ClientRepository interface {
	// CreateClient добавляет нового клиента и возвращает его ID.
	CreateClient(ctx context.Context, client models.Client) (string, error)
	// GetClientByEmail возвращает клиента по email.
	GetClientByEmail(ctx context.Context, email string) (*models.Client, error)
	// GetAllClients возвращает всех клиентов.
	GetAllClients(ctx context.Context) ([]*models.Client, error)
	// UpdateClientByEmail перезаписывает данные клиента по email.
	UpdateClientByEmail(ctx context.Context, email string, client models.Client) (int64, error)
	// DeleteClientByEmail удаляет клиента по email.
	DeleteClientByEmail(ctx context.Context, email string) (int64, error)
}

// ClientService реализует бизнес-логику работы с клиентами.
type ClientService struct {
	repo ClientRepository
	log  *slog.Logger
}

// NewClientService создает новый экземпляр ClientService.
func NewClientService(repo ClientRepository, log *slog.Logger) *ClientService {
	return &ClientService{
		repo: repo,
		log:  log,
	}
}

// Register создает нового клиента. Пароль хэшируется до записи,
// повторная регистрация занятого email отклоняется.
func (s *ClientService) Register(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	const op = "services.client.Register"

	_, err := s.repo.GetClientByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, repository.ErrClientExists
	case !errors.Is(err, repository.ErrClientNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := models.Client{
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		Balance:      req.Balance,
		PasswordHash: hash,
	}
	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	client.ID = id

	s.log.Info("registered new client", slog.String("email", client.Email))
	return &client, nil
}

// UpdateBalance прибавляет знаковую дельту к балансу клиента
// и возвращает клиента с новым значением.
func (s *ClientService) UpdateBalance(ctx context.Context, email string, delta float64) (*models.Client, error) {
	const op = "services.client.UpdateBalance"

	existing, err := s.repo.GetClientByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing.Balance += delta
	if _, err := s.repo.UpdateClientByEmail(ctx, email, *existing); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("updated client balance",
		slog.String("email", email), slog.Float64("delta", delta))
	return existing, nil
}

// Update частично обновляет анкету клиента: пустые поля запроса
// оставляют прежние значения.
func (s *ClientService) Update(ctx context.Context, req models.UpdateClientRequest) (*models.Client, error) {
	const op = "services.client.Update"

	existing, err := s.repo.GetClientByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Age != nil {
		existing.Age = *req.Age
	}
	if req.Gender != "" {
		existing.Gender = req.Gender
	}
	if req.Balance != nil {
		existing.Balance = *req.Balance
	}

	if _, err := s.repo.UpdateClientByEmail(ctx, req.Email, *existing); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return existing, nil
}

// Get возвращает клиента по email.
func (s *ClientService) Get(ctx context.Context, email string) (*models.Client, error) {
	return s.repo.GetClientByEmail(ctx, email)
}

// List возвращает всех клиентов.
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.repo.GetAllClients(ctx)
}

// Remove удаляет клиента по email.
func (s *ClientService) Remove(ctx context.Context, email string) error {
	const op = "services.client.Remove"

	count, err := s.repo.DeleteClientByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return repository.ErrClientNotFound
	}
	return nil
}
