// Package services содержит бизнес-логику back-office для работы с каталогом
// пластинок: создание, изменение цены и остатка, выборки по каталогу.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/melomanka/vinyl-rental/internal/models"
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// VinylRepository определяет методы для работы с каталогом в хранилище.
type VinylRepository interface {
	// CreateVinyl добавляет новую пластинку.
	CreateVinyl(ctx context.Context, vinyl models.Vinyl) error
	// GetVinylByTitle возвращает пластинку по названию.
	GetVinylByTitle(ctx context.Context, title string) (*models.Vinyl, error)
	// GetAllVinyls возвращает весь каталог.
	GetAllVinyls(ctx context.Context) ([]*models.Vinyl, error)
	// GetVinylsByArtist возвращает пластинки исполнителя.
	GetVinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error)
	// GetVinylsByGenre возвращает пластинки жанра.
	GetVinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error)
	// UpdateVinylByTitle перезаписывает изменяемые поля пластинки.
	UpdateVinylByTitle(ctx context.Context, title string, vinyl models.Vinyl) (int64, error)
	// DeleteVinylByTitle удаляет пластинку по названию.
	DeleteVinylByTitle(ctx context.Context, title string) (int64, error)
}

// VinylService реализует бизнес-логику каталога пластинок.
type VinylService struct {
	repo VinylRepository
	log  *slog.Logger
}

// NewVinylService создает новый экземпляр VinylService.
func NewVinylService(repo VinylRepository, log *slog.Logger) *VinylService {
	return &VinylService{
		repo: repo,
		log:  log,
	}
}

// Create добавляет пластинку в каталог. Идентификатор и дата поступления
// назначаются здесь; занятое название отклоняется.
func (s *VinylService) Create(ctx context.Context, req models.CreateVinylRequest) (*models.Vinyl, error) {
	const op = "services.vinyl.Create"

	_, err := s.repo.GetVinylByTitle(ctx, req.Title)
	switch {
	case err == nil:
		return nil, repository.ErrVinylExists
	case !errors.Is(err, repository.ErrVinylNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vinyl := models.Vinyl{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Artist:       req.Artist,
		Genre:        req.Genre,
		Price:        req.Price,
		Stock:        req.Stock,
		EntranceDate: time.Now(),
	}
	if err := s.repo.CreateVinyl(ctx, vinyl); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("added vinyl to catalog", slog.String("title", vinyl.Title))
	return &vinyl, nil
}

// UpdatePrice устанавливает новую цену пластинки (абсолютное значение).
func (s *VinylService) UpdatePrice(ctx context.Context, title string, newPrice float64) (*models.Vinyl, error) {
	const op = "services.vinyl.UpdatePrice"

	existing, err := s.repo.GetVinylByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing.Price = newPrice
	if _, err := s.repo.UpdateVinylByTitle(ctx, title, *existing); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return existing, nil
}

// UpdateStock прибавляет знаковую дельту к остатку пластинки.
// Отрицательный итог отклоняет ограничение на уровне базы.
func (s *VinylService) UpdateStock(ctx context.Context, title string, delta int) (*models.Vinyl, error) {
	const op = "services.vinyl.UpdateStock"

	existing, err := s.repo.GetVinylByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing.Stock += delta
	if _, err := s.repo.UpdateVinylByTitle(ctx, title, *existing); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("updated vinyl stock",
		slog.String("title", title), slog.Int("delta", delta))
	return existing, nil
}

// Get возвращает пластинку по названию.
func (s *VinylService) Get(ctx context.Context, title string) (*models.Vinyl, error) {
	return s.repo.GetVinylByTitle(ctx, title)
}

// List возвращает весь каталог.
func (s *VinylService) List(ctx context.Context) ([]*models.Vinyl, error) {
	return s.repo.GetAllVinyls(ctx)
}

// ByArtist возвращает пластинки исполнителя.
func (s *VinylService) ByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error) {
	return s.repo.GetVinylsByArtist(ctx, artist)
}

// ByGenre возвращает пластинки жанра.
func (s *VinylService) ByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error) {
	return s.repo.GetVinylsByGenre(ctx, genre)
}

// Remove удаляет пластинку по названию.
func (s *VinylService) Remove(ctx context.Context, title string) error {
	const op = "services.vinyl.Remove"

	count, err := s.repo.DeleteVinylByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return repository.ErrVinylNotFound
	}
	return nil
}
