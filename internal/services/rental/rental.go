// Package services содержит бизнес-логику проката: оркестрацию аренды
// и возврата пластинок поверх удалённых ресурсов back-office и локального
// журнала аренды.
//
// Аренда — это упорядоченная последовательность удалённых вызовов без
// распределённой транзакции: списание баланса, уменьшение остатка и запись
// в журнал выполняются по очереди, и сбой на позднем шаге оставляет эффекты
// ранних шагов в силе. Компенсаций нет.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/melomanka/vinyl-rental/internal/lib/rabbitmq"
	"github.com/melomanka/vinyl-rental/internal/lib/sl"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// Ошибки, исправимые пользователем. Обработчики транслируют их в 400,
// текст уходит в ответ без изменений.
var (
	// ErrInsufficientFunds возвращается, когда баланса клиента не хватает на аренду.
	ErrInsufficientFunds = errors.New("You have insufficient funds to rent this vinyl.")
	// ErrNoStock возвращается, когда пластинки нет на складе.
	ErrNoStock = errors.New("There's no copy of this vinyl in stock.")
	// ErrRentalNotFound возвращается при возврате, когда открытая аренда
	// этой пластинки у клиента не найдена.
	ErrRentalNotFound = errors.New("no rental found for this vinyl")
)

// ClientAPI описывает операции back-office над клиентами.
type ClientAPI interface {
	// FetchClient запрашивает клиента по email.
	FetchClient(ctx context.Context, email string) (*models.Client, error)
	// UpdateClientBalance изменяет баланс клиента на знаковую дельту.
	UpdateClientBalance(ctx context.Context, email string, delta float64) (*models.Client, error)
}

// VinylAPI описывает операции back-office над каталогом пластинок.
type VinylAPI interface {
	// FetchAllVinyls запрашивает весь каталог.
	FetchAllVinyls(ctx context.Context) ([]*models.Vinyl, error)
	// FetchVinyl запрашивает пластинку по названию.
	FetchVinyl(ctx context.Context, title string) (*models.Vinyl, error)
	// FetchVinylsByArtist запрашивает пластинки исполнителя.
	FetchVinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error)
	// FetchVinylsByGenre запрашивает пластинки жанра.
	FetchVinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error)
	// UpdateVinylStock изменяет остаток пластинки на знаковую дельту.
	UpdateVinylStock(ctx context.Context, title string, delta int) (*models.Vinyl, error)
}

// RentalRepository определяет методы для работы с журналом аренды.
type RentalRepository interface {
	// CreateRental добавляет запись аренды.
	CreateRental(ctx context.Context, rental models.Rental) error
	// GetAllRentals возвращает весь журнал.
	GetAllRentals(ctx context.Context) ([]*models.Rental, error)
	// GetRentalsByClient возвращает записи аренды клиента.
	GetRentalsByClient(ctx context.Context, clientID string) ([]*models.Rental, error)
	// UpdateRentalByClientAndVinyl перезаписывает даты записи аренды.
	UpdateRentalByClientAndVinyl(ctx context.Context, clientID string, rental models.Rental) (int64, error)
}

// EventPublisher публикует события жизненного цикла аренды.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// RentalEvent — сообщение о выдаче или возврате пластинки.
type RentalEvent struct {
	ClientEmail string    `json:"client_email"`
	VinylID     string    `json:"vinyl_id"`
	Title       string    `json:"title"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RentalService оркестрирует аренду и возврат пластинок.
// Зависимости передаются при создании, глобального состояния нет.
type RentalService struct {
	clients   ClientAPI
	vinyls    VinylAPI
	repo      RentalRepository
	publisher EventPublisher
	log       *slog.Logger
}

// NewRentalService создает новый экземпляр RentalService.
// publisher может быть nil — тогда события аренды не публикуются.
func NewRentalService(clients ClientAPI, vinyls VinylAPI, repo RentalRepository,
	publisher EventPublisher, log *slog.Logger) *RentalService {
	return &RentalService{
		clients:   clients,
		vinyls:    vinyls,
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// RentVinyl выдает пластинку клиенту и возвращает клиента с новым балансом.
//
// Порядок шагов фиксирован: сначала проверка средств, потом проверка
// остатка — при одновременном нарушении обоих условий клиент видит
// ошибку о средствах. Баланс достаточен только строго больше цены:
// баланс, равный цене, считается недостаточным.
func (s *RentalService) RentVinyl(ctx context.Context, email, title string) (*models.Client, error) {
	client, err := s.clients.FetchClient(ctx, email)
	if err != nil {
		return nil, err
	}
	vinyl, err := s.vinyls.FetchVinyl(ctx, title)
	if err != nil {
		return nil, err
	}

	if !(client.Balance > vinyl.Price) {
		return nil, ErrInsufficientFunds
	}
	if vinyl.Stock == 0 {
		return nil, ErrNoStock
	}

	// Дальше транзакции нет: сбой после списания оставляет клиента
	// с уменьшенным балансом.
	updatedClient, err := s.clients.UpdateClientBalance(ctx, email, -vinyl.Price)
	if err != nil {
		return nil, fmt.Errorf("Error renting vinyl: %w", err)
	}

	if _, err := s.vinyls.UpdateVinylStock(ctx, title, -1); err != nil {
		return nil, fmt.Errorf("Error renting vinyl: %w", err)
	}

	rental := models.Rental{
		ClientID:   client.Email,
		VinylID:    vinyl.ID,
		RentalDate: time.Now(),
	}
	if err := s.repo.CreateRental(ctx, rental); err != nil {
		return nil, fmt.Errorf("Error renting vinyl: %w", err)
	}

	s.log.Info("vinyl rented",
		slog.String("email", email), slog.String("title", title))
	s.publish(rabbitmq.RoutingKeyRented, email, vinyl.ID, title)

	return updatedClient, nil
}

// findOpenRentalByVinylID ищет первую открытую аренду данной пластинки.
func findOpenRentalByVinylID(rentals []*models.Rental, vinylID string) (*models.Rental, error) {
	for _, rental := range rentals {
		if rental.VinylID == vinylID && rental.Open() {
			return rental, nil
		}
	}
	return nil, ErrRentalNotFound
}

// ReturnVinyl принимает пластинку назад и закрывает запись аренды.
//
// Остаток увеличивается до поиска записи в журнале: если запись не
// найдена, возврат завершается ошибкой, но остаток уже увеличен.
// Возврат денег не выполняется — аренда оплачивается разово при выдаче.
func (s *RentalService) ReturnVinyl(ctx context.Context, email, title string) error {
	vinyl, err := s.vinyls.FetchVinyl(ctx, title)
	if err != nil {
		return err
	}

	if _, err := s.vinyls.UpdateVinylStock(ctx, title, 1); err != nil {
		return fmt.Errorf("Error returning vinyl: %w", err)
	}

	rentals, err := s.repo.GetRentalsByClient(ctx, email)
	if err != nil {
		return fmt.Errorf("Error returning vinyl: %w", err)
	}

	rental, err := findOpenRentalByVinylID(rentals, vinyl.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	rental.ReturnDate = &now
	if _, err := s.repo.UpdateRentalByClientAndVinyl(ctx, email, *rental); err != nil {
		return fmt.Errorf("Error returning vinyl: %w", err)
	}

	s.log.Info("vinyl returned",
		slog.String("email", email), slog.String("title", title))
	s.publish(rabbitmq.RoutingKeyReturned, email, vinyl.ID, title)

	return nil
}

// UpdateBalance пополняет баланс клиента через back-office.
func (s *RentalService) UpdateBalance(ctx context.Context, email string, delta float64) (*models.Client, error) {
	return s.clients.UpdateClientBalance(ctx, email, delta)
}

// AllVinyls возвращает весь каталог.
func (s *RentalService) AllVinyls(ctx context.Context) ([]*models.Vinyl, error) {
	return s.vinyls.FetchAllVinyls(ctx)
}

// VinylByTitle возвращает пластинку по названию.
func (s *RentalService) VinylByTitle(ctx context.Context, title string) (*models.Vinyl, error) {
	return s.vinyls.FetchVinyl(ctx, title)
}

// VinylsByArtist возвращает пластинки исполнителя.
func (s *RentalService) VinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error) {
	return s.vinyls.FetchVinylsByArtist(ctx, artist)
}

// VinylsByGenre возвращает пластинки жанра.
func (s *RentalService) VinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error) {
	return s.vinyls.FetchVinylsByGenre(ctx, genre)
}

// publish отправляет событие аренды. Сбой публикации логируется
// и не влияет на результат операции.
func (s *RentalService) publish(routingKey, email, vinylID, title string) {
	if s.publisher == nil {
		return
	}
	event := RentalEvent{
		ClientEmail: email,
		VinylID:     vinylID,
		Title:       title,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.Publish(routingKey, event); err != nil {
		s.log.Warn("failed to publish rental event",
			slog.String("routing_key", routingKey), sl.Err(err))
	}
}
