package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/melomanka/vinyl-rental/internal/models"
)

type ClientsMock struct{ mock.Mock }

func (m *ClientsMock) FetchClient(ctx context.Context, email string) (*models.Client, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *ClientsMock) UpdateClientBalance(ctx context.Context, email string, delta float64) (*models.Client, error) {
	args := m.Called(ctx, email, delta)
	return args.Get(0).(*models.Client), args.Error(1)
}

type VinylsMock struct{ mock.Mock }

func (m *VinylsMock) FetchAllVinyls(ctx context.Context) ([]*models.Vinyl, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Vinyl), args.Error(1)
}

func (m *VinylsMock) FetchVinyl(ctx context.Context, title string) (*models.Vinyl, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(*models.Vinyl), args.Error(1)
}

func (m *VinylsMock) FetchVinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error) {
	args := m.Called(ctx, artist)
	return args.Get(0).([]*models.Vinyl), args.Error(1)
}

func (m *VinylsMock) FetchVinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error) {
	args := m.Called(ctx, genre)
	return args.Get(0).([]*models.Vinyl), args.Error(1)
}

func (m *VinylsMock) UpdateVinylStock(ctx context.Context, title string, delta int) (*models.Vinyl, error) {
	args := m.Called(ctx, title, delta)
	return args.Get(0).(*models.Vinyl), args.Error(1)
}

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateRental(ctx context.Context, rental models.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *RepoMock) GetAllRentals(ctx context.Context) ([]*models.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Rental), args.Error(1)
}

func (m *RepoMock) GetRentalsByClient(ctx context.Context, clientID string) ([]*models.Rental, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*models.Rental), args.Error(1)
}

func (m *RepoMock) UpdateRentalByClientAndVinyl(ctx context.Context, clientID string, rental models.Rental) (int64, error) {
	args := m.Called(ctx, clientID, rental)
	return args.Get(0).(int64), args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(routingKey string, message any) error {
	return m.Called(routingKey, message).Error(0)
}

func NewNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRental_RentVinyl(t *testing.T) {
	vinyl := models.Vinyl{
		ID:    "a5b2c932-4bd8-41e5-b0a7-8a2f3c1d9e60",
		Title: "Abbey Road",
		Price: 10,
		Stock: 1,
	}

	tests := []struct {
		name        string
		setupMocks  func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock)
		wantBalance float64
		wantErr     error
	}{
		{
			name: "success rent debits price and removes copy",
			setupMocks: func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock) {
				clients.On("FetchClient", mock.Anything, "ira@example.com").
					Return(&models.Client{Email: "ira@example.com", Balance: 20}, nil).Once()
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
				clients.On("UpdateClientBalance", mock.Anything, "ira@example.com", -10.0).
					Return(&models.Client{Email: "ira@example.com", Balance: 10}, nil).Once()
				vinyls.On("UpdateVinylStock", mock.Anything, "Abbey Road", -1).
					Return(&models.Vinyl{ID: vinyl.ID, Stock: 0}, nil).Once()
				repo.On("CreateRental", mock.Anything, mock.MatchedBy(func(r models.Rental) bool {
					return r.ClientID == "ira@example.com" && r.VinylID == vinyl.ID && r.Open()
				})).Return(nil).Once()
			},
			wantBalance: 10,
		},
		{
			name: "balance equal to price is not enough",
			setupMocks: func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock) {
				clients.On("FetchClient", mock.Anything, "ira@example.com").
					Return(&models.Client{Email: "ira@example.com", Balance: 10}, nil).Once()
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "no copies in stock",
			setupMocks: func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock) {
				clients.On("FetchClient", mock.Anything, "ira@example.com").
					Return(&models.Client{Email: "ira@example.com", Balance: 20}, nil).Once()
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").
					Return(&models.Vinyl{ID: vinyl.ID, Title: vinyl.Title, Price: 10, Stock: 0}, nil).Once()
			},
			wantErr: ErrNoStock,
		},
		{
			name: "funds check wins over stock check",
			setupMocks: func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock) {
				clients.On("FetchClient", mock.Anything, "ira@example.com").
					Return(&models.Client{Email: "ira@example.com", Balance: 5}, nil).Once()
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").
					Return(&models.Vinyl{ID: vinyl.ID, Title: vinyl.Title, Price: 10, Stock: 0}, nil).Once()
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "debit failure stops the sequence",
			setupMocks: func(clients *ClientsMock, vinyls *VinylsMock, repo *RepoMock) {
				clients.On("FetchClient", mock.Anything, "ira@example.com").
					Return(&models.Client{Email: "ira@example.com", Balance: 20}, nil).Once()
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
				clients.On("UpdateClientBalance", mock.Anything, "ira@example.com", -10.0).
					Return((*models.Client)(nil), errors.New("back-office is down")).Once()
			},
			wantErr: errors.New("Error renting vinyl: back-office is down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := new(ClientsMock)
			vinyls := new(VinylsMock)
			repo := new(RepoMock)
			svc := NewRentalService(clients, vinyls, repo, nil, NewNoopLogger())

			tt.setupMocks(clients, vinyls, repo)

			got, err := svc.RentVinyl(context.Background(), "ira@example.com", "Abbey Road")
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantBalance, got.Balance)
			}

			clients.AssertExpectations(t)
			vinyls.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestRental_RentVinyl_PublishesEvent(t *testing.T) {
	clients := new(ClientsMock)
	vinyls := new(VinylsMock)
	repo := new(RepoMock)
	publisher := new(PublisherMock)
	svc := NewRentalService(clients, vinyls, repo, publisher, NewNoopLogger())

	vinyl := models.Vinyl{ID: "a5b2c932-4bd8-41e5-b0a7-8a2f3c1d9e60", Title: "Abbey Road", Price: 10, Stock: 3}
	clients.On("FetchClient", mock.Anything, "ira@example.com").
		Return(&models.Client{Email: "ira@example.com", Balance: 100}, nil).Once()
	vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
	clients.On("UpdateClientBalance", mock.Anything, "ira@example.com", -10.0).
		Return(&models.Client{Email: "ira@example.com", Balance: 90}, nil).Once()
	vinyls.On("UpdateVinylStock", mock.Anything, "Abbey Road", -1).
		Return(&models.Vinyl{ID: vinyl.ID, Stock: 2}, nil).Once()
	repo.On("CreateRental", mock.Anything, mock.AnythingOfType("models.Rental")).Return(nil).Once()
	// Сбой публикации не влияет на результат аренды.
	publisher.On("Publish", "vinyl.rented", mock.MatchedBy(func(e RentalEvent) bool {
		return e.ClientEmail == "ira@example.com" && e.VinylID == vinyl.ID && e.Title == "Abbey Road"
	})).Return(errors.New("broker is down")).Once()

	got, err := svc.RentVinyl(context.Background(), "ira@example.com", "Abbey Road")
	assert.NoError(t, err)
	assert.Equal(t, 90.0, got.Balance)
	publisher.AssertExpectations(t)
}

func TestRental_ReturnVinyl(t *testing.T) {
	vinylID := "a5b2c932-4bd8-41e5-b0a7-8a2f3c1d9e60"
	vinyl := models.Vinyl{ID: vinylID, Title: "Abbey Road", Price: 10, Stock: 0}
	closed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMocks func(vinyls *VinylsMock, repo *RepoMock)
		wantErr    error
	}{
		{
			name: "success return closes open rental",
			setupMocks: func(vinyls *VinylsMock, repo *RepoMock) {
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
				vinyls.On("UpdateVinylStock", mock.Anything, "Abbey Road", 1).
					Return(&models.Vinyl{ID: vinylID, Stock: 1}, nil).Once()
				repo.On("GetRentalsByClient", mock.Anything, "ira@example.com").
					Return([]*models.Rental{
						{ClientID: "ira@example.com", VinylID: vinylID, RentalDate: closed},
					}, nil).Once()
				repo.On("UpdateRentalByClientAndVinyl", mock.Anything, "ira@example.com",
					mock.MatchedBy(func(r models.Rental) bool {
						return r.VinylID == vinylID && !r.Open()
					})).Return(int64(1), nil).Once()
			},
		},
		{
			name: "closed rentals do not match, stock already incremented",
			setupMocks: func(vinyls *VinylsMock, repo *RepoMock) {
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
				vinyls.On("UpdateVinylStock", mock.Anything, "Abbey Road", 1).
					Return(&models.Vinyl{ID: vinylID, Stock: 1}, nil).Once()
				repo.On("GetRentalsByClient", mock.Anything, "ira@example.com").
					Return([]*models.Rental{
						{ClientID: "ira@example.com", VinylID: vinylID, RentalDate: closed, ReturnDate: &closed},
					}, nil).Once()
			},
			wantErr: ErrRentalNotFound,
		},
		{
			name: "no rentals at all",
			setupMocks: func(vinyls *VinylsMock, repo *RepoMock) {
				vinyls.On("FetchVinyl", mock.Anything, "Abbey Road").Return(&vinyl, nil).Once()
				vinyls.On("UpdateVinylStock", mock.Anything, "Abbey Road", 1).
					Return(&models.Vinyl{ID: vinylID, Stock: 1}, nil).Once()
				repo.On("GetRentalsByClient", mock.Anything, "ira@example.com").
					Return([]*models.Rental{}, nil).Once()
			},
			wantErr: ErrRentalNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := new(ClientsMock)
			vinyls := new(VinylsMock)
			repo := new(RepoMock)
			svc := NewRentalService(clients, vinyls, repo, nil, NewNoopLogger())

			tt.setupMocks(vinyls, repo)

			err := svc.ReturnVinyl(context.Background(), "ira@example.com", "Abbey Road")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			vinyls.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}
