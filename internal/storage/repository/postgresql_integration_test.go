package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melomanka/vinyl-rental/internal/models"
)

func TestStorage_Clients(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	client := models.Client{
		Name:         "Ira",
		Email:        "ira@example.com",
		Age:          25,
		Gender:       "female",
		Balance:      20,
		PasswordHash: "hashedpassword",
	}

	id, err := storage.CreateClient(ctx, client)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := storage.GetClientByEmail(ctx, "ira@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 20.0, got.Balance)
	assert.Equal(t, 25, got.Age)

	_, err = storage.GetClientByEmail(ctx, "unknown@example.com")
	assert.ErrorIs(t, err, ErrClientNotFound)

	got.Balance = 10
	count, err := storage.UpdateClientByEmail(ctx, "ira@example.com", *got)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := storage.GetClientByEmail(ctx, "ira@example.com")
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.Balance)

	all, err := storage.GetAllClients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	count, err = storage.DeleteClientByEmail(ctx, "ira@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.DeleteClientByEmail(ctx, "ira@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStorage_Vinyls(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	entranceDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	vinyl := models.Vinyl{
		ID:           uuid.New().String(),
		Title:        "Abbey Road",
		Artist:       "The Beatles",
		Genre:        "rock",
		Price:        10,
		Stock:        3,
		EntranceDate: entranceDate,
	}
	require.NoError(t, storage.CreateVinyl(ctx, vinyl))
	require.NoError(t, storage.CreateVinyl(ctx, models.Vinyl{
		ID: uuid.New().String(), Title: "Kind of Blue", Artist: "Miles Davis",
		Genre: "jazz", Price: 15, Stock: 1, EntranceDate: entranceDate,
	}))

	got, err := storage.GetVinylByTitle(ctx, "Abbey Road")
	require.NoError(t, err)
	assert.Equal(t, vinyl.ID, got.ID)
	assert.Equal(t, 3, got.Stock)

	_, err = storage.GetVinylByTitle(ctx, "Unknown Album")
	assert.ErrorIs(t, err, ErrVinylNotFound)

	all, err := storage.GetAllVinyls(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byArtist, err := storage.GetVinylsByArtist(ctx, "The Beatles")
	require.NoError(t, err)
	require.Len(t, byArtist, 1)
	assert.Equal(t, "Abbey Road", byArtist[0].Title)

	byGenre, err := storage.GetVinylsByGenre(ctx, "jazz")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Kind of Blue", byGenre[0].Title)

	got.Stock = 2
	got.Price = 12
	count, err := storage.UpdateVinylByTitle(ctx, "Abbey Road", *got)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := storage.GetVinylByTitle(ctx, "Abbey Road")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)
	assert.Equal(t, 12.0, updated.Price)

	// Отрицательный остаток отклоняет ограничение на уровне базы.
	got.Stock = -1
	_, err = storage.UpdateVinylByTitle(ctx, "Abbey Road", *got)
	assert.Error(t, err)

	count, err = storage.DeleteVinylByTitle(ctx, "Abbey Road")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStorage_Rentals(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	vinylID := uuid.New().String()
	rentalDate := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	rental := models.Rental{
		ClientID:   "ira@example.com",
		VinylID:    vinylID,
		RentalDate: rentalDate,
	}
	require.NoError(t, storage.CreateRental(ctx, rental))

	byClient, err := storage.GetRentalsByClient(ctx, "ira@example.com")
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.True(t, byClient[0].Open())
	assert.Equal(t, vinylID, byClient[0].VinylID)

	byOther, err := storage.GetRentalsByClient(ctx, "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, byOther)

	returnDate := rentalDate.Add(48 * time.Hour)
	closed := *byClient[0]
	closed.ReturnDate = &returnDate
	count, err := storage.UpdateRentalByClientAndVinyl(ctx, "ira@example.com", closed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	all, err := storage.GetAllRentals(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Open())
	require.NotNil(t, all[0].ReturnDate)
	assert.WithinDuration(t, returnDate, *all[0].ReturnDate, time.Second)
}

func TestStorage_Rentals_UpdateTouchesOnlyOpenRow(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	vinylID := uuid.New().String()
	firstRentalDate := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	firstReturnDate := firstRentalDate.Add(24 * time.Hour)
	secondRentalDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Закрытая аренда и повторная открытая аренда той же пары (клиент, пластинка).
	factory.CreateRental(t, "ira@example.com", vinylID, firstRentalDate, &firstReturnDate)
	factory.CreateRental(t, "ira@example.com", vinylID, secondRentalDate, nil)

	secondReturnDate := secondRentalDate.Add(48 * time.Hour)
	count, err := storage.UpdateRentalByClientAndVinyl(ctx, "ira@example.com", models.Rental{
		ClientID:   "ira@example.com",
		VinylID:    vinylID,
		RentalDate: secondRentalDate,
		ReturnDate: &secondReturnDate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rentals, err := storage.GetRentalsByClient(ctx, "ira@example.com")
	require.NoError(t, err)
	require.Len(t, rentals, 2)

	// Даты первой, давно закрытой записи не изменились.
	for _, r := range rentals {
		require.NotNil(t, r.ReturnDate)
		switch {
		case r.RentalDate.Equal(firstRentalDate):
			assert.WithinDuration(t, firstReturnDate, *r.ReturnDate, time.Second)
		case r.RentalDate.Equal(secondRentalDate):
			assert.WithinDuration(t, secondReturnDate, *r.ReturnDate, time.Second)
		default:
			t.Fatalf("unexpected rental_date %s", r.RentalDate)
		}
	}

	// Повторный возврат не находит открытой записи.
	count, err = storage.UpdateRentalByClientAndVinyl(ctx, "ira@example.com", models.Rental{
		ClientID:   "ira@example.com",
		VinylID:    vinylID,
		RentalDate: secondRentalDate,
		ReturnDate: &secondReturnDate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStorage_Rentals_Factory(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	rentalDate := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	returnDate := rentalDate.Add(24 * time.Hour)

	vinylID := uuid.New().String()
	factory.CreateRental(t, "ira@example.com", vinylID, rentalDate, &returnDate)
	factory.CreateRental(t, "ira@example.com", vinylID, rentalDate.Add(72*time.Hour), nil)

	rentals, err := storage.GetRentalsByClient(context.Background(), "ira@example.com")
	require.NoError(t, err)
	require.Len(t, rentals, 2)

	var open int
	for _, r := range rentals {
		if r.Open() {
			open++
		}
	}
	assert.Equal(t, 1, open)
}
