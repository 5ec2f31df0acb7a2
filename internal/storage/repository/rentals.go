package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// CreateRental добавляет запись аренды в журнал.
func (s *Storage) CreateRental(ctx context.Context, rental models.Rental) error {
	const op = "storage.CreateRental"

	query := `INSERT INTO rentals (client_id, vinyl_id, rental_date, return_date)
			  VALUES ($1, $2, $3, $4)`
	_, err := s.DB.ExecContext(ctx, query,
		rental.ClientID, rental.VinylID, rental.RentalDate, rental.ReturnDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetAllRentals возвращает весь журнал аренды.
func (s *Storage) GetAllRentals(ctx context.Context) ([]*models.Rental, error) {
	const op = "storage.GetAllRentals"
	return s.queryRentals(ctx, op,
		`SELECT client_id, vinyl_id, rental_date, return_date FROM rentals`)
}

// GetRentalsByClient возвращает все записи аренды клиента.
func (s *Storage) GetRentalsByClient(ctx context.Context, clientID string) ([]*models.Rental, error) {
	const op = "storage.GetRentalsByClient"
	return s.queryRentals(ctx, op,
		`SELECT client_id, vinyl_id, rental_date, return_date FROM rentals WHERE client_id = $1`, clientID)
}

func (s *Storage) queryRentals(ctx context.Context, op, query string, args ...any) ([]*models.Rental, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Rental
	for rows.Next() {
		var r models.Rental
		var returnDate sql.NullTime
		if err = rows.Scan(&r.ClientID, &r.VinylID, &r.RentalDate, &returnDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if returnDate.Valid {
			r.ReturnDate = &returnDate.Time
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateRentalByClientAndVinyl перезаписывает даты открытой записи аренды,
// найденной по паре (клиент, пластинка), и возвращает количество
// изменённых строк. Закрытые записи той же пары не затрагиваются.
func (s *Storage) UpdateRentalByClientAndVinyl(ctx context.Context, clientID string, rental models.Rental) (int64, error) {
	const op = "storage.UpdateRentalByClientAndVinyl"

	query := `UPDATE rentals
			  SET rental_date = $1, return_date = $2
			  WHERE vinyl_id = $3 AND client_id = $4 AND return_date IS NULL`
	res, err := s.DB.ExecContext(ctx, query,
		rental.RentalDate, rental.ReturnDate, rental.VinylID, clientID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
