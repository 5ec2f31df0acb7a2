package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// CreateVinyl сохраняет новую пластинку.
func (s *Storage) CreateVinyl(ctx context.Context, vinyl models.Vinyl) error {
	const op = "storage.CreateVinyl"

	query := `INSERT INTO vinyls (vinyl_id, title, artist, genre, price, stock, entrance_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.DB.ExecContext(ctx, query,
		vinyl.ID, vinyl.Title, vinyl.Artist, vinyl.Genre,
		vinyl.Price, vinyl.Stock, vinyl.EntranceDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetVinylByTitle возвращает пластинку по названию.
func (s *Storage) GetVinylByTitle(ctx context.Context, title string) (*models.Vinyl, error) {
	const op = "storage.GetVinylByTitle"

	query := `SELECT vinyl_id, title, artist, genre, price, stock, entrance_date
			  FROM vinyls
			  WHERE title = $1`
	v := &models.Vinyl{}
	row := s.DB.QueryRowContext(ctx, query, title)
	if err := row.Scan(&v.ID, &v.Title, &v.Artist, &v.Genre,
		&v.Price, &v.Stock, &v.EntranceDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrVinylNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// GetAllVinyls возвращает весь каталог.
func (s *Storage) GetAllVinyls(ctx context.Context) ([]*models.Vinyl, error) {
	const op = "storage.GetAllVinyls"
	return s.queryVinyls(ctx, op, `SELECT vinyl_id, title, artist, genre, price, stock, entrance_date FROM vinyls`)
}

// GetVinylsByArtist возвращает пластинки исполнителя.
func (s *Storage) GetVinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error) {
	const op = "storage.GetVinylsByArtist"
	return s.queryVinyls(ctx, op,
		`SELECT vinyl_id, title, artist, genre, price, stock, entrance_date FROM vinyls WHERE artist = $1`, artist)
}

// GetVinylsByGenre возвращает пластинки жанра.
func (s *Storage) GetVinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error) {
	const op = "storage.GetVinylsByGenre"
	return s.queryVinyls(ctx, op,
		`SELECT vinyl_id, title, artist, genre, price, stock, entrance_date FROM vinyls WHERE genre = $1`, genre)
}

func (s *Storage) queryVinyls(ctx context.Context, op, query string, args ...any) ([]*models.Vinyl, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Vinyl
	for rows.Next() {
		var v models.Vinyl
		if err = rows.Scan(&v.ID, &v.Title, &v.Artist, &v.Genre,
			&v.Price, &v.Stock, &v.EntranceDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateVinylByTitle перезаписывает изменяемые поля пластинки по названию
// и возвращает количество изменённых строк.
func (s *Storage) UpdateVinylByTitle(ctx context.Context, title string, vinyl models.Vinyl) (int64, error) {
	const op = "storage.UpdateVinylByTitle"

	query := `UPDATE vinyls
			  SET genre = $1, artist = $2, price = $3, stock = $4
			  WHERE title = $5`
	res, err := s.DB.ExecContext(ctx, query,
		vinyl.Genre, vinyl.Artist, vinyl.Price, vinyl.Stock, title)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteVinylByTitle удаляет пластинку по названию.
func (s *Storage) DeleteVinylByTitle(ctx context.Context, title string) (int64, error) {
	const op = "storage.DeleteVinylByTitle"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM vinyls WHERE title = $1`, title)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
