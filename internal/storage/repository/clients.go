package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// CreateClient сохраняет нового клиента и возвращает его идентификатор.
func (s *Storage) CreateClient(ctx context.Context, client models.Client) (string, error) {
	const op = "storage.CreateClient"

	var newID string
	query := `INSERT INTO clients (name, email, password, age, gender, balance)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		client.Name, client.Email, client.PasswordHash, client.Age,
		client.Gender, client.Balance).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetClientByEmail возвращает клиента по email.
func (s *Storage) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	const op = "storage.GetClientByEmail"

	query := `SELECT id, name, email, password, age, gender, balance
			  FROM clients
			  WHERE email = $1`
	c := &models.Client{}
	var age sql.NullInt64
	var gender sql.NullString
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash,
		&age, &gender, &c.Balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrClientNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.Age = int(age.Int64)
	c.Gender = gender.String
	return c, nil
}

// GetAllClients возвращает всех клиентов.
func (s *Storage) GetAllClients(ctx context.Context) ([]*models.Client, error) {
	const op = "storage.GetAllClients"

	query := `SELECT id, name, email, password, age, gender, balance
			  FROM clients`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Client
	for rows.Next() {
		var c models.Client
		var age sql.NullInt64
		var gender sql.NullString
		if err = rows.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash,
			&age, &gender, &c.Balance); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		c.Age = int(age.Int64)
		c.Gender = gender.String
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateClientByEmail перезаписывает данные клиента по email
// и возвращает количество изменённых строк.
func (s *Storage) UpdateClientByEmail(ctx context.Context, email string, client models.Client) (int64, error) {
	const op = "storage.UpdateClientByEmail"

	query := `UPDATE clients
			  SET name = $1, age = $2, gender = $3, balance = $4
			  WHERE email = $5`
	res, err := s.DB.ExecContext(ctx, query,
		client.Name, client.Age, client.Gender, client.Balance, email)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteClientByEmail удаляет клиента по email.
func (s *Storage) DeleteClientByEmail(ctx context.Context, email string) (int64, error) {
	const op = "storage.DeleteClientByEmail"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM clients WHERE email = $1`, email)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
