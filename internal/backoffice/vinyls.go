package backoffice

import (
	"context"
	"fmt"
	"net/http"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// FetchAllVinyls запрашивает весь каталог пластинок.
func (c *Client) FetchAllVinyls(ctx context.Context) ([]*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/vinyls/all-vinyls", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("Error fetching all vinyl data: %w", err)
	}

	var vinyls []*models.Vinyl
	if err := c.do(req, &vinyls, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error fetching all vinyl data: %w", err)
	}
	return vinyls, nil
}

// FetchVinyl запрашивает пластинку по названию.
func (c *Client) FetchVinyl(ctx context.Context, title string) (*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/vinyls/vinyl",
		map[string]string{"title": title}, nil)
	if err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data: %w", err)
	}

	var vinyl models.Vinyl
	if err := c.do(req, &vinyl, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data: %w", err)
	}
	return &vinyl, nil
}

// FetchVinylsByArtist запрашивает пластинки исполнителя.
func (c *Client) FetchVinylsByArtist(ctx context.Context, artist string) ([]*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/vinyls/by-artist",
		map[string]string{"artist": artist}, nil)
	if err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data by artist: %w", err)
	}

	var vinyls []*models.Vinyl
	if err := c.do(req, &vinyls, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data by artist: %w", err)
	}
	return vinyls, nil
}

// FetchVinylsByGenre запрашивает пластинки жанра.
func (c *Client) FetchVinylsByGenre(ctx context.Context, genre string) ([]*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/vinyls/by-genre",
		map[string]string{"genre": genre}, nil)
	if err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data by genre: %w", err)
	}

	var vinyls []*models.Vinyl
	if err := c.do(req, &vinyls, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error fetching vinyl data by genre: %w", err)
	}
	return vinyls, nil
}

type priceRequest struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// UpdateVinylPrice устанавливает новую цену пластинки (абсолютное значение).
func (c *Client) UpdateVinylPrice(ctx context.Context, title string, price float64) (*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/vinyls/update-price", nil,
		priceRequest{Title: title, Price: price})
	if err != nil {
		return nil, fmt.Errorf("Error updating vinyl price: %w", err)
	}

	var vinyl models.Vinyl
	if err := c.do(req, &vinyl, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error updating vinyl price: %w", err)
	}
	return &vinyl, nil
}

type stockRequest struct {
	Title string `json:"title"`
	Stock int    `json:"stock"`
}

// UpdateVinylStock изменяет остаток пластинки на знаковую дельту.
func (c *Client) UpdateVinylStock(ctx context.Context, title string, delta int) (*models.Vinyl, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/vinyls/update-stock", nil,
		stockRequest{Title: title, Stock: delta})
	if err != nil {
		return nil, fmt.Errorf("Error updating vinyl stock: %w", err)
	}

	var vinyl models.Vinyl
	if err := c.do(req, &vinyl, ErrVinylNotFound); err != nil {
		return nil, fmt.Errorf("Error updating vinyl stock: %w", err)
	}
	return &vinyl, nil
}
