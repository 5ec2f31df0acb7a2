package backoffice

import (
	"context"
	"fmt"
	"net/http"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// FetchClient запрашивает клиента по email.
func (c *Client) FetchClient(ctx context.Context, email string) (*models.Client, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/clients/client",
		map[string]string{"email": email}, nil)
	if err != nil {
		return nil, fmt.Errorf("Error fetching client data: %w", err)
	}

	var client models.Client
	if err := c.do(req, &client, ErrClientNotFound); err != nil {
		return nil, fmt.Errorf("Error fetching client data: %w", err)
	}
	return &client, nil
}

type balanceRequest struct {
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// UpdateClientBalance изменяет баланс клиента на знаковую дельту
// и возвращает клиента с новым балансом.
func (c *Client) UpdateClientBalance(ctx context.Context, email string, delta float64) (*models.Client, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/clients/balance", nil,
		balanceRequest{Email: email, Balance: delta})
	if err != nil {
		return nil, fmt.Errorf("Error updating client balance: %w", err)
	}

	var client models.Client
	if err := c.do(req, &client, ErrClientNotFound); err != nil {
		return nil, fmt.Errorf("Error updating client balance: %w", err)
	}
	return &client, nil
}
