// Package backoffice реализует типизированные HTTP-клиенты к сервису
// back-office: API клиентов и API пластинок. Каждая ошибка оборачивается
// со стабильным префиксом сообщения, чтобы вызывающая сторона могла
// детерминированно проверять его в тестах.
package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Ошибки прямых чтений. Обработчики транслируют их в 404.
var (
	// ErrClientNotFound возвращается, когда back-office не знает такого клиента.
	ErrClientNotFound = errors.New("client not found")
	// ErrVinylNotFound возвращается, когда back-office не знает такой пластинки.
	ErrVinylNotFound = errors.New("vinyl not found")
)

// Client — HTTP-клиент к back-office.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиент back-office с адресом вида http://back-office:3000.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query map[string]string, body any) (*http.Request, error) {
	url := c.baseURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	return req, nil
}

// do выполняет запрос и декодирует успешный ответ в out.
// Ответ 404 превращается в notFound, любой другой неуспешный статус — в ошибку.
func (c *Client) do(req *http.Request, out any, notFound error) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
