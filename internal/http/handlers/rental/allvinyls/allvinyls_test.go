package allvinyls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/melomanka/vinyl-rental/internal/backoffice"
	"github.com/melomanka/vinyl-rental/internal/models"
)

// MockService реализует интерфейс allvinyls.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AllVinyls(ctx context.Context) ([]*models.Vinyl, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.Vinyl), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAllVinylsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение каталога",
			setupMock: func(m *MockService) {
				m.On("AllVinyls", mock.Anything).Return([]*models.Vinyl{
					{Title: "Abbey Road", Artist: "The Beatles"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Abbey Road"`,
		},
		{
			name: "пустой каталог back-office отвечает 404",
			setupMock: func(m *MockService) {
				// Удалённый клиент оборачивает 404 back-office со стабильным префиксом.
				m.On("AllVinyls", mock.Anything).
					Return(nil, fmt.Errorf("Error fetching all vinyl data: %w", backoffice.ErrVinylNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No vinyls found"}`,
		},
		{
			name: "пустой срез без ошибки",
			setupMock: func(m *MockService) {
				m.On("AllVinyls", mock.Anything).Return([]*models.Vinyl{}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No vinyls found"}`,
		},
		{
			name: "ошибка back-office",
			setupMock: func(m *MockService) {
				m.On("AllVinyls", mock.Anything).Return(nil, errors.New("back-office is down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/all-vinyls", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
