package balance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/melomanka/vinyl-rental/internal/models"
)

// MockService реализует интерфейс balance.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateBalance(ctx context.Context, email string, delta float64) (*models.Client, error) {
	args := m.Called(ctx, email, delta)
	if res := args.Get(0); res != nil {
		return res.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestBalanceHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное пополнение баланса",
			body: `{"email":"ira@example.com","balance":15}`,
			setupMock: func(m *MockService) {
				m.On("UpdateBalance", mock.Anything, "ira@example.com", 15.0).
					Return(&models.Client{Email: "ira@example.com", Balance: 25}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Balance updated successfully. Your balance is now 25.00"`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"not-an-email","balance":15}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "ошибка back-office",
			body: `{"email":"ira@example.com","balance":15}`,
			setupMock: func(m *MockService) {
				m.On("UpdateBalance", mock.Anything, "ira@example.com", 15.0).
					Return(nil, errors.New("back-office is down"))
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

			req := httptest.NewRequest(http.MethodPost, "/balance", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
