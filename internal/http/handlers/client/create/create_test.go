package create

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
	"github.com/melomanka/vinyl-rental/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateClientHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"email":"ira@example.com","name":"Ira","password":"secret","age":25,"gender":"female","balance":20}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("models.CreateClientRequest")).
					Return(&models.Client{Email: "ira@example.com", Balance: 20}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Client created successfully"}`,
		},
		{
			name: "email уже занят",
			body: `{"email":"ira@example.com","name":"Ira","password":"secret","age":25,"gender":"female","balance":20}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("models.CreateClientRequest")).
					Return(nil, repository.ErrClientExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Client already exists"}`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"not-an-email","name":"Ira","password":"secret"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "ошибка хранилища",
			body: `{"email":"ira@example.com","name":"Ira","password":"secret","age":25,"gender":"female","balance":20}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("models.CreateClientRequest")).
					Return(nil, errors.New("db error"))
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

			req := httptest.NewRequest(http.MethodPost, "/api/clients/client", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
