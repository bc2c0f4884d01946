package userupdate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int64, input models.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, input)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/auth/users/"+id+"/", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "обновление только имени",
			id:   "5",
			body: `{"first_name":"Ivan"}`,
			setupMock: func(m *MockService) {
				firstName := "Ivan"
				m.On("Update", mock.Anything, int64(5), models.UpdateUserInput{FirstName: &firstName}).
					Return(&models.User{ID: 5, Email: "user@example.com", FirstName: "Ivan"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"first_name":"Ivan"`,
		},
		{
			name:           "некорректный id в URL",
			id:             "abc",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode id from url`,
		},
		{
			name:           "некорректный формат почты",
			id:             "5",
			body:           `{"email":"bad email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"email":"invalid email format"`,
		},
		{
			name:           "слабый пароль",
			id:             "5",
			body:           `{"password":"short"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"password":"password does not meet requirements"`,
		},
		{
			name: "пользователь не найден",
			id:   "404",
			body: `{"first_name":"Ivan"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(404), mock.Anything).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "почта уже занята",
			id:   "5",
			body: `{"email":"taken@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(5), mock.Anything).
					Return(nil, &storage.ConflictError{Field: "email"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"email":"already exists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, newRequest(tt.id, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
