package categoryupdate

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

func (m *MockService) Update(ctx context.Context, id int64, input models.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, id, input)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/inventory/category/"+id+"/", strings.NewReader(body))
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
			name: "успешное переименование",
			id:   "1",
			body: `{"name":"Hardware"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), models.CategoryInput{Name: "Hardware"}).
					Return(&models.Category{ID: 1, Name: "Hardware"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Hardware"`,
		},
		{
			name: "категория не найдена",
			id:   "99",
			body: `{"name":"Hardware"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(99), mock.Anything).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `category not found`,
		},
		{
			name:           "пустое имя",
			id:             "1",
			body:           `{"name":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Name":"this field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			w := httptest.NewRecorder()
			New(logger, mockService).ServeHTTP(w, newRequest(tt.id, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
