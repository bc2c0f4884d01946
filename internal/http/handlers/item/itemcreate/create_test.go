package itemcreate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/invtrack/inventtrack/internal/http/middlewarectx"
	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, input models.CreateItemInput, actorID int64) (*models.Item, error) {
	args := m.Called(ctx, input, actorID)
	if it := args.Get(0); it != nil {
		return it.(*models.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(body string, claims *jwt.Claims) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/inventory/item/", strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.ClaimsKey, claims))
	}
	return req
}

func testClaims() *jwt.Claims {
	return &jwt.Claims{UserID: 3, Email: "staff@example.com"}
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		body           string
		claims         *jwt.Claims
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешное создание",
			body:   `{"name":"Drill","sku":"DRL-001","category_id":1,"quantity":4,"price":"99.90"}`,
			claims: testClaims(),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(in models.CreateItemInput) bool {
					return in.Name == "Drill" && in.SKU == "DRL-001" &&
						in.CategoryID == 1 && in.Quantity == 4 &&
						in.Price.Equal(decimal.RequireFromString("99.90"))
				}), int64(3)).Return(&models.Item{ID: 10, Name: "Drill", SKU: "DRL-001"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"sku":"DRL-001"`,
		},
		{
			name:           "нет claims в контексте",
			body:           `{"name":"Drill","sku":"DRL-001","category_id":1,"price":"1.00"}`,
			claims:         nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `authentication required`,
		},
		{
			name:           "отрицательное количество",
			body:           `{"name":"Drill","sku":"DRL-001","category_id":1,"quantity":-1,"price":"1.00"}`,
			claims:         testClaims(),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Quantity":"value must not be negative"`,
		},
		{
			name:           "цена с тремя знаками после запятой",
			body:           `{"name":"Drill","sku":"DRL-001","category_id":1,"price":"10.999"}`,
			claims:         testClaims(),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"price":"price must be non-negative with at most two decimal places"`,
		},
		{
			name:   "категория не существует",
			body:   `{"name":"Drill","sku":"DRL-001","category_id":99,"price":"1.00"}`,
			claims: testClaims(),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, int64(3)).
					Return(nil, storage.ErrCategoryMissing)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"category_id":"category does not exist"`,
		},
		{
			name:   "дубликат SKU",
			body:   `{"name":"Drill","sku":"DRL-001","category_id":1,"price":"1.00"}`,
			claims: testClaims(),
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, int64(3)).
					Return(nil, &storage.ConflictError{Field: "sku"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"sku":"already exists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			w := httptest.NewRecorder()
			New(logger, mockService).ServeHTTP(w, newRequest(tt.body, tt.claims))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
