package itemremove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/invtrack/inventtrack/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/inventory/item/"+id+"/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("успешное удаление", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Delete", mock.Anything, int64(10)).Return(nil)

		w := httptest.NewRecorder()
		New(logger, mockService).ServeHTTP(w, newRequest("10"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("позиция не найдена", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Delete", mock.Anything, int64(404)).Return(storage.ErrNotFound)

		w := httptest.NewRecorder()
		New(logger, mockService).ServeHTTP(w, newRequest("404"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "item not found")
	})
}
