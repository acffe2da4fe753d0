package listorders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	orders []order.Order
	err    error
	filter *order.QueryOrdersModel
}

func (s *stubService) GetOrders(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	s.filter = filter
	return s.orders, s.err
}

func TestListOrdersDecodesFilter(t *testing.T) {
	svc := &stubService{orders: []order.Order{{ID: "ord-0001"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/orders?accountIds=12345678&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	ListOrders(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.filter)
	assert.Equal(t, []string{"12345678"}, svc.filter.AccountIds)
	assert.Equal(t, 10, svc.filter.Limit)
	assert.Equal(t, 20, svc.filter.Offset)
	assert.Contains(t, rec.Body.String(), "ord-0001")
}

func TestListOrdersServiceFailure(t *testing.T) {
	svc := &stubService{err: errors.New("query timeout")}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	ListOrders(rec, req, svc)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
