package createorder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geekshirt/order-service/internal/apperrors"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	created order.Order
	err     error
	req     order.Request
}

func (s *stubService) CreateOrder(_ context.Context, req order.Request) (order.Order, error) {
	s.req = req
	return s.created, s.err
}

const validBody = `{
	"accountId": "12345678",
	"items": [
		{"sku": "TSHIRT-XL", "quantity": 1, "unitPrice": "1000.00"},
		{"sku": "STICKER", "quantity": 1, "unitPrice": "5.00"}
	]
}`

func doRequest(t *testing.T, svc *stubService, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrderReturnsCreated(t *testing.T) {
	svc := &stubService{created: order.Order{ID: "ord-0001", AccountID: "12345678"}}

	rec := doRequest(t, svc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "ord-0001")
	assert.Equal(t, "12345678", svc.req.AccountID)
	assert.Len(t, svc.req.Items, 2)
}

func TestCreateOrderStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"incorrect request", apperrors.ErrIncorrectRequest, http.StatusBadRequest},
		{"account not found", apperrors.ErrAccountNotFound, http.StatusNotFound},
		{"payment not accepted", apperrors.ErrPaymentNotAccepted, http.StatusPaymentRequired},
		{"collaborator failure", errors.New("failed to save order: timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}

			rec := doRequest(t, svc, validBody)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.err.Error())
		})
	}
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	svc := &stubService{}

	rec := doRequest(t, svc, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
