package iorderrepo

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/order"
)

// IOrderRepository is the order store the workflow persists into.
type IOrderRepository interface {
	// Save persists the order with its details and returns the stored
	// representation, including the generated order id.
	Save(ctx context.Context, o order.Order) (order.Order, error)

	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}
