package iorderitem

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/orderitem"
)

// IOrderItemPostgresRepository is the row-level order-detail repository
// used inside a unit of work.
type IOrderItemPostgresRepository interface {
	BulkInsert(ctx context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error)
	QueryByOrderIds(ctx context.Context, orderIds []string) ([]orderitem.OrderItem, error)
}
