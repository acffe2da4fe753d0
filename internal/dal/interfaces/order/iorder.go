package iorder

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/order"
)

// IOrderPostgresRepository is the row-level order repository used inside
// a unit of work.
type IOrderPostgresRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}
