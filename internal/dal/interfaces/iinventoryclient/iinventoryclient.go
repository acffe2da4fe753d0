package iinventoryclient

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/orderitem"
)

// IInventoryClient decrements stock for ordered line items.
type IInventoryClient interface {
	Decrement(ctx context.Context, items []orderitem.OrderItem) error
}
