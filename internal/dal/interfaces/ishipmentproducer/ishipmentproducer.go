package ishipmentproducer

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/account"
)

// IShipmentProducer publishes shipment-request events for approved orders.
type IShipmentProducer interface {
	Send(ctx context.Context, orderID string, acc account.Account) error
}
