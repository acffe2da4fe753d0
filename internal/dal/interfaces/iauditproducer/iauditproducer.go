package iauditproducer

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/order"
)

// IAuditProducer publishes order-created audit events for the audit consumer.
type IAuditProducer interface {
	LogOrdersCreated(ctx context.Context, orders []order.Order) error
}
