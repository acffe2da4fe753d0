package order

import "github.com/geekshirt/order-service/internal/service/models/orderitem"

// Request is an incoming order-creation request.
type Request struct {
	AccountID string                `json:"accountId"`
	Items     []orderitem.OrderItem `json:"items"`
}
