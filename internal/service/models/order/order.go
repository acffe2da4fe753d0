package order

import (
	"time"

	"github.com/geekshirt/order-service/internal/service/models/orderitem"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status string

const (
	// StatusPending means payment was approved and the order awaits shipment.
	StatusPending Status = "PENDING"
	// StatusDenied means payment was rejected; the state is terminal.
	StatusDenied Status = "DENIED"
)

func (s Status) String() string {
	return string(s)
}

// Order represents an order in the system. It is created once per request
// and persisted exactly once regardless of the payment outcome.
type Order struct {
	ID              string                `json:"id"`
	AccountID       string                `json:"accountId"`
	Details         []orderitem.OrderItem `json:"details"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	TotalTax        decimal.Decimal       `json:"totalTax"`
	TotalAmountTax  decimal.Decimal       `json:"totalAmountTax"`
	Status          Status                `json:"status"`
	PaymentStatus   payment.Status        `json:"paymentStatus"`
	TransactionDate time.Time             `json:"transactionDate"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}
