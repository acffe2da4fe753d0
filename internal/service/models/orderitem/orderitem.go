package orderitem

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a line-item snapshot within an order.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   string          `json:"orderId"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
