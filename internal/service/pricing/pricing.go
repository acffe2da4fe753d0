package pricing

import (
	"github.com/geekshirt/order-service/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// Totals holds the three computed amounts for an order.
// AmountTax is always Amount + Tax exactly.
type Totals struct {
	Amount    decimal.Decimal
	Tax       decimal.Decimal
	AmountTax decimal.Decimal
}

// Calculate computes subtotal, tax and total for the given line items.
// It is pure and does not validate: quantities must be positive and unit
// prices non-negative, which the caller guarantees. Tax is rounded to
// currency precision before the total is formed so the invariant holds.
func Calculate(items []orderitem.OrderItem, taxRate decimal.Decimal) Totals {
	amount := decimal.Zero
	for _, item := range items {
		amount = amount.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := amount.Mul(taxRate).Round(2)

	return Totals{
		Amount:    amount,
		Tax:       tax,
		AmountTax: amount.Add(tax),
	}
}
