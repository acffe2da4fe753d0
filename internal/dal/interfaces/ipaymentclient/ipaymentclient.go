package ipaymentclient

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/shopspring/decimal"
)

// IPaymentClient authorizes payments against the processor.
type IPaymentClient interface {
	Authorize(ctx context.Context, acc account.Account, amount decimal.Decimal) (payment.Authorization, error)
}
