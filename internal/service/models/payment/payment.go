package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payment processor's decision for an authorization attempt.
type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusDenied   Status = "DENIED"
)

func (s Status) String() string {
	return string(s)
}

// Authorization is the result of a payment authorization attempt.
type Authorization struct {
	Status          Status          `json:"status"`
	AuthorizationID string          `json:"authorizationId"`
	Amount          decimal.Decimal `json:"amount"`
	ProcessedAt     time.Time       `json:"processedAt"`
}
