package paymentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Client authorizes payments against the payment processor over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    viper.GetString("clients.payment.base_url"),
	}
}

type authorizeRequest struct {
	AccountID    string          `json:"accountId"`
	PaymentToken string          `json:"paymentToken"`
	Amount       decimal.Decimal `json:"amount"`
}

// Authorize submits the taxed order total for authorization. The processor
// answers with an APPROVED or DENIED decision; a denial is a result, not
// an error.
func (c *Client) Authorize(ctx context.Context, acc account.Account, amount decimal.Decimal) (payment.Authorization, error) {
	body, err := json.Marshal(authorizeRequest{
		AccountID:    acc.ID,
		PaymentToken: acc.PaymentInstrument.Token,
		Amount:       amount,
	})
	if err != nil {
		return payment.Authorization{}, fmt.Errorf("failed to encode authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/payments/authorize",
		bytes.NewReader(body),
	)
	if err != nil {
		return payment.Authorization{}, fmt.Errorf("failed to build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payment.Authorization{}, fmt.Errorf("failed to call payment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return payment.Authorization{}, fmt.Errorf("payment service returned status %d", resp.StatusCode)
	}

	var auth payment.Authorization
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return payment.Authorization{}, fmt.Errorf("failed to decode authorize response: %w", err)
	}

	return auth, nil
}
