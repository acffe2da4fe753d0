package inventoryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/geekshirt/order-service/internal/service/models/orderitem"
	"github.com/spf13/viper"
)

// Client decrements stock in the inventory service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    viper.GetString("clients.inventory.base_url"),
	}
}

type decrementRequest struct {
	Items []decrementItem `json:"items"`
}

type decrementItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// Decrement lowers stock for every line item in one call.
func (c *Client) Decrement(ctx context.Context, items []orderitem.OrderItem) error {
	payload := decrementRequest{Items: make([]decrementItem, len(items))}
	for i, item := range items {
		payload.Items[i] = decrementItem{SKU: item.SKU, Quantity: item.Quantity}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode decrement request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/inventory/decrement",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("failed to build decrement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call inventory service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}

	return nil
}
