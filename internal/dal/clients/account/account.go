package accountclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/geekshirt/order-service/internal/dal/redis"
	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/spf13/viper"
)

const defaultCacheTTL = 5 * time.Minute

// Client resolves accounts against the customer service over HTTP, with a
// read-through Redis cache in front of it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      redis.Cache
	cacheTTL   time.Duration
}

// NewClient creates an account client. The cache may be nil, in which case
// every lookup goes to the customer service.
func NewClient(cache redis.Cache) *Client {
	ttl := viper.GetDuration("clients.account.cache_ttl")
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    viper.GetString("clients.account.base_url"),
		cache:      cache,
		cacheTTL:   ttl,
	}
}

// FindAccount returns the account for the given id, or nil when the
// customer service reports no such account.
func (c *Client) FindAccount(ctx context.Context, accountID string) (*account.Account, error) {
	if acc := c.fromCache(ctx, accountID); acc != nil {
		return acc, nil
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/accounts/%s", c.baseURL, accountID),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build account request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call account service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account service returned status %d", resp.StatusCode)
	}

	var acc account.Account
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode account response: %w", err)
	}

	c.toCache(ctx, accountID, &acc)

	return &acc, nil
}

func (c *Client) fromCache(ctx context.Context, accountID string) *account.Account {
	if c.cache == nil {
		return nil
	}

	cached, err := c.cache.Get(ctx, c.cache.GenerateKey("account", accountID))
	if err != nil {
		slog.Warn("Account cache lookup failed", "account_id", accountID, "error", err)
		return nil
	}
	if cached == "" {
		return nil
	}

	var acc account.Account
	if err := json.Unmarshal([]byte(cached), &acc); err != nil {
		slog.Warn("Failed to decode cached account", "account_id", accountID, "error", err)
		return nil
	}

	return &acc
}

func (c *Client) toCache(ctx context.Context, accountID string, acc *account.Account) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(acc)
	if err != nil {
		return
	}

	key := c.cache.GenerateKey("account", accountID)
	if err := c.cache.Set(ctx, key, string(data), c.cacheTTL); err != nil {
		slog.Warn("Failed to cache account", "account_id", accountID, "error", err)
	}
}
