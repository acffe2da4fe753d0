package iaccountclient

import (
	"context"

	"github.com/geekshirt/order-service/internal/service/models/account"
)

// IAccountClient resolves customer accounts by id.
type IAccountClient interface {
	// FindAccount returns the account for the given id, or nil when no
	// account exists. An error means the lookup itself failed.
	FindAccount(ctx context.Context, accountID string) (*account.Account, error)
}
