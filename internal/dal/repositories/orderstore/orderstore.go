package orderstore

import (
	"context"
	"fmt"

	"github.com/geekshirt/order-service/internal/dal/postgres"
	"github.com/geekshirt/order-service/internal/dal/uow"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/geekshirt/order-service/internal/service/models/orderitem"
)

// OrderStore persists orders with their details in a single transaction.
type OrderStore struct {
	client *postgres.Client
}

// NewOrderStore creates a new Postgres-backed order store.
func NewOrderStore(client *postgres.Client) *OrderStore {
	return &OrderStore{
		client: client,
	}
}

// Save inserts the order row and its detail rows in one unit of work and
// returns the stored representation with generated ids.
func (s *OrderStore) Save(ctx context.Context, o order.Order) (order.Order, error) {
	work := uow.NewUnitOfWork(s.client)

	if err := work.Begin(ctx); err != nil {
		return order.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	saved, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		_ = work.Rollback(ctx)
		return order.Order{}, err
	}

	items := make([]orderitem.OrderItem, len(o.Details))
	for i, item := range o.Details {
		item.OrderID = saved.ID
		if item.CreatedAt.IsZero() {
			item.CreatedAt = saved.CreatedAt
		}
		if item.UpdatedAt.IsZero() {
			item.UpdatedAt = saved.UpdatedAt
		}
		items[i] = item
	}

	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		_ = work.Rollback(ctx)
		return order.Order{}, err
	}

	if err := work.Commit(ctx); err != nil {
		return order.Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	saved.Details = items

	return saved, nil
}

// Query retrieves orders matching the filter, with their details attached.
func (s *OrderStore) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	work := uow.NewUnitOfWork(s.client)

	orders, err := work.OrderRepository().Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	orderIds := make([]string, len(orders))
	for i, o := range orders {
		orderIds[i] = o.ID
	}

	items, err := work.OrderItemRepository().QueryByOrderIds(ctx, orderIds)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		for _, item := range items {
			if item.OrderID == orders[i].ID {
				orders[i].Details = append(orders[i].Details, item)
			}
		}
	}

	return orders, nil
}
