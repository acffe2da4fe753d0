package uow

import (
	"context"

	iorder "github.com/geekshirt/order-service/internal/dal/interfaces/order"
	iorderitem "github.com/geekshirt/order-service/internal/dal/interfaces/orderitem"
	"github.com/geekshirt/order-service/internal/dal/postgres"
	orderrepo "github.com/geekshirt/order-service/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/geekshirt/order-service/internal/dal/repositories/orderitem/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type unitOfWork struct {
	pool          *pgxpool.Pool
	tx            pgx.Tx
	orderRepo     iorder.IOrderPostgresRepository
	orderItemRepo iorderitem.IOrderItemPostgresRepository
}

func (u *unitOfWork) OrderRepository() iorder.IOrderPostgresRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitem.IOrderItemPostgresRepository {
	return u.orderItemRepo
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	return &unitOfWork{
		pool:          client.Pool(),
		orderRepo:     orderrepo.NewPostgresOrderRepository(client.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(client.Pool()),
	}
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	// Rebind the repositories to the transaction
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}
