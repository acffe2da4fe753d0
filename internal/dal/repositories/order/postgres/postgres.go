package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/geekshirt/order-service/internal/dal/postgres"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/geekshirt/order-service/internal/service/models/orderitem"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id              string          `db:"id"`
	AccountId       string          `db:"account_id"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	TotalTax        decimal.Decimal `db:"total_tax"`
	TotalAmountTax  decimal.Decimal `db:"total_amount_tax"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	TransactionDate *time.Time      `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	m := &order.Order{
		ID:             o.Id,
		AccountID:      o.AccountId,
		TotalAmount:    o.TotalAmount,
		TotalTax:       o.TotalTax,
		TotalAmountTax: o.TotalAmountTax,
		Status:         order.Status(o.Status),
		PaymentStatus:  payment.Status(o.PaymentStatus),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Details:        []orderitem.OrderItem{}, // populated separately
	}
	if o.TransactionDate != nil {
		m.TransactionDate = *o.TransactionDate
	}

	return m
}

// OrderDalFromModel converts a service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	dal := &OrderDal{
		Id:             o.ID,
		AccountId:      o.AccountID,
		TotalAmount:    o.TotalAmount,
		TotalTax:       o.TotalTax,
		TotalAmountTax: o.TotalAmountTax,
		Status:         o.Status.String(),
		PaymentStatus:  o.PaymentStatus.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if !o.TransactionDate.IsZero() {
		t := o.TransactionDate
		dal.TransactionDate = &t
	}

	return dal
}

type PostgresOrderRepository struct {
	conn postgres.Querier
}

func NewPostgresOrderRepository(conn postgres.Querier) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// Insert stores a single order row, minting an id when the order has none.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	dal := OrderDalFromModel(&o)

	query, args, err := sq.Insert("orders").
		Columns(
			"id",
			"account_id",
			"total_amount",
			"total_tax",
			"total_amount_tax",
			"status",
			"payment_status",
			"transaction_date",
			"created_at",
			"updated_at",
		).
		Values(
			dal.Id,
			dal.AccountId,
			dal.TotalAmount,
			dal.TotalTax,
			dal.TotalAmountTax,
			dal.Status,
			dal.PaymentStatus,
			dal.TransactionDate,
			dal.CreatedAt,
			dal.UpdatedAt,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return o, nil
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	builder := sq.Select(
		"id",
		"account_id",
		"total_amount",
		"total_tax",
		"total_amount_tax",
		"status",
		"payment_status",
		"transaction_date",
		"created_at",
		"updated_at",
	).
		From("orders").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.Ids) > 0 {
		builder = builder.Where(sq.Eq{"id": filter.Ids})
	}
	if len(filter.AccountIds) > 0 {
		builder = builder.Where(sq.Eq{"account_id": filter.AccountIds})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.AccountId,
			&dal.TotalAmount,
			&dal.TotalTax,
			&dal.TotalAmountTax,
			&dal.Status,
			&dal.PaymentStatus,
			&dal.TransactionDate,
			&dal.CreatedAt,
			&dal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
