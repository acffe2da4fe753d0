package ordersvc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/geekshirt/order-service/internal/apperrors"
	"github.com/geekshirt/order-service/internal/dal/interfaces/iaccountclient"
	"github.com/geekshirt/order-service/internal/dal/interfaces/iauditproducer"
	"github.com/geekshirt/order-service/internal/dal/interfaces/iinventoryclient"
	"github.com/geekshirt/order-service/internal/dal/interfaces/iorderrepo"
	"github.com/geekshirt/order-service/internal/dal/interfaces/ipaymentclient"
	"github.com/geekshirt/order-service/internal/dal/interfaces/ishipmentproducer"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/geekshirt/order-service/internal/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultTaxRate = "0.16"

// OrderService drives the order-creation workflow: validate the request,
// resolve the account, price the items, authorize payment, persist the
// order, and on approval decrement inventory and publish the shipment
// request. The step order is the contract and must not change.
type OrderService struct {
	accountClient    iaccountclient.IAccountClient
	paymentClient    ipaymentclient.IPaymentClient
	orderRepo        iorderrepo.IOrderRepository
	inventoryClient  iinventoryclient.IInventoryClient
	shipmentProducer ishipmentproducer.IShipmentProducer
	auditProducer    iauditproducer.IAuditProducer
	taxRate          decimal.Decimal
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService. The tax rate comes from
// the pricing.tax_rate config key unless overridden with WithTaxRate.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}

	rate := viper.GetString("pricing.tax_rate")
	if rate == "" {
		rate = defaultTaxRate
	}
	s.taxRate = decimal.RequireFromString(rate)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithAccountClient sets the account resolver.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAccountClient(c iaccountclient.IAccountClient) option {
	return func(s *OrderService) {
		s.accountClient = c
	}
}

// WithPaymentClient sets the payment authorizer.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPaymentClient(c ipaymentclient.IPaymentClient) option {
	return func(s *OrderService) {
		s.paymentClient = c
	}
}

// WithOrderRepository sets the order store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(r iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = r
	}
}

// WithInventoryClient sets the inventory updater.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithInventoryClient(c iinventoryclient.IInventoryClient) option {
	return func(s *OrderService) {
		s.inventoryClient = c
	}
}

// WithShipmentProducer sets the shipment notifier.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithShipmentProducer(p ishipmentproducer.IShipmentProducer) option {
	return func(s *OrderService) {
		s.shipmentProducer = p
	}
}

// WithAuditProducer sets the optional audit event producer.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuditProducer(p iauditproducer.IAuditProducer) option {
	return func(s *OrderService) {
		s.auditProducer = p
	}
}

// WithTaxRate overrides the configured tax rate.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithTaxRate(rate decimal.Decimal) option {
	return func(s *OrderService) {
		s.taxRate = rate
	}
}

// CreateOrder runs the workflow for a single request.
//
// The order is persisted exactly once, with its payment status already
// set, before any branching: denied attempts are durably recorded for
// audit before the error surfaces. Inventory and shipment side effects
// happen only for approved payments, always after persistence, and
// their failures propagate without compensation.
func (s *OrderService) CreateOrder(ctx context.Context, req order.Request) (order.Order, error) {
	if len(req.Items) == 0 {
		return order.Order{}, apperrors.ErrIncorrectRequest
	}

	acc, err := s.accountClient.FindAccount(ctx, req.AccountID)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to resolve account: %w", err)
	}
	if acc == nil {
		return order.Order{}, apperrors.ErrAccountNotFound
	}

	totals := pricing.Calculate(req.Items, s.taxRate)

	now := time.Now()
	o := order.Order{
		AccountID:      req.AccountID,
		Details:        req.Items,
		TotalAmount:    totals.Amount,
		TotalTax:       totals.Tax,
		TotalAmountTax: totals.AmountTax,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	auth, err := s.paymentClient.Authorize(ctx, *acc, o.TotalAmountTax)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to authorize payment: %w", err)
	}

	o.PaymentStatus = auth.Status
	if auth.Status == payment.StatusDenied {
		o.Status = order.StatusDenied
	}

	saved, err := s.orderRepo.Save(ctx, o)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logOrderCreated(ctx, saved)

	if saved.PaymentStatus == payment.StatusDenied {
		return order.Order{}, apperrors.ErrPaymentNotAccepted
	}

	saved.Status = order.StatusPending
	saved.TransactionDate = time.Now()

	if err := s.inventoryClient.Decrement(ctx, saved.Details); err != nil {
		return order.Order{}, fmt.Errorf("failed to update inventory: %w", err)
	}

	if err := s.shipmentProducer.Send(ctx, saved.ID, *acc); err != nil {
		return order.Order{}, fmt.Errorf("failed to publish shipment request: %w", err)
	}

	return saved, nil
}

// GetOrders retrieves persisted orders matching the filter.
func (s *OrderService) GetOrders(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	orders, err := s.orderRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []order.Order{}
	}

	return orders, nil
}

// logOrderCreated publishes the audit event for the persisted order.
// Best effort: a publish failure never fails the request.
func (s *OrderService) logOrderCreated(ctx context.Context, o order.Order) {
	if s.auditProducer == nil {
		return
	}

	if err := s.auditProducer.LogOrdersCreated(ctx, []order.Order{o}); err != nil {
		slog.Error("Failed to publish order audit event", "order_id", o.ID, "error", err)
	}
}
