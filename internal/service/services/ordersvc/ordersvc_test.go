package ordersvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/geekshirt/order-service/internal/apperrors"
	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/geekshirt/order-service/internal/service/models/orderitem"
	"github.com/geekshirt/order-service/internal/service/models/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calls records the order in which collaborators were invoked.
type calls struct {
	sequence []string
}

func (c *calls) record(name string) {
	c.sequence = append(c.sequence, name)
}

func (c *calls) count(name string) int {
	n := 0
	for _, s := range c.sequence {
		if s == name {
			n++
		}
	}
	return n
}

type fakeAccountClient struct {
	calls *calls
	acc   *account.Account
	err   error
}

func (f *fakeAccountClient) FindAccount(_ context.Context, _ string) (*account.Account, error) {
	f.calls.record("account")
	return f.acc, f.err
}

type fakePaymentClient struct {
	calls  *calls
	status payment.Status
	err    error
	amount decimal.Decimal
}

func (f *fakePaymentClient) Authorize(_ context.Context, _ account.Account, amount decimal.Decimal) (payment.Authorization, error) {
	f.calls.record("payment")
	f.amount = amount
	return payment.Authorization{Status: f.status, ProcessedAt: time.Now()}, f.err
}

type fakeOrderRepo struct {
	calls *calls
	saved order.Order
	err   error
}

func (f *fakeOrderRepo) Save(_ context.Context, o order.Order) (order.Order, error) {
	f.calls.record("save")
	o.ID = "ord-0001"
	f.saved = o
	return o, f.err
}

func (f *fakeOrderRepo) Query(_ context.Context, _ *order.QueryOrdersModel) ([]order.Order, error) {
	return nil, nil
}

type fakeInventoryClient struct {
	calls *calls
	err   error
}

func (f *fakeInventoryClient) Decrement(_ context.Context, _ []orderitem.OrderItem) error {
	f.calls.record("inventory")
	return f.err
}

type fakeShipmentProducer struct {
	calls   *calls
	err     error
	orderID string
	acc     account.Account
}

func (f *fakeShipmentProducer) Send(_ context.Context, orderID string, acc account.Account) error {
	f.calls.record("shipment")
	f.orderID = orderID
	f.acc = acc
	return f.err
}

type fakeAuditProducer struct {
	calls  *calls
	err    error
	logged []order.Order
}

func (f *fakeAuditProducer) LogOrdersCreated(_ context.Context, orders []order.Order) error {
	f.calls.record("audit")
	f.logged = append(f.logged, orders...)
	return f.err
}

type fixture struct {
	calls     *calls
	accounts  *fakeAccountClient
	payments  *fakePaymentClient
	orders    *fakeOrderRepo
	inventory *fakeInventoryClient
	shipments *fakeShipmentProducer
	audit     *fakeAuditProducer
	svc       *OrderService
}

func testAccount() *account.Account {
	return &account.Account{
		ID: "12345678",
		Customer: account.Customer{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
		},
		ShippingAddress: account.Address{
			Street:     "1st Street 100",
			City:       "Austin",
			State:      "TX",
			PostalCode: "73301",
			Country:    "US",
		},
	}
}

func newFixture(status payment.Status) *fixture {
	c := &calls{}
	f := &fixture{
		calls:     c,
		accounts:  &fakeAccountClient{calls: c, acc: testAccount()},
		payments:  &fakePaymentClient{calls: c, status: status},
		orders:    &fakeOrderRepo{calls: c},
		inventory: &fakeInventoryClient{calls: c},
		shipments: &fakeShipmentProducer{calls: c},
		audit:     &fakeAuditProducer{calls: c},
	}

	f.svc = MustNewOrderService(
		WithAccountClient(f.accounts),
		WithPaymentClient(f.payments),
		WithOrderRepository(f.orders),
		WithInventoryClient(f.inventory),
		WithShipmentProducer(f.shipments),
		WithAuditProducer(f.audit),
	)

	return f
}

func testRequest() order.Request {
	return order.Request{
		AccountID: "12345678",
		Items: []orderitem.OrderItem{
			{SKU: "TSHIRT-XL", Quantity: 1, UnitPrice: decimal.RequireFromString("1000.00")},
			{SKU: "STICKER", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
}

func TestCreateOrderFailsWhenItemsAreNil(t *testing.T) {
	f := newFixture(payment.StatusApproved)

	_, err := f.svc.CreateOrder(context.Background(), order.Request{AccountID: "12345678"})

	require.ErrorIs(t, err, apperrors.ErrIncorrectRequest)
	assert.Equal(t, "empty item order not allowed", err.Error())
	assert.Empty(t, f.calls.sequence, "no collaborator may be invoked before validation passes")
}

func TestCreateOrderFailsWhenItemsAreEmpty(t *testing.T) {
	f := newFixture(payment.StatusApproved)

	req := order.Request{AccountID: "12345678", Items: []orderitem.OrderItem{}}
	_, err := f.svc.CreateOrder(context.Background(), req)

	require.ErrorIs(t, err, apperrors.ErrIncorrectRequest)
	assert.Empty(t, f.calls.sequence)
}

func TestCreateOrderFailsWhenAccountDoesNotExist(t *testing.T) {
	f := newFixture(payment.StatusApproved)
	f.accounts.acc = nil

	_, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.Equal(t, "account not found", err.Error())
	assert.Equal(t, 1, f.calls.count("account"))
	assert.Zero(t, f.calls.count("save"), "nothing may be persisted for an unknown account")
}

func TestCreateOrderPropagatesAccountLookupFailure(t *testing.T) {
	f := newFixture(payment.StatusApproved)
	f.accounts.acc = nil
	f.accounts.err = errors.New("connection refused")

	_, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.Zero(t, f.calls.count("save"))
}

func TestCreateOrderFailsWhenPaymentIsDenied(t *testing.T) {
	f := newFixture(payment.StatusDenied)

	_, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.ErrorIs(t, err, apperrors.ErrPaymentNotAccepted)
	assert.Equal(t,
		"the credit card added to your account was not accepted, please verify",
		err.Error())

	// The denied attempt is still durably recorded, exactly once.
	assert.Equal(t, 1, f.calls.count("save"))
	assert.Equal(t, payment.StatusDenied, f.orders.saved.PaymentStatus)
	assert.Equal(t, order.StatusDenied, f.orders.saved.Status)

	assert.Zero(t, f.calls.count("inventory"))
	assert.Zero(t, f.calls.count("shipment"))

	// The denied record is still audited.
	assert.Equal(t, 1, f.calls.count("audit"))
}

func TestCreateOrderShipsWhenPaymentIsApproved(t *testing.T) {
	f := newFixture(payment.StatusApproved)

	o, err := f.svc.CreateOrder(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "12345678", o.AccountID)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("1005.00")), "amount: %s", o.TotalAmount)
	assert.True(t, o.TotalTax.Equal(decimal.RequireFromString("160.80")), "tax: %s", o.TotalTax)
	assert.True(t, o.TotalAmountTax.Equal(decimal.RequireFromString("1165.80")), "total: %s", o.TotalAmountTax)
	assert.True(t, o.TotalAmountTax.Equal(o.TotalAmount.Add(o.TotalTax)))

	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, payment.StatusApproved, o.PaymentStatus)
	assert.False(t, o.TransactionDate.IsZero())
	assert.Len(t, o.Details, 2)

	assert.Equal(t, []string{"account", "payment", "save", "audit", "inventory", "shipment"}, f.calls.sequence)

	// Payment is authorized for the taxed total, and the shipment event
	// references the persisted order and the resolved account.
	assert.True(t, f.payments.amount.Equal(decimal.RequireFromString("1165.80")))
	assert.Equal(t, "ord-0001", f.shipments.orderID)
	assert.Equal(t, "Doe", f.shipments.acc.Customer.LastName)
}

func TestCreateOrderPropagatesInventoryFailure(t *testing.T) {
	f := newFixture(payment.StatusApproved)
	f.inventory.err = errors.New("stock service unavailable")

	_, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, 1, f.calls.count("save"), "the order stays persisted, no rollback")
	assert.Zero(t, f.calls.count("shipment"), "no shipment after a failed inventory update")
}

func TestCreateOrderPropagatesShipmentFailure(t *testing.T) {
	f := newFixture(payment.StatusApproved)
	f.shipments.err = errors.New("broker unreachable")

	_, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.Error(t, err)
	assert.Equal(t, 1, f.calls.count("inventory"))
	assert.Equal(t, 1, f.calls.count("save"))
}

func TestCreateOrderSucceedsWhenAuditPublishFails(t *testing.T) {
	f := newFixture(payment.StatusApproved)
	f.audit.err = errors.New("audit queue unavailable")

	o, err := f.svc.CreateOrder(context.Background(), testRequest())

	require.NoError(t, err, "audit publishing is best effort and must not fail the request")
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, 1, f.calls.count("audit"))
	assert.Equal(t, 1, f.calls.count("inventory"))
	assert.Equal(t, 1, f.calls.count("shipment"))
}

func TestCreateOrderAuditsBothOutcomes(t *testing.T) {
	approved := newFixture(payment.StatusApproved)
	_, err := approved.svc.CreateOrder(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, 1, approved.calls.count("audit"))
	require.Len(t, approved.audit.logged, 1)
	assert.Equal(t, payment.StatusApproved, approved.audit.logged[0].PaymentStatus)

	denied := newFixture(payment.StatusDenied)
	_, err = denied.svc.CreateOrder(context.Background(), testRequest())
	require.Error(t, err)
	require.Equal(t, 1, denied.calls.count("audit"))
	require.Len(t, denied.audit.logged, 1)
	assert.Equal(t, payment.StatusDenied, denied.audit.logged[0].PaymentStatus)
}

func TestCreateOrderIsNotDeduplicated(t *testing.T) {
	f := newFixture(payment.StatusApproved)

	_, err := f.svc.CreateOrder(context.Background(), testRequest())
	require.NoError(t, err)
	_, err = f.svc.CreateOrder(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, f.calls.count("save"), "every request persists a fresh order")
}
