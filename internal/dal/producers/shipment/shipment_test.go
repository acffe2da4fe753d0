package shipmentproducer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/geekshirt/order-service/internal/dal/rabbitmq"
	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/geekshirt/order-service/internal/service/models/outbox"
	"github.com/geekshirt/order-service/internal/service/models/shipment"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBroker struct {
	publishErr error
	published  []amqp.Publishing
	keys       []string
	declared   []string
}

func (f *fakeBroker) DeclareQueue(cfg rabbitmq.DeclareQueueConfig) (amqp.Queue, error) {
	f.declared = append(f.declared, cfg.Name)
	return amqp.Queue{Name: cfg.Name}, nil
}

func (f *fakeBroker) Publish(_, routingKey string, publishing amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishing)
	f.keys = append(f.keys, routingKey)
	return nil
}

type fakeOutboxRepo struct {
	inserted  []outbox.Message
	insertErr error
}

func (f *fakeOutboxRepo) Insert(_ context.Context, msg outbox.Message) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, msg)
	return nil
}

func (f *fakeOutboxRepo) GetPendingMessages(_ context.Context, _ int) ([]outbox.Message, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeOutboxRepo) UpdateRetry(_ context.Context, _ int64, _ int, _ string, _ time.Time) error {
	return nil
}

func shipmentAccount() account.Account {
	return account.Account{
		ID: "12345678",
		Customer: account.Customer{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
		},
		ShippingAddress: account.Address{
			Street: "1st Street 100",
			City:   "Austin",
		},
	}
}

func TestSendPublishesShipmentRequest(t *testing.T) {
	brk := &fakeBroker{}
	repo := &fakeOutboxRepo{}
	p := MustNewProducer(brk, repo)

	err := p.Send(context.Background(), "ord-0001", shipmentAccount())
	require.NoError(t, err)

	assert.Equal(t, []string{ShipmentQueueName}, brk.declared)
	require.Len(t, brk.published, 1)
	assert.Equal(t, ShipmentQueueName, brk.keys[0])
	assert.Equal(t, "application/json", brk.published[0].ContentType)

	var req shipment.Request
	require.NoError(t, json.Unmarshal(brk.published[0].Body, &req))
	assert.Equal(t, "ord-0001", req.OrderID)
	assert.Equal(t, "Doe, John", req.ShippingReceiverName)
	assert.Equal(t, "john.doe@example.com", req.ReceiptEmail)
	assert.Equal(t, "Austin", req.ShippingAddress.City)

	assert.Empty(t, repo.inserted, "a delivered event must not be outboxed")
}

func TestSendRecordsToOutboxAndFailsOnPublishError(t *testing.T) {
	brk := &fakeBroker{publishErr: errors.New("broker unreachable")}
	repo := &fakeOutboxRepo{}
	p := MustNewProducer(brk, repo)

	err := p.Send(context.Background(), "ord-0001", shipmentAccount())

	require.Error(t, err, "the publish failure must still reach the caller")
	assert.ErrorContains(t, err, "broker unreachable")

	require.Len(t, repo.inserted, 1)
	msg := repo.inserted[0]
	assert.Equal(t, ShipmentQueueName, msg.QueueName)
	assert.Equal(t, ShipmentQueueName, msg.RoutingKey)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "broker unreachable", msg.LastError)
	assert.Equal(t, maxRetries, msg.MaxRetries)
	assert.Contains(t, string(msg.Payload), "ord-0001")
}

func TestSendStillFailsWhenOutboxInsertFails(t *testing.T) {
	brk := &fakeBroker{publishErr: errors.New("broker unreachable")}
	repo := &fakeOutboxRepo{insertErr: errors.New("outbox table missing")}
	p := MustNewProducer(brk, repo)

	err := p.Send(context.Background(), "ord-0001", shipmentAccount())

	require.Error(t, err)
	assert.ErrorContains(t, err, "broker unreachable")
}

func TestSendWithoutOutboxRepo(t *testing.T) {
	brk := &fakeBroker{publishErr: errors.New("broker unreachable")}
	p := MustNewProducer(brk, nil)

	err := p.Send(context.Background(), "ord-0001", shipmentAccount())

	require.Error(t, err)
}
