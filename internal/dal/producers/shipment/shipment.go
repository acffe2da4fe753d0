package shipmentproducer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/geekshirt/order-service/internal/dal/interfaces/ioutboxrepo"
	"github.com/geekshirt/order-service/internal/dal/rabbitmq"
	"github.com/geekshirt/order-service/internal/service/models/account"
	"github.com/geekshirt/order-service/internal/service/models/outbox"
	"github.com/geekshirt/order-service/internal/service/models/shipment"
	"github.com/streadway/amqp"
)

// ShipmentQueueName is the fixed destination for inbound shipment requests.
const ShipmentQueueName = "INBOUND_SHIPMENT_ORDER"

const maxRetries = 5

// broker is the queue surface the producer needs from RabbitMQ.
type broker interface {
	DeclareQueue(cfg rabbitmq.DeclareQueueConfig) (amqp.Queue, error)
	Publish(exchange, routingKey string, publishing amqp.Publishing) error
}

// Producer publishes shipment-request events to the shipping service queue.
type Producer struct {
	client     broker
	outboxRepo ioutboxrepo.IOutboxRepository
	queue      amqp.Queue
}

// MustNewProducer declares the shipment queue and returns the producer.
// The outbox repository may be nil to disable redelivery bookkeeping.
func MustNewProducer(client broker, outboxRepo ioutboxrepo.IOutboxRepository) *Producer {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       ShipmentQueueName,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return &Producer{
		client:     client,
		outboxRepo: outboxRepo,
		queue:      queue,
	}
}

// Send publishes the shipment request for an approved order. A publish
// failure is recorded in the outbox for later redelivery and still
// returned to the caller.
func (p *Producer) Send(ctx context.Context, orderID string, acc account.Account) error {
	payload, err := json.Marshal(shipment.Request{
		OrderID:              orderID,
		ShippingReceiverName: fmt.Sprintf("%s, %s", acc.Customer.LastName, acc.Customer.FirstName),
		ReceiptEmail:         acc.Customer.Email,
		ShippingAddress:      acc.ShippingAddress,
	})
	if err != nil {
		return fmt.Errorf("failed to encode shipment request: %w", err)
	}

	err = p.client.Publish("", p.queue.Name, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
	if err != nil {
		p.recordToOutbox(ctx, payload, err)
		return fmt.Errorf("failed to publish shipment request: %w", err)
	}

	return nil
}

func (p *Producer) recordToOutbox(ctx context.Context, payload []byte, cause error) {
	if p.outboxRepo == nil {
		return
	}

	now := time.Now()
	err := p.outboxRepo.Insert(ctx, outbox.Message{
		QueueName:   p.queue.Name,
		RoutingKey:  p.queue.Name,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  maxRetries,
		LastError:   cause.Error(),
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
	if err != nil {
		slog.Error("Failed to record shipment request in outbox",
			"queue", p.queue.Name,
			"error", err,
		)
	}
}
