package auditproducer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/geekshirt/order-service/internal/dal/rabbitmq"
	"github.com/geekshirt/order-service/internal/service/models/order"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

// AuditQueueName carries order-created events for the audit consumer.
const AuditQueueName = "oms.order.created"

// Producer publishes order-created audit events.
type Producer struct {
	client *rabbitmq.Client
	queue  amqp.Queue
}

// MustNewProducer declares the audit queue and returns the producer.
func MustNewProducer(client *rabbitmq.Client) *Producer {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       AuditQueueName,
		Durable:    false,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return &Producer{
		client: client,
		queue:  queue,
	}
}

// LogOrdersCreated publishes one event per order, a few at a time.
func (p *Producer) LogOrdersCreated(ctx context.Context, orders []order.Order) error {
	auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g, _ := errgroup.WithContext(auditCtx)
	g.SetLimit(3)

	for _, ord := range orders {
		g.Go(func() error {
			orderData, err := json.Marshal(ord)
			if err != nil {
				return err
			}

			return p.client.Publish("", p.queue.Name, amqp.Publishing{
				ContentType: "application/json",
				Body:        orderData,
			})
		})
	}

	return g.Wait()
}
