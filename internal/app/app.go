package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountclient "github.com/geekshirt/order-service/internal/dal/clients/account"
	inventoryclient "github.com/geekshirt/order-service/internal/dal/clients/inventory"
	paymentclient "github.com/geekshirt/order-service/internal/dal/clients/payment"
	"github.com/geekshirt/order-service/internal/dal/postgres"
	auditproducer "github.com/geekshirt/order-service/internal/dal/producers/audit"
	shipmentproducer "github.com/geekshirt/order-service/internal/dal/producers/shipment"
	"github.com/geekshirt/order-service/internal/dal/rabbitmq"
	"github.com/geekshirt/order-service/internal/dal/redis"
	"github.com/geekshirt/order-service/internal/dal/repositories/orderstore"
	outboxrepo "github.com/geekshirt/order-service/internal/dal/repositories/outbox/postgres"
	"github.com/geekshirt/order-service/internal/otel"
	"github.com/geekshirt/order-service/internal/service/services/ordersvc"
	httptransport "github.com/geekshirt/order-service/internal/transport/http"
	outboxworker "github.com/geekshirt/order-service/internal/worker/outbox"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	worker         *outboxworker.Worker
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	cache          redis.Cache
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()
	rabbitClient := rabbitmq.MustNewClient()
	cache := redis.MustNewCache("order-service")

	outboxRepository := outboxrepo.NewOutboxRepository(postgresClient)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithAccountClient(accountclient.NewClient(cache)),
		ordersvc.WithPaymentClient(paymentclient.NewClient()),
		ordersvc.WithOrderRepository(orderstore.NewOrderStore(postgresClient)),
		ordersvc.WithInventoryClient(inventoryclient.NewClient()),
		ordersvc.WithShipmentProducer(shipmentproducer.MustNewProducer(rabbitClient, outboxRepository)),
		ordersvc.WithAuditProducer(auditproducer.MustNewProducer(rabbitClient)),
	)

	transport := httptransport.NewHTTPTransport(orderSvc)
	transport.RegisterRoutes()

	worker := outboxworker.NewWorker(outboxRepository, rabbitClient)

	return &App{
		orderSvc:       orderSvc,
		transport:      transport,
		worker:         worker,
		postgresClient: postgresClient,
		rabbitClient:   rabbitClient,
		cache:          cache,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go a.worker.Start(workerCtx)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	cancelWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.rabbitClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.cache.Close(); err != nil {
		slog.Error("Redis connection close error", "error", err)
	} else {
		slog.Info("Redis connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
