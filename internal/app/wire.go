//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	catalogGateway "bookshop/internal/gateway/catalog"
	book_delete "bookshop/internal/handlers/rest/book_delete"
	book_get "bookshop/internal/handlers/rest/book_get"
	book_post "bookshop/internal/handlers/rest/book_post"
	books_get "bookshop/internal/handlers/rest/books_get"
	order_post "bookshop/internal/handlers/rest/order_post"
	orders_get "bookshop/internal/handlers/rest/orders_get"
	"bookshop/internal/handlers/tasks/order_metrics"
	"bookshop/internal/messaging"
	"bookshop/internal/pkg/config"
	"bookshop/internal/pkg/kafka"

	bookRepo "bookshop/internal/repository/book"
	orderRepo "bookshop/internal/repository/order"
	bookService "bookshop/internal/service/book"
	dispatchService "bookshop/internal/service/dispatch"
	orderService "bookshop/internal/service/order"

	"bookshop/pkg/background"
	"bookshop/pkg/logger"
	"bookshop/pkg/querier"
	"bookshop/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsInterval time.Duration
)

type CatalogApp struct {
	ServiceBook ServiceBook
}

type ServiceBook interface {
	book_get.Service
	book_post.Service
	book_delete.Service
	books_get.Service
}

// InitializeCatalogApp для HTTP сервиса каталога (cmd/catalog-service)
func InitializeCatalogApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*CatalogApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideBookRepository,
		provideServiceBook,

		wire.Struct(new(CatalogApp), "*"),

		wire.Bind(new(ServiceBook), new(*bookService.Book)),
		wire.Bind(new(bookService.Repository), new(*bookRepo.Repository)),
		wire.Bind(new(bookService.TxManager), new(*tx.Manager)),
	)
	return &CatalogApp{}, nil
}

type OrderApp struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
}

// InitializeOrderApp для HTTP сервиса заказов (cmd/order-service)
func InitializeOrderApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	catalogClient *http.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*OrderApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsInterval,

		provideOrderRepository,
		provideBookGateway,
		provideOrderEventPublisher,
		provideServiceOrder,

		provideOrderMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(OrderApp), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.BookGateway), new(*catalogGateway.BookGateway)),
		wire.Bind(new(orderService.EventPublisher), new(*messaging.OrderEventPublisher)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_metrics.Service), new(*orderService.Service)),
	)
	return &OrderApp{}, nil
}

type DispatchWorkerApp struct {
	ServiceDispatch *dispatchService.Service
}

// InitializeDispatchWorkerApp для Kafka воркера (cmd/worker-order-dispatch)
func InitializeDispatchWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*DispatchWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceDispatch,

		wire.Bind(new(dispatchService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Struct(new(DispatchWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideBookRepository(querier *querier.Querier) *bookRepo.Repository {
	return bookRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceBook(
	repository bookService.Repository,
	txManager bookService.TxManager,
) *bookService.Book {
	return bookService.New(repository, txManager)
}

func provideBookGateway(catalogClient *http.Client, cfg *config.Config) *catalogGateway.BookGateway {
	return catalogGateway.New(catalogClient, cfg.CatalogService.BaseURL)
}

func provideOrderEventPublisher(producer *kafka.Producer, cfg *config.Config) *messaging.OrderEventPublisher {
	return messaging.NewOrderEventPublisher(
		producer,
		cfg.Kafka.OrderAcceptedTopic,
		cfg.Kafka.OrderNotifiedTopic,
	)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	books orderService.BookGateway,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(log, repository, books, publisher, txManager)
}

func provideServiceDispatch(
	log logger.Logger,
	repository dispatchService.Repository,
	txManager dispatchService.TxManager,
) *dispatchService.Service {
	return dispatchService.New(log, repository, txManager)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.OrderMetricsInterval)
}

func provideOrderMetricsTask(
	orderService order_metrics.Service,
	interval MetricsInterval,
) *order_metrics.OrderMetrics {
	return order_metrics.NewOrderMetrics(orderService, time.Duration(interval))
}

func provideTaskList(
	orderMetricsTask *order_metrics.OrderMetrics,
) []background.Task {
	return []background.Task{
		orderMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
