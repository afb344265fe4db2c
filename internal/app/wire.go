//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/wire"

	"centralkitchen/internal/gateway/kafka/order_events"
	"centralkitchen/internal/handlers/rest/ingredients_get"
	"centralkitchen/internal/handlers/rest/inventory_check_get"
	"centralkitchen/internal/handlers/rest/inventory_low_stock_get"
	"centralkitchen/internal/handlers/rest/login_post"
	"centralkitchen/internal/handlers/rest/order_cancel_post"
	"centralkitchen/internal/handlers/rest/order_get"
	"centralkitchen/internal/handlers/rest/order_post"
	"centralkitchen/internal/handlers/rest/order_reject_post"
	"centralkitchen/internal/handlers/rest/order_stats_get"
	"centralkitchen/internal/handlers/rest/order_status_put"
	"centralkitchen/internal/handlers/rest/orders_get"
	"centralkitchen/internal/handlers/rest/register_post"
	"centralkitchen/internal/handlers/tasks/stats_export"
	"centralkitchen/internal/pkg/config"
	"centralkitchen/internal/pkg/seed"

	catalogRepo "centralkitchen/internal/repository/catalog"
	inventoryRepo "centralkitchen/internal/repository/inventory"
	ordersRepo "centralkitchen/internal/repository/orders"
	usersRepo "centralkitchen/internal/repository/users"
	authService "centralkitchen/internal/service/auth"
	ledgerService "centralkitchen/internal/service/ledger"
	tokenmw "centralkitchen/internal/pkg/middlewares/auth"

	"centralkitchen/pkg/background"
	"centralkitchen/pkg/logger"
	"centralkitchen/pkg/tx"
)

type (
	StatsExportInterval time.Duration
)

type Application struct {
	ServiceLedger     ServiceLedger
	ServiceAuth       ServiceAuth
	Catalog           CatalogReader
	EventPublisher    EventPublisher
	BackgroundWorkers *background.Worker
}

type ServiceLedger interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_reject_post.Service
	order_cancel_post.Service
	order_stats_get.Service
	inventory_check_get.Service
	inventory_low_stock_get.Service
}

type ServiceAuth interface {
	login_post.Service
	register_post.Service
	tokenmw.TokenParser
}

type CatalogReader interface {
	ingredients_get.Catalog
}

type EventPublisher interface {
	order_post.EventPublisher
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	data *seed.Data,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideStatsExportInterval,

		provideOrderRepository,
		provideInventoryRepository,
		provideCatalogRepository,
		provideUserRepository,

		provideServiceLedger,
		provideServiceAuth,
		provideEventGateway,

		provideStatsExportTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceAuth), new(*authService.Service)),
		wire.Bind(new(CatalogReader), new(*catalogRepo.Repository)),
		wire.Bind(new(EventPublisher), new(*order_events.Gateway)),

		wire.Bind(new(ledgerService.OrderRepository), new(*ordersRepo.Repository)),
		wire.Bind(new(ledgerService.InventoryRepository), new(*inventoryRepo.Repository)),
		wire.Bind(new(ledgerService.Catalog), new(*catalogRepo.Repository)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(authService.UserRepository), new(*usersRepo.Repository)),

		wire.Bind(new(stats_export.Service), new(*ledgerService.Ledger)),
		wire.Bind(new(stats_export.StoreLister), new(*inventoryRepo.Repository)),
	)
	return &Application{}, nil
}

func provideTxManager() *tx.Manager {
	return tx.New()
}

func provideOrderRepository() *ordersRepo.Repository {
	return ordersRepo.New()
}

func provideInventoryRepository(data *seed.Data) *inventoryRepo.Repository {
	return inventoryRepo.New(data.Stores)
}

func provideCatalogRepository(data *seed.Data) *catalogRepo.Repository {
	return catalogRepo.New(data.Ingredients)
}

func provideUserRepository(data *seed.Data) *usersRepo.Repository {
	return usersRepo.New(data.Users)
}

func provideServiceLedger(
	orders ledgerService.OrderRepository,
	inventory ledgerService.InventoryRepository,
	catalog ledgerService.Catalog,
	txManager ledgerService.TxManager,
) *ledgerService.Ledger {
	return ledgerService.New(orders, inventory, catalog, txManager)
}

func provideServiceAuth(users authService.UserRepository, cfg *config.Config) *authService.Service {
	return authService.New(users, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
}

func provideEventGateway(producer sarama.SyncProducer, cfg *config.Config) *order_events.Gateway {
	return order_events.New(producer, cfg.Kafka.Topic)
}

func provideStatsExportInterval(cfg *config.Config) StatsExportInterval {
	return StatsExportInterval(cfg.Tasks.StatsExportInterval)
}

func provideStatsExportTask(
	ledger stats_export.Service,
	stores stats_export.StoreLister,
	interval StatsExportInterval,
) *stats_export.StatsExport {
	return stats_export.NewStatsExport(ledger, stores, time.Duration(interval))
}

func provideTaskList(
	statsExportTask *stats_export.StatsExport,
) []background.Task {
	return []background.Task{
		statsExportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
