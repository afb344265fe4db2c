//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_low_stock_get_test
package inventory_low_stock_get

import (
	"context"

	"centralkitchen/internal/entities"
	"centralkitchen/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	LowStockItems(ctx context.Context, storeID string) ([]entities.InventoryView, error)
}
