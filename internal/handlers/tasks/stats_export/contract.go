//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_export_test
package stats_export

import (
	"context"

	"centralkitchen/internal/entities"
)

type Service interface {
	Stats(ctx context.Context) (*entities.OrderStats, error)
	LowStockItems(ctx context.Context, storeID string) ([]entities.InventoryView, error)
}

type StoreLister interface {
	StoreIDs(ctx context.Context) ([]string, error)
}
