//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"

	"centralkitchen/internal/entities"
)

type OrderRepository interface {
	Insert(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Count(ctx context.Context) (int, error)
}

type InventoryRepository interface {
	GetStore(ctx context.Context, storeID string) (*entities.StoreInventory, error)
	GetItem(ctx context.Context, storeID, ingredientID string) (*entities.InventoryItem, error)
}

type Catalog interface {
	GetByID(ctx context.Context, id string) (*entities.Ingredient, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
