//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ingredients_get_test
package ingredients_get

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

type Catalog interface {
	GetAll(ctx context.Context) ([]entities.Ingredient, error)
}
