//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_reject_post_test
package order_reject_post

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
	Reject(ctx context.Context, orderID, reason, rejectedBy string) (*entities.Order, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, order *entities.Order) error
}
