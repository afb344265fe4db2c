//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=register_post_test
package register_post

import (
	"context"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/auth"
	"centralkitchen/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*entities.User, error)
}
