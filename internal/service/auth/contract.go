//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"centralkitchen/internal/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
