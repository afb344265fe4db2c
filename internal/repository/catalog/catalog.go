package catalog

import (
	"context"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/ledger"
)

// Repository is the static ingredient catalog. It is immutable after
// seeding, so reads need no locking.
type Repository struct {
	byID    map[string]entities.Ingredient
	ordered []entities.Ingredient
}

func New(ingredients []entities.Ingredient) *Repository {
	byID := make(map[string]entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		byID[ingredient.ID] = ingredient
	}
	return &Repository{
		byID:    byID,
		ordered: ingredients,
	}
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ingredient, ok := r.byID[id]
	if !ok {
		return nil, ledger.ErrIngredientNotFound
	}

	clone := ingredient
	return &clone, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Ingredient, error) {
	all := make([]entities.Ingredient, len(r.ordered))
	copy(all, r.ordered)
	return all, nil
}
