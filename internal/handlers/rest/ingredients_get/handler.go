package ingredients_get

import (
	"encoding/json"
	"net/http"

	"centralkitchen/internal/dto"
	"centralkitchen/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	catalog Catalog
}

func New(log handlerLogger, catalog Catalog) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		catalog: catalog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalog.GetAll(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	list := dto.IngredientList{Ingredients: make([]dto.Ingredient, 0, len(ingredients))}
	for _, ingredient := range ingredients {
		list.Ingredients = append(list.Ingredients, dto.Ingredient{
			ID:           ingredient.ID,
			Name:         ingredient.Name,
			Unit:         ingredient.Unit,
			Category:     ingredient.Category,
			PricePerUnit: ingredient.PricePerUnit,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(list)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
