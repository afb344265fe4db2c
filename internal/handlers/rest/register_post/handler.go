package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"centralkitchen/internal/dto"
	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/auth"
	"centralkitchen/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), auth.RegisterRequest{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      entities.RoleType(req.Role),
		StoreID:   req.StoreID,
		StoreName: req.StoreName,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrInvalidRole),
			errors.Is(err, auth.ErrWeakPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrEmailExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromUser(user))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
