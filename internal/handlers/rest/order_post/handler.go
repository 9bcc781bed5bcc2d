package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/dto"
	"bookshop/internal/service/order"
	"bookshop/pkg/logger"
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
	var orderRequestDTO dto.OrderRequest
	err := json.NewDecoder(r.Body).Decode(&orderRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.SubmitOrder(r.Context(), orderRequestDTO.ISBN, orderRequestDTO.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidISBN),
			errors.Is(err, order.ErrInvalidQuantity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:             orderEntity.ID,
		BookISBN:       orderEntity.BookISBN,
		BookName:       orderEntity.BookName,
		BookPrice:      orderEntity.BookPrice,
		Quantity:       orderEntity.Quantity,
		Status:         orderEntity.Status.String(),
		CreatedAt:      orderEntity.CreatedAt,
		LastModifiedAt: orderEntity.LastModifiedAt,
		Version:        orderEntity.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
