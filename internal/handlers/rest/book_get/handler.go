package book_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bookshop/internal/dto"
	"bookshop/internal/service/book"
	"bookshop/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]

	bookEntity, err := h.service.GetBook(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, book.ErrInvalidISBN):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bookDTO := dto.Book{
		ISBN:   bookEntity.ISBN,
		Title:  bookEntity.Title,
		Author: bookEntity.Author,
		Price:  bookEntity.Price,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bookDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
