package book_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/dto"
	"bookshop/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bookDTO dto.Book
	err := json.NewDecoder(r.Body).Decode(&bookDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	bookModifyEntity := entities.BookModify{
		ISBN:   &bookDTO.ISBN,
		Title:  &bookDTO.Title,
		Author: &bookDTO.Author,
		Price:  bookDTO.Price,
	}

	id, err := h.service.CreateBook(r.Context(), bookModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrMissingRequiredFields),
			errors.Is(err, book.ErrInvalidISBN),
			errors.Is(err, book.ErrInvalidTitle),
			errors.Is(err, book.ErrInvalidAuthor),
			errors.Is(err, book.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, book.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BookCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
