package catalog

import (
	"bookshop/internal/dto"
	"bookshop/internal/entities"
)

func toDomain(bookDTO *dto.Book) *entities.Book {
	if bookDTO == nil {
		return nil
	}

	return &entities.Book{
		ISBN:   bookDTO.ISBN,
		Title:  bookDTO.Title,
		Author: bookDTO.Author,
		Price:  bookDTO.Price,
	}
}
