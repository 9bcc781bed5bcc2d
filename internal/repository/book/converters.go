package book

import (
	"bookshop/internal/entities"
)

func ToDomain(b *BookDB) *entities.Book {
	if b == nil {
		return nil
	}

	return &entities.Book{
		ID:        b.ID,
		ISBN:      b.ISBN,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromDomainModify(bookModify *entities.BookModify) *BookModifyDB {
	if bookModify == nil {
		return nil
	}

	return &BookModifyDB{
		ISBN:   bookModify.ISBN,
		Title:  bookModify.Title,
		Author: bookModify.Author,
		Price:  bookModify.Price,
	}
}

func ToDomainList(booksDB []BookDB) []entities.Book {
	if len(booksDB) == 0 {
		return []entities.Book{}
	}

	result := make([]entities.Book, len(booksDB))
	for i, bookDB := range booksDB {
		result[i] = *ToDomain(&bookDB)
	}
	return result
}
