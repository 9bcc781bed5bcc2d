package book

import (
	"context"
	"fmt"

	"bookshop/internal/entities"
)

type Book struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Book {
	return &Book{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Book) CreateBook(ctx context.Context, bookModify entities.BookModify) (int64, error) {
	if bookModify.ISBN == nil ||
		bookModify.Title == nil ||
		bookModify.Author == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidISBN(*bookModify.ISBN) {
		return 0, ErrInvalidISBN
	}
	if !isValidTitle(*bookModify.Title) {
		return 0, ErrInvalidTitle
	}
	if !isValidAuthor(*bookModify.Author) {
		return 0, ErrInvalidAuthor
	}
	if !isValidPrice(bookModify.Price) {
		return 0, ErrInvalidPrice
	}

	id, err := s.repository.Create(ctx, bookModify)
	if err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}

	return id, nil
}

func (s *Book) GetBook(ctx context.Context, isbn string) (*entities.Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	bookEntity, err := s.repository.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	return bookEntity, nil
}

func (s *Book) GetBooks(ctx context.Context) ([]entities.Book, error) {
	books, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get books: %w", err)
	}

	return books, nil
}

func (s *Book) DeleteBook(ctx context.Context, isbn string) error {
	if !isValidISBN(isbn) {
		return ErrInvalidISBN
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.DeleteByISBN(ctx, isbn)
	})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}
