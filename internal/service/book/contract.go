//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_test
package book

import (
	"context"

	"bookshop/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bookModifyEntity entities.BookModify) (int64, error)
	GetByISBN(ctx context.Context, isbn string) (*entities.Book, error)
	GetAll(ctx context.Context) ([]entities.Book, error)
	DeleteByISBN(ctx context.Context, isbn string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
