//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_get_test
package book_get

import (
	"context"

	"bookshop/internal/entities"
	"bookshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetBook(ctx context.Context, isbn string) (*entities.Book, error)
}
