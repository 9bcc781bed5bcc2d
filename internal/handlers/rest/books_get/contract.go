//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=books_get_test
package books_get

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
	GetBooks(ctx context.Context) ([]entities.Book, error)
}
