//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_delete_test
package book_delete

import (
	"context"

	"bookshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBook(ctx context.Context, isbn string) error
}
