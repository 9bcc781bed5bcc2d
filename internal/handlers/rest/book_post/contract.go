//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_post_test
package book_post

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
	CreateBook(ctx context.Context, bookModifyEntity entities.BookModify) (int64, error)
}
