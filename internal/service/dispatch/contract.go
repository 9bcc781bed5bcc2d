//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"bookshop/internal/entities"
	"bookshop/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type workflowLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
