//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_notified_test
package order_notified

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
	ConsumeOrderNotified(ctx context.Context, orderID int64) (*entities.Order, error)
}
