//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_accepted_test
package order_accepted

import (
	"context"

	"bookshop/internal/events"
	"bookshop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Relay interface {
	Pack(message events.OrderAcceptedMessage) int64
	Label(ctx context.Context, orderIDs <-chan int64) <-chan events.OrderNotifiedMessage
}

type Publisher interface {
	PublishOrderNotified(ctx context.Context, orderID int64) error
}
