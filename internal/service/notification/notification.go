package notification

import (
	"context"

	"bookshop/internal/events"
	"bookshop/pkg/logger"
)

type Relay struct {
	log relayLogger
}

func New(log relayLogger) *Relay {
	return &Relay{
		log: log,
	}
}

// Pack извлекает orderId из события о принятом заказе.
func (r *Relay) Pack(message events.OrderAcceptedMessage) int64 {
	r.log.With(
		logger.NewField("order", message.OrderID),
	).Info("packing order")

	return message.OrderID
}

// Label превращает поток orderId в поток OrderNotifiedMessage один к одному,
// сохраняя порядок поступления. Выходной канал закрывается вместе со входным
// или по отмене контекста.
func (r *Relay) Label(ctx context.Context, orderIDs <-chan int64) <-chan events.OrderNotifiedMessage {
	out := make(chan events.OrderNotifiedMessage)

	go func() {
		defer close(out)

		for {
			select {
			case orderID, ok := <-orderIDs:
				if !ok {
					return
				}

				r.log.With(
					logger.NewField("order", orderID),
				).Info("order has been labeled")

				select {
				case out <- events.OrderNotifiedMessage{OrderID: orderID}:
				case <-ctx.Done():
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
