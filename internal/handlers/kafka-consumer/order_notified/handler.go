package order_notified

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"bookshop/internal/events"
	"bookshop/internal/service/dispatch"
	orderservice "bookshop/internal/service/order"
	"bookshop/pkg/logger"
)

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order-notified: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order-notified: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: при отмене контекста
// и при ошибках, которые лечатся редоставкой (конфликт версии, недоступная
// база). В этих случаях offset не коммитится.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event events.OrderNotifiedMessage
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order-notified handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order-notified processing")

	order, err := h.dispatchService.ConsumeOrderNotified(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order-notified handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order-notified handler status mismatch for order")
			sess.MarkMessage(message, "")
			return false

		case errors.Is(err, orderservice.ErrVersionConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order-notified handler version conflict, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order-notified handler failed to process order, message will be reprocessed")
			return true
		}
	}

	if order == nil {
		// заказ неизвестен, событие пропущено на уровне сервиса
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order-notified: processed")

	sess.MarkMessage(message, "")
	return false
}
