package order_accepted

import (
	"encoding/json"

	"bookshop/internal/events"
	"bookshop/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	relay     Relay
	publisher Publisher
	log       handlerLogger
}

func New(log handlerLogger, relay Relay, publisher Publisher) *Handler {
	handlerLog := log.With()

	return &Handler{
		relay:     relay,
		publisher: publisher,
		log:       handlerLog,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim гоняет сообщения claim-а через конвейер Pack -> Label -> publish.
// Конвейер живет в рамках claim-а: offset коммитится только после успешной
// публикации order-notified, поэтому сбой публикации или падение процесса
// лечится редоставкой брокера.
func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	packed := make(chan int64)
	defer close(packed)

	labeled := h.relay.Label(sess.Context(), packed)

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order-accepted: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message, packed, labeled)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order-accepted: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: при закрытии сессии
// и при ошибке публикации. В этих случаях offset не коммитится.
func (h *Handler) messageProcessing(
	sess sarama.ConsumerGroupSession,
	message *sarama.ConsumerMessage,
	packed chan<- int64,
	labeled <-chan events.OrderNotifiedMessage,
) bool {
	var event events.OrderAcceptedMessage
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order-accepted handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	orderID := h.relay.Pack(event)

	select {
	case packed <- orderID:
	case <-sess.Context().Done():
		h.log.With(
			logger.NewField("order", orderID),
		).Warn("order-accepted handler session closed, message will be reprocessed")
		return true
	}

	// Label 1:1 и сохраняет порядок, следующий выход конвейера отвечает
	// этому сообщению
	var notified events.OrderNotifiedMessage
	select {
	case labeledMessage, ok := <-labeled:
		if !ok {
			return true
		}
		notified = labeledMessage
	case <-sess.Context().Done():
		h.log.With(
			logger.NewField("order", orderID),
		).Warn("order-accepted handler session closed, message will be reprocessed")
		return true
	}

	err = h.publisher.PublishOrderNotified(sess.Context(), notified.OrderID)
	if err != nil {
		h.log.With(
			logger.NewField("order", notified.OrderID),
			logger.NewField("error", err),
		).Error("order-accepted handler failed to publish order-notified, message will be reprocessed")
		return true
	}

	sess.MarkMessage(message, "")
	return false
}
