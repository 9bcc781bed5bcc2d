// Package messaging связывает доменные события заказов с Kafka-продюсером.
package messaging

import (
	"context"
	"fmt"
	"strconv"

	"bookshop/internal/events"
)

type kafkaProducer interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type OrderEventPublisher struct {
	producer      kafkaProducer
	acceptedTopic string
	notifiedTopic string
}

func NewOrderEventPublisher(producer kafkaProducer, acceptedTopic, notifiedTopic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer:      producer,
		acceptedTopic: acceptedTopic,
		notifiedTopic: notifiedTopic,
	}
}

func (p *OrderEventPublisher) PublishOrderAccepted(ctx context.Context, orderID int64) error {
	message := events.OrderAcceptedMessage{OrderID: orderID}

	err := p.producer.Publish(ctx, p.acceptedTopic, strconv.FormatInt(orderID, 10), message)
	if err != nil {
		return fmt.Errorf("publish order accepted %d: %w", orderID, err)
	}
	return nil
}

func (p *OrderEventPublisher) PublishOrderNotified(ctx context.Context, orderID int64) error {
	message := events.OrderNotifiedMessage{OrderID: orderID}

	err := p.producer.Publish(ctx, p.notifiedTopic, strconv.FormatInt(orderID, 10), message)
	if err != nil {
		return fmt.Errorf("publish order notified %d: %w", orderID, err)
	}
	return nil
}
