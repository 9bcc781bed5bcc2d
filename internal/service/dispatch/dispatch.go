package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshop/internal/entities"
	orderservice "bookshop/internal/service/order"
	"bookshop/pkg/logger"
)

type Service struct {
	log        workflowLogger
	repository Repository
	txManager  TxManager
}

func New(log workflowLogger, repository Repository, txManager TxManager) *Service {
	return &Service{
		log:        log,
		repository: repository,
		txManager:  txManager,
	}
}

// ConsumeOrderNotified переводит принятый заказ в dispatched.
// Сообщение по неизвестному заказу молча пропускается (nil, nil) —
// ретраить его нечем. Конфликт версии отдаем наверх, consumer-слой
// полагается на редоставку брокера.
func (s *Service) ConsumeOrderNotified(ctx context.Context, orderID int64) (*entities.Order, error) {
	existing, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			s.log.With(
				logger.NewField("order", orderID),
			).Warn("order notified event for unknown order, dropping")
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}

	if existing.Status == entities.OrderDispatched {
		// повторная доставка события, заказ уже в терминальном статусе
		return existing, nil
	}
	if existing.Status != entities.OrderAccepted {
		return nil, fmt.Errorf("%w: %s", ErrStatusMismatch, existing.Status)
	}

	dispatched := existing.Dispatched(time.Now().UTC())

	var updated *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Update(ctx, dispatched)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("dispatch order %d: %w", orderID, err)
	}

	s.log.With(
		logger.NewField("order", updated.ID),
	).Info("order is notified")

	return updated, nil
}
