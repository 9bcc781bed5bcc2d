package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshop/internal/entities"
	"bookshop/pkg/logger"
)

type Service struct {
	log        workflowLogger
	repository Repository
	books      BookGateway
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	log workflowLogger,
	repository Repository,
	books BookGateway,
	publisher EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		log:        log,
		repository: repository,
		books:      books,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// SubmitOrder принимает или отклоняет заказ по наличию книги в каталоге
// и сохраняет его. Событие о принятом заказе уходит после коммита,
// fire-and-forget: ошибка публикации не откатывает заказ.
func (s *Service) SubmitOrder(ctx context.Context, isbn string, quantity int) (*entities.Order, error) {
	if isbn == "" {
		return nil, ErrInvalidISBN
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	draft := s.buildOrder(ctx, isbn, quantity, now)

	var persisted *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		persisted, err = s.repository.Create(ctx, draft)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publishOrderAccepted(ctx, persisted)

	return persisted, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return orders, nil
}

func (s *Service) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	return counts, nil
}

func (s *Service) buildOrder(ctx context.Context, isbn string, quantity int, now time.Time) entities.Order {
	bookEntity, err := s.books.GetBookByISBN(ctx, isbn)
	switch {
	case err == nil:
		return entities.NewAcceptedOrder(*bookEntity, quantity, now)

	case errors.Is(err, ErrBookNotFound):
		return entities.NewRejectedOrder(isbn, quantity, now)

	default:
		// недоступный каталог отклоняет заказ так же, как отсутствие книги,
		// различаем их только в логе
		s.log.With(
			logger.NewField("isbn", isbn),
			logger.NewField("error", err),
		).Warn("catalog lookup failed, rejecting order")
		return entities.NewRejectedOrder(isbn, quantity, now)
	}
}

func (s *Service) publishOrderAccepted(ctx context.Context, orderEntity *entities.Order) {
	if orderEntity.Status != entities.OrderAccepted {
		return
	}

	if err := s.publisher.PublishOrderAccepted(ctx, orderEntity.ID); err != nil {
		// заказ уже сохранен, клиенту ошибку не отдаем
		s.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("error", err),
		).Error("publish order accepted event")
		return
	}

	s.log.With(
		logger.NewField("order", orderEntity.ID),
	).Info("order accepted event sent")
}
