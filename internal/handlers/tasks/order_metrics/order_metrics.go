package order_metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bookshop/internal/entities"
)

var ordersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "bookshop_orders_total",
	Help: "Количество заказов в разбивке по статусу.",
}, []string{"status"})

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrderMetrics struct {
	service  Service
	interval time.Duration
}

func NewOrderMetrics(service Service, interval time.Duration) *OrderMetrics {
	return &OrderMetrics{
		service:  service,
		interval: interval,
	}
}

func (o *OrderMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrderMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы без заказов обнуляем, иначе gauge застревает на старом значении
	for _, status := range entities.OrderStatuses() {
		ordersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrderMetrics) Info() string {
	return "order metrics"
}
