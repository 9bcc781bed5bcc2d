package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"bookshop/internal/dto"
	"bookshop/internal/entities"
	orderservice "bookshop/internal/service/order"
	retrierconfig "bookshop/pkg/retrier"
	"bookshop/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "catalog-service"
)

// Бюджет ретраев меньше секунды: лукап стоит на пути submitOrder,
// долгий каталог для заказчика равен отсутствию книги.
const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type BookGateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

func New(client httpClient, baseURL string) *BookGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &BookGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// GetBookByISBN запрашивает книгу у каталога. 404 превращается в
// order.ErrBookNotFound, остальные ошибки после ретраев уходят как есть.
func (g *BookGateway) GetBookByISBN(ctx context.Context, isbn string) (*entities.Book, error) {
	var bookDTO dto.Book

	err := g.executeWithMetrics(ctx, "GetBookByISBN", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/books/"+isbn, http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("catalog request: %w", err)
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(&bookDTO)
		case resp.StatusCode == http.StatusNotFound:
			return orderservice.ErrBookNotFound
		default:
			return &statusError{code: resp.StatusCode}
		}
	})
	if err != nil {
		if errors.Is(err, orderservice.ErrBookNotFound) {
			return nil, orderservice.ErrBookNotFound
		}
		return nil, fmt.Errorf("gateway catalog, get book %s: %w", isbn, err)
	}

	return toDomain(&bookDTO), nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog responded with status %d", e.code)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, orderservice.ErrBookNotFound) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймауты ретраим
	return true
}

func (g *BookGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	if errors.Is(err, orderservice.ErrBookNotFound) {
		return "404"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "network_error"
}
