package catalogclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookshop/internal/pkg/config"
	"bookshop/pkg/logger"
	retrierconfig "bookshop/pkg/retrier"
	"bookshop/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient собирает HTTP клиент каталога и дожидается его доступности.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.CatalogService) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	catalogLog := log.With(
		logger.NewField("component", "catalog-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	err := pingCatalog(ctx, catalogLog, client, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog connection: %w", err)
	}

	return client, nil
}

func pingCatalog(ctx context.Context, log logger.Logger, client *http.Client, baseURL string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting catalog connection")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/ping", http.NoBody)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("catalog ping responded with status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("catalog connection failed after retries")
		return fmt.Errorf("failed to connect to catalog: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("catalog connection established")
	return nil
}
