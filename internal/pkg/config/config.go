package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OrderMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	CatalogService struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	Kafka struct {
		PortHealthcheck           string
		Brokers                   string
		OrderAcceptedTopic        string
		OrderNotifiedTopic        string
		DispatchConsumerGroup     string
		NotificationConsumerGroup string
		Sarama                    Sarama
		Handlers                  KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderNotified OrderNotified
	}

	OrderNotified struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		CatalogService CatalogService
		Kafka          Kafka
	}
)

// Check валидирует группу параметров. Каждый бинарь передает в Load
// только те группы, которые он реально использует.
type Check func(*Config) error

func Load(checks ...Check) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	for _, check := range checks {
		if err := check(cfg); err != nil {
			return nil, fmt.Errorf("validation: %w", err)
		}
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	orderMetricsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_METRICS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderNotifiedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_NOTIFIED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	catalogRequestTimeout, err := osGetEnvDuration("CATALOG_SERVICE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrderMetricsInterval: orderMetricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		CatalogService: CatalogService{
			BaseURL:        os.Getenv("CATALOG_SERVICE_BASE_URL"),
			RequestTimeout: catalogRequestTimeout,
		},
		Kafka: Kafka{
			Brokers:                   os.Getenv("KAFKA_BROKERS"),
			OrderAcceptedTopic:        os.Getenv("KAFKA_TOPIC_ORDER_ACCEPTED"),
			OrderNotifiedTopic:        os.Getenv("KAFKA_TOPIC_ORDER_NOTIFIED"),
			DispatchConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP_DISPATCH"),
			NotificationConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP_NOTIFICATION"),
			PortHealthcheck:           os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderNotified: OrderNotified{
					ProcessTimeout: orderNotifiedTimeout,
				},
			},
		},
	}, nil
}

// WithServer проверяет параметры HTTP-сервера и его middleware.
func WithServer(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	return nil
}

// WithDatabase проверяет параметры подключения к postgres.
func WithDatabase(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

// WithTasks проверяет параметры фоновых задач.
func WithTasks(cfg *Config) error {
	if cfg.Tasks.OrderMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_METRICS_INTERVAL is required")
	}
	return nil
}

// WithCatalogService проверяет параметры клиента каталога.
func WithCatalogService(cfg *Config) error {
	if cfg.CatalogService.BaseURL == "" {
		return errors.New("CATALOG_SERVICE_BASE_URL is required")
	}
	if cfg.CatalogService.RequestTimeout == time.Duration(0) {
		return errors.New("CATALOG_SERVICE_REQUEST_TIMEOUT is required")
	}
	return nil
}

// WithKafka проверяет общие для продюсеров и консьюмеров параметры kafka.
func WithKafka(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.OrderAcceptedTopic == "" {
		return errors.New("KAFKA_TOPIC_ORDER_ACCEPTED is required")
	}
	if cfg.Kafka.OrderNotifiedTopic == "" {
		return errors.New("KAFKA_TOPIC_ORDER_NOTIFIED is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

// WithDispatchWorker проверяет параметры консьюмера воркера отгрузки.
func WithDispatchWorker(cfg *Config) error {
	if cfg.Kafka.DispatchConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP_DISPATCH is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.OrderNotified.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_NOTIFIED_PROCESS_TIMEOUT is required")
	}
	return nil
}

// WithNotificationWorker проверяет параметры консьюмера воркера уведомлений.
func WithNotificationWorker(cfg *Config) error {
	if cfg.Kafka.NotificationConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP_NOTIFICATION is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
