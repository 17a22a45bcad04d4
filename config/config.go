package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Feed source kinds
const (
	SourceHTTP = "http"
	SourceFile = "file"
	SourceS3   = "s3"
)

// Page store kinds
const (
	PageStoreMemory = "memory"
	PageStoreRedis  = "redis"
)

// Seen store kinds
const (
	SeenStoreFile     = "file"
	SeenStorePostgres = "postgres"
)

// Config holds all configuration for the tweet feed service
type Config struct {
	Feed     FeedConfig
	Page     PageConfig
	Render   RenderConfig
	Redis    RedisConfig
	S3       S3Config
	Alerts   AlertConfig
	Telegram TelegramConfig
	Kafka    KafkaConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// FeedConfig holds tweet source and refresh configuration
type FeedConfig struct {
	Source          string
	BaseURL         string
	FilePath        string
	RefreshInterval time.Duration
}

// PageConfig holds page document configuration
type PageConfig struct {
	Store    string
	RegionID string
	LabelID  string
	DataDir  string
	Title    string
}

// RenderConfig holds tweet card rendering configuration
type RenderConfig struct {
	TimeLayout string
	TimeZone   string
	Sanitize   bool
}

// RedisConfig holds Redis page store configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// S3Config holds S3/MinIO source configuration
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Key       string
}

// AlertConfig holds new tweet alert configuration
type AlertConfig struct {
	Enabled     bool
	Keywords    []string
	MaxPerCycle int
	SeenStore   string
	SeenFile    string
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Feed     *FeedConfig
	Page     *PageConfig
	Render   *RenderConfig
	Redis    *RedisConfig
	S3       *S3Config
	Alerts   *AlertConfig
	Telegram *TelegramConfig
	Kafka    *KafkaConfig
	Database *DatabaseConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Feed:     &cfg.Feed,
		Page:     &cfg.Page,
		Render:   &cfg.Render,
		Redis:    &cfg.Redis,
		S3:       &cfg.S3,
		Alerts:   &cfg.Alerts,
		Telegram: &cfg.Telegram,
		Kafka:    &cfg.Kafka,
		Database: &cfg.Database,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Feed: FeedConfig{
			Source:          strings.ToLower(getEnv("FEED_SOURCE", SourceHTTP)),
			BaseURL:         getEnv("FEED_BASE_URL", "http://localhost:8080/"),
			FilePath:        getEnv("FEED_FILE_PATH", "data/tweets.json"),
			RefreshInterval: getEnvDuration("FEED_REFRESH_INTERVAL", 60*time.Second),
		},
		Page: PageConfig{
			Store:    strings.ToLower(getEnv("PAGE_STORE", PageStoreMemory)),
			RegionID: getEnv("PAGE_REGION_ID", "tweets"),
			LabelID:  getEnv("PAGE_LABEL_ID", "last-update"),
			DataDir:  getEnv("PAGE_DATA_DIR", "data"),
			Title:    getEnv("PAGE_TITLE", "Tweet Feed"),
		},
		Render: RenderConfig{
			TimeLayout: getEnv("RENDER_TIME_LAYOUT", "1/2/2006, 3:04:05 PM"),
			TimeZone:   getEnv("RENDER_TIMEZONE", "Local"),
			Sanitize:   getEnvBool("RENDER_SANITIZE", false),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "tweetfeed"),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			UseSSL:    getEnvBool("S3_USE_SSL", false),
			Bucket:    getEnv("S3_BUCKET", ""),
			Key:       getEnv("S3_KEY", "data/tweets.json"),
		},
		Alerts: AlertConfig{
			Enabled:     getEnvBool("ALERTS_ENABLED", false),
			Keywords:    getEnvList("ALERT_KEYWORDS", "buy,sell,alert,breaking,$"),
			MaxPerCycle: getEnvInt("ALERT_MAX_PER_CYCLE", 5),
			SeenStore:   strings.ToLower(getEnv("ALERT_SEEN_STORE", SeenStoreFile)),
			SeenFile:    getEnv("ALERT_SEEN_FILE", "data/seen_tweets.json"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS", ""),
			Topic:   getEnv("KAFKA_TOPIC", "tweets.new"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "tweetfeed"),
			Password: getEnv("DATABASE_PASSWORD", "tweetfeed"),
			DBName:   getEnv("DATABASE_NAME", "tweetfeed"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),

			MigrationsPath: getEnv("DATABASE_MIGRATIONS_PATH", "migrations"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "tweetfeed"),
			Port: getEnv("SERVICE_PORT", "8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Feed.Source {
	case SourceHTTP:
		if c.Feed.BaseURL == "" {
			return fmt.Errorf("FEED_BASE_URL is required for the http source")
		}
	case SourceFile:
		if c.Feed.FilePath == "" {
			return fmt.Errorf("FEED_FILE_PATH is required for the file source")
		}
	case SourceS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" || c.S3.Key == "" {
			return fmt.Errorf("S3_ENDPOINT, S3_BUCKET and S3_KEY are required for the s3 source")
		}
	default:
		return fmt.Errorf("unknown FEED_SOURCE %q", c.Feed.Source)
	}

	if c.Feed.RefreshInterval <= 0 {
		return fmt.Errorf("FEED_REFRESH_INTERVAL must be positive")
	}

	switch c.Page.Store {
	case PageStoreMemory:
	case PageStoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis page store")
		}
	default:
		return fmt.Errorf("unknown PAGE_STORE %q", c.Page.Store)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Logging.Format)
	}

	if c.Render.TimeLayout == "" {
		return fmt.Errorf("RENDER_TIME_LAYOUT must not be empty")
	}

	if c.Alerts.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN is required when alerts are enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("TELEGRAM_CHAT_ID is required when alerts are enabled")
		}
		if c.Alerts.MaxPerCycle < 0 {
			return fmt.Errorf("ALERT_MAX_PER_CYCLE must not be negative")
		}
		switch c.Alerts.SeenStore {
		case SeenStoreFile, SeenStorePostgres:
		default:
			return fmt.Errorf("unknown ALERT_SEEN_STORE %q", c.Alerts.SeenStore)
		}
	}

	return nil
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets environment variable as duration with default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
