// Package alert contains the new tweet alert domain module
package alert

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/alert/deps"
	fileRepo "github.com/Conte777/tweetfeed/internal/domain/alert/repository/file"
	"github.com/Conte777/tweetfeed/internal/domain/alert/repository/noop"
	postgresRepo "github.com/Conte777/tweetfeed/internal/domain/alert/repository/postgres"
	"github.com/Conte777/tweetfeed/internal/domain/alert/usecase/business"
	"github.com/Conte777/tweetfeed/internal/domain/feed"
	feeddeps "github.com/Conte777/tweetfeed/internal/domain/feed/deps"
	"github.com/Conte777/tweetfeed/internal/infrastructure/database"
	"github.com/Conte777/tweetfeed/internal/infrastructure/kafka"
	"github.com/Conte777/tweetfeed/internal/infrastructure/metrics"
	"github.com/Conte777/tweetfeed/internal/infrastructure/telegram"
)

// Module provides alert domain components for fx dependency injection.
// Collaborators are only connected when alerts are enabled.
var Module = fx.Module("alert",
	// Repository
	fx.Provide(provideSeenStore),
	fx.Provide(provideNotifier),
	fx.Provide(providePublisher),
	fx.Provide(provideMetrics),

	// UseCase
	fx.Provide(business.NewUseCase),

	// Hook into every feed refresh
	fx.Provide(fx.Annotate(asObserver, fx.ResultTags(feed.ObserverGroup))),
)

// provideSeenStore selects the seen tweet store
func provideSeenStore(
	lc fx.Lifecycle,
	alertCfg *config.AlertConfig,
	dbCfg *config.DatabaseConfig,
	logger zerolog.Logger,
) (deps.SeenStore, error) {
	if alertCfg.Enabled && alertCfg.SeenStore == config.SeenStorePostgres {
		db, err := database.NewPostgresDBFx(lc, dbCfg, logger)
		if err != nil {
			return nil, err
		}
		return postgresRepo.NewSeenRepository(db), nil
	}
	return fileRepo.NewSeenStore(alertCfg.SeenFile), nil
}

// provideNotifier creates the Telegram sender, or a noop when alerts are off
func provideNotifier(
	alertCfg *config.AlertConfig,
	tgCfg *config.TelegramConfig,
	logger zerolog.Logger,
) (deps.Notifier, error) {
	if !alertCfg.Enabled {
		return noop.Notifier{}, nil
	}
	bot, err := telegram.NewBot(tgCfg.BotToken, tgCfg.ChatID, logger)
	if err != nil {
		return nil, err
	}
	return bot, nil
}

// providePublisher creates the Kafka producer when brokers are configured
func providePublisher(
	lc fx.Lifecycle,
	alertCfg *config.AlertConfig,
	kafkaCfg *config.KafkaConfig,
	logger zerolog.Logger,
) (deps.Publisher, error) {
	if !alertCfg.Enabled || len(kafkaCfg.Brokers) == 0 {
		return noop.Publisher{}, nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Closing Kafka producer")
			return producer.Close()
		},
	})

	return producer, nil
}

func provideMetrics(m *metrics.Metrics) deps.Metrics {
	return m
}

func asObserver(uc *business.UseCase) feeddeps.Observer {
	return uc
}
