package business

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/alert/deps"
	feedentities "github.com/Conte777/tweetfeed/internal/domain/feed/entities"
)

// Alert stages for error metrics
const (
	StageSeenStore = "seen_store"
	StageTelegram  = "telegram"
	StageKafka     = "kafka"
)

// UseCase alerts on tweets the first time they appear in the feed
type UseCase struct {
	enabled     bool
	keywords    []string
	maxPerCycle int

	seen      deps.SeenStore
	notifier  deps.Notifier
	publisher deps.Publisher
	metrics   deps.Metrics
	now       func() time.Time
	newID     func() string
	logger    zerolog.Logger

	mu sync.Mutex
}

// NewUseCase creates a new alert use case
func NewUseCase(
	cfg *config.AlertConfig,
	seen deps.SeenStore,
	notifier deps.Notifier,
	publisher deps.Publisher,
	metrics deps.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		enabled:     cfg.Enabled,
		keywords:    cfg.Keywords,
		maxPerCycle: cfg.MaxPerCycle,
		seen:        seen,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     metrics,
		now:         time.Now,
		newID:       uuid.NewString,
		logger:      logger,
	}
}

// Observe handles the records of one refresh. Send and publish failures are
// logged and counted; only seen store failures are returned.
func (u *UseCase) Observe(ctx context.Context, tweets []feedentities.Tweet) error {
	if !u.enabled || len(tweets) == 0 {
		return nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	fresh, err := u.unseen(ctx, tweets)
	if err != nil {
		u.metrics.RecordAlertError(StageSeenStore)
		return err
	}
	if len(fresh) == 0 {
		return nil
	}

	u.metrics.RecordNewTweets(len(fresh))
	u.logger.Info().
		Int("new", len(fresh)).
		Int("total", len(tweets)).
		Msg("New tweets observed")

	u.notify(ctx, fresh)
	u.publish(ctx, fresh)

	ids := make([]string, 0, len(fresh))
	for _, t := range fresh {
		ids = append(ids, t.ID.String())
	}
	if err := u.seen.MarkSeen(ctx, ids); err != nil {
		u.metrics.RecordAlertError(StageSeenStore)
		return fmt.Errorf("failed to mark tweets seen: %w", err)
	}

	return nil
}

// unseen returns tweets not yet recorded, in feed order, without duplicates
func (u *UseCase) unseen(ctx context.Context, tweets []feedentities.Tweet) ([]feedentities.Tweet, error) {
	ids := make([]string, 0, len(tweets))
	for _, t := range tweets {
		if t.ID != "" {
			ids = append(ids, t.ID.String())
		}
	}

	seen, err := u.seen.Seen(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read seen tweets: %w", err)
	}

	fresh := make([]feedentities.Tweet, 0, len(ids))
	batch := make(map[string]bool, len(ids))
	for _, t := range tweets {
		id := t.ID.String()
		if id == "" || seen[id] || batch[id] {
			continue
		}
		batch[id] = true
		fresh = append(fresh, t)
	}
	return fresh, nil
}

func (u *UseCase) notify(ctx context.Context, fresh []feedentities.Tweet) {
	limit := len(fresh)
	if u.maxPerCycle < limit {
		limit = u.maxPerCycle
	}

	for _, t := range fresh[:limit] {
		if err := u.notifier.SendHTML(ctx, FormatMessage(t, u.keywords)); err != nil {
			u.metrics.RecordAlertError(StageTelegram)
			u.logger.Error().Err(err).
				Str("tweet_id", t.ID.String()).
				Msg("Failed to send tweet alert")
			continue
		}
		u.metrics.RecordAlertSent()
	}
}

func (u *UseCase) publish(ctx context.Context, fresh []feedentities.Tweet) {
	observedAt := u.now().UTC()

	for _, t := range fresh {
		event := NewEvent(u.newID(), t, u.keywords)
		event.ObservedAt = observedAt

		if err := u.publisher.PublishNewTweet(ctx, event); err != nil {
			u.metrics.RecordKafkaError()
			u.logger.Error().Err(err).
				Str("tweet_id", event.TweetID).
				Msg("Failed to publish new tweet event")
			continue
		}
		u.metrics.RecordKafkaMessage()
	}
}
