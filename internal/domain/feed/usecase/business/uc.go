package business

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Conte777/tweetfeed/internal/domain/feed/deps"
	"github.com/Conte777/tweetfeed/internal/domain/feed/entities"
	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
	"github.com/Conte777/tweetfeed/internal/domain/feed/render"
)

// UseCase implements the feed refresh cycle
type UseCase struct {
	source    deps.TweetSource
	region    deps.Region
	label     deps.Label
	renderer  deps.Renderer
	observers []deps.Observer
	metrics   deps.Metrics
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a UseCase
type Option func(*UseCase)

// WithObservers registers observers notified after each non-empty refresh
func WithObservers(observers ...deps.Observer) Option {
	return func(u *UseCase) {
		for _, o := range observers {
			if o != nil {
				u.observers = append(u.observers, o)
			}
		}
	}
}

// WithMetrics records refresh outcomes
func WithMetrics(m deps.Metrics) Option {
	return func(u *UseCase) {
		u.metrics = m
	}
}

// WithClock overrides the time source used for the label
func WithClock(now func() time.Time) Option {
	return func(u *UseCase) {
		u.now = now
	}
}

// NewUseCase creates a new feed use case
func NewUseCase(
	source deps.TweetSource,
	region deps.Region,
	label deps.Label,
	renderer deps.Renderer,
	logger zerolog.Logger,
	opts ...Option,
) *UseCase {
	u := &UseCase{
		source:   source,
		region:   region,
		label:    label,
		renderer: renderer,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Refresh runs one cycle: fetch, parse, render, write.
// Failures never escape: each failed cycle produces exactly one error log
// entry and leaves whatever the page already showed.
func (u *UseCase) Refresh(ctx context.Context) {
	start := u.now()

	count, err := u.refresh(ctx)
	if err != nil {
		if u.metrics != nil {
			u.metrics.RecordRefreshError()
		}
		u.logger.Error().
			Err(fmt.Errorf("%w: %w", feederrors.ErrRefreshFailed, err)).
			Str("source", u.source.Name()).
			Msg("Error loading tweets")
		return
	}

	if u.metrics != nil {
		u.metrics.RecordRefresh(count, u.now().Sub(start).Seconds())
	}
}

func (u *UseCase) refresh(ctx context.Context) (int, error) {
	body, err := u.source.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	tweets, err := entities.ParseTweets(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", feederrors.ErrMalformedFeed, err)
	}

	if len(tweets) == 0 {
		if err := u.region.ReplaceHTML(ctx, render.EmptyPlaceholder); err != nil {
			return 0, err
		}
		u.logger.Debug().Msg("Feed is empty")
		return 0, nil
	}

	if err := u.region.ReplaceHTML(ctx, u.renderer.Feed(tweets)); err != nil {
		return 0, err
	}

	if err := u.label.SetText(ctx, u.renderer.LastUpdated(u.now())); err != nil {
		return 0, err
	}

	u.logger.Debug().Int("tweets", len(tweets)).Msg("Feed refreshed")

	u.notify(ctx, tweets)

	return len(tweets), nil
}

// notify hands the records to every observer; observer failures are not refresh failures
func (u *UseCase) notify(ctx context.Context, tweets []entities.Tweet) {
	for _, o := range u.observers {
		if err := o.Observe(ctx, tweets); err != nil {
			u.logger.Warn().Err(err).Msg("Feed observer failed")
		}
	}
}
