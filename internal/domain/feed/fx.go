// Package feed contains the tweet feed domain module
package feed

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/config"
	httpDelivery "github.com/Conte777/tweetfeed/internal/domain/feed/delivery/http"
	"github.com/Conte777/tweetfeed/internal/domain/feed/deps"
	"github.com/Conte777/tweetfeed/internal/domain/feed/render"
	"github.com/Conte777/tweetfeed/internal/domain/feed/repository/memory"
	"github.com/Conte777/tweetfeed/internal/domain/feed/repository/page"
	redisRepo "github.com/Conte777/tweetfeed/internal/domain/feed/repository/redis"
	"github.com/Conte777/tweetfeed/internal/domain/feed/repository/source"
	"github.com/Conte777/tweetfeed/internal/domain/feed/usecase/business"
	"github.com/Conte777/tweetfeed/internal/domain/feed/workers"
	"github.com/Conte777/tweetfeed/internal/infrastructure/http/server"
	"github.com/Conte777/tweetfeed/internal/infrastructure/metrics"
	infraredis "github.com/Conte777/tweetfeed/internal/infrastructure/redis"
	"github.com/Conte777/tweetfeed/internal/infrastructure/s3"
)

// ObserverGroup is the fx value group refresh observers are collected from
const ObserverGroup = `group:"feed_observers"`

// Module provides feed domain components for fx dependency injection
var Module = fx.Module("feed",
	// Repository
	fx.Provide(providePageStore),
	fx.Provide(page.NewDocument),
	fx.Provide(providePageReader),
	fx.Provide(provideSource),

	// UseCase
	fx.Provide(render.NewFromConfig),
	fx.Provide(provideUseCase),
	fx.Provide(provideRefresher),

	// Delivery
	fx.Provide(httpDelivery.NewPageHandler),
	fx.Provide(httpDelivery.NewRouter),
	fx.Invoke(registerRoutes),

	// Workers
	workers.Module,
)

// providePageStore selects the page store backend
func providePageStore(
	lc fx.Lifecycle,
	pageCfg *config.PageConfig,
	redisCfg *config.RedisConfig,
	logger zerolog.Logger,
) (page.Store, error) {
	switch pageCfg.Store {
	case config.PageStoreMemory:
		return memory.NewStore(), nil
	case config.PageStoreRedis:
		client := infraredis.NewClientFx(lc, redisCfg, logger)
		return redisRepo.NewStore(client, redisCfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown page store %q", pageCfg.Store)
	}
}

func providePageReader(doc *page.Document) deps.PageReader {
	return doc
}

// provideSource selects where the feed document is read from
func provideSource(
	feedCfg *config.FeedConfig,
	s3Cfg *config.S3Config,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) (deps.TweetSource, error) {
	var (
		src deps.TweetSource
		err error
	)

	switch feedCfg.Source {
	case config.SourceHTTP:
		client := &fasthttp.Client{Name: serviceCfg.Name}
		src, err = source.NewHTTPSource(client, feedCfg.BaseURL, logger)
	case config.SourceFile:
		src = source.NewFileSource(feedCfg.FilePath)
	case config.SourceS3:
		var reader *s3.Client
		reader, err = s3.NewClient(s3Cfg, logger)
		if err == nil {
			src = source.NewS3Source(reader, s3Cfg.Key)
		}
	default:
		err = fmt.Errorf("unknown feed source %q", feedCfg.Source)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Str("source", src.Name()).Msg("Feed source configured")
	return src, nil
}

// UseCaseParams defines parameters for the feed use case
type UseCaseParams struct {
	fx.In

	Source    deps.TweetSource
	Document  *page.Document
	Renderer  *render.Renderer
	PageCfg   *config.PageConfig
	Metrics   *metrics.Metrics
	Observers []deps.Observer `group:"feed_observers"`
	Logger    zerolog.Logger
}

// provideUseCase binds the use case to the configured region and label
func provideUseCase(p UseCaseParams) *business.UseCase {
	return business.NewUseCase(
		p.Source,
		p.Document.Region(p.PageCfg.RegionID),
		p.Document.Label(p.PageCfg.LabelID),
		p.Renderer,
		p.Logger.With().Str("component", "feed-renderer").Logger(),
		business.WithMetrics(p.Metrics),
		business.WithObservers(p.Observers...),
	)
}

func provideRefresher(uc *business.UseCase) workers.Refresher {
	return uc
}

// registerRoutes registers page HTTP routes on the server
func registerRoutes(srv *server.Server, router *httpDelivery.Router) {
	router.RegisterRoutes(srv.Router)
}
