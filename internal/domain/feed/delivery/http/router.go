package http

import (
	"path/filepath"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/feed/repository/source"
	"github.com/Conte777/tweetfeed/pkg/httputil"
)

// Router registers page HTTP routes
type Router struct {
	handler *PageHandler
	dataDir string
	logger  zerolog.Logger
}

// NewRouter creates a new page router
func NewRouter(handler *PageHandler, pageCfg *config.PageConfig, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		dataDir: pageCfg.DataDir,
		logger:  logger,
	}
}

// RegisterRoutes registers page routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	logged := httputil.RequestLogger(r.logger)

	rt.GET("/", httputil.Chain(r.handler.Index, logged, httputil.NoCache))
	rt.GET("/fragment/tweets", httputil.Chain(r.handler.Fragment, logged, httputil.NoCache))
	rt.GET("/api/feed", httputil.Chain(r.handler.Feed, logged, httputil.NoCache))
	rt.GET("/health", r.handler.Health)

	// Only the feed document is published; the data directory also holds alert state
	if r.dataDir != "" {
		rt.GET("/"+source.FeedPath, httputil.Chain(r.FeedDocument, logged, httputil.NoCache))
	}
}

// FeedDocument serves tweets.json from the data directory
func (r *Router) FeedDocument(ctx *fasthttp.RequestCtx) {
	fasthttp.ServeFile(ctx, filepath.Join(r.dataDir, filepath.Base(source.FeedPath)))
}
