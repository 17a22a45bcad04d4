// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	httpfx "github.com/Conte777/tweetfeed/internal/infrastructure/http"
	"github.com/Conte777/tweetfeed/internal/infrastructure/logger"
	"github.com/Conte777/tweetfeed/internal/infrastructure/metrics"
)

// Module aggregates the always-on infrastructure modules.
// Optional collaborators (redis, s3, telegram, kafka, postgres) are
// constructed by the domain modules that need them, driven by config.
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	httpfx.Module,
)
