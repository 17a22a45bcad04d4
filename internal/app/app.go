// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain"
	"github.com/Conte777/tweetfeed/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, http server)
		infrastructure.Module,

		// Domain (feed renderer, alerts)
		domain.Module,
	)
}
