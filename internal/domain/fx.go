// Package domain aggregates the domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/internal/domain/alert"
	"github.com/Conte777/tweetfeed/internal/domain/feed"
)

// Module provides all domain modules
var Module = fx.Module("domain",
	feed.Module,
	alert.Module,
)
