package deps

import (
	"context"
	"time"

	"github.com/Conte777/tweetfeed/internal/domain/feed/entities"
)

// TweetSource retrieves the raw feed document
type TweetSource interface {
	// Name identifies the source in logs
	Name() string

	// Fetch returns the document body
	Fetch(ctx context.Context) ([]byte, error)
}

// Region is a page element whose HTML contents are replaced wholesale
type Region interface {
	ReplaceHTML(ctx context.Context, html string) error
}

// Label is a page element holding plain text
type Label interface {
	SetText(ctx context.Context, text string) error
}

// PageReader exposes the current page contents to delivery
type PageReader interface {
	Snapshot(ctx context.Context) (entities.PageSnapshot, error)
}

// Observer is notified with the records of every successful non-empty refresh
type Observer interface {
	Observe(ctx context.Context, tweets []entities.Tweet) error
}

// Metrics records refresh outcomes
type Metrics interface {
	RecordRefresh(tweets int, duration float64)
	RecordRefreshError()
}

// Renderer turns records into page content
type Renderer interface {
	Feed(tweets []entities.Tweet) string
	LastUpdated(now time.Time) string
}
