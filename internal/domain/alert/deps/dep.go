package deps

import (
	"context"

	"github.com/Conte777/tweetfeed/internal/domain/alert/dto"
)

// SeenStore remembers which tweet ids were already alerted on
type SeenStore interface {
	// Seen returns the subset of ids already recorded
	Seen(ctx context.Context, ids []string) (map[string]bool, error)

	// MarkSeen records ids; recording an id twice is not an error
	MarkSeen(ctx context.Context, ids []string) error
}

// Notifier delivers an HTML formatted chat message
type Notifier interface {
	SendHTML(ctx context.Context, text string) error
}

// Publisher emits new tweet events
type Publisher interface {
	PublishNewTweet(ctx context.Context, event dto.NewTweetEvent) error
}

// Metrics records alert outcomes
type Metrics interface {
	RecordNewTweets(count int)
	RecordAlertSent()
	RecordAlertError(stage string)
	RecordKafkaMessage()
	RecordKafkaError()
}
