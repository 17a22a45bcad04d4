// Package noop provides stand-ins for alert collaborators that are switched off
package noop

import (
	"context"

	"github.com/Conte777/tweetfeed/internal/domain/alert/dto"
)

// Notifier drops messages
type Notifier struct{}

// SendHTML does nothing
func (Notifier) SendHTML(context.Context, string) error { return nil }

// Publisher drops events
type Publisher struct{}

// PublishNewTweet does nothing
func (Publisher) PublishNewTweet(context.Context, dto.NewTweetEvent) error { return nil }
