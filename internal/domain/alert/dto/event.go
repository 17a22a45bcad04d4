package dto

import "time"

// Priority of an alerted tweet
const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
)

// NewTweetEvent is published once for every tweet seen for the first time
type NewTweetEvent struct {
	EventID        string    `json:"event_id"`
	TweetID        string    `json:"tweet_id"`
	AuthorName     string    `json:"author_name"`
	AuthorUsername string    `json:"author_username"`
	Text           string    `json:"text"`
	CreatedAt      string    `json:"created_at,omitempty"`
	URL            string    `json:"url"`
	Priority       string    `json:"priority"`
	ObservedAt     time.Time `json:"observed_at"`
}
