package entities

import "time"

// SeenTweet records that a tweet id has already been alerted on
type SeenTweet struct {
	TweetID string    `gorm:"primaryKey;size:64" db:"tweet_id" json:"tweetId"`
	SeenAt  time.Time `gorm:"autoCreateTime" db:"seen_at" json:"seenAt"`
}

// TableName returns the table name for SeenTweet
func (SeenTweet) TableName() string {
	return "seen_tweets"
}
