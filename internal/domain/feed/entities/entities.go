package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Default author fields used when the feed omits them
const (
	DefaultAuthorName     = "User"
	DefaultAuthorUsername = "unknown"
)

// TweetID is an opaque identifier that may arrive as a JSON string or number
type TweetID string

// UnmarshalJSON accepts both "123" and 123; numbers keep their exact digits
func (id *TweetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TweetID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("tweet id must be a string or number: %w", err)
	}
	*id = TweetID(n.String())
	return nil
}

// String returns the id as text
func (id TweetID) String() string {
	return string(id)
}

// Author is the optional nested author record of a tweet
type Author struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// Tweet is one record of the feed document. It is read-only.
type Tweet struct {
	ID        TweetID `json:"id"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"created_at"`
	Author    *Author `json:"author,omitempty"`
}

// DisplayName returns the author name or the default
func (t Tweet) DisplayName() string {
	if t.Author == nil || t.Author.Name == "" {
		return DefaultAuthorName
	}
	return t.Author.Name
}

// Username returns the author username or the default
func (t Tweet) Username() string {
	if t.Author == nil || t.Author.Username == "" {
		return DefaultAuthorUsername
	}
	return t.Author.Username
}

// StatusURL is the outbound link for the tweet
func (t Tweet) StatusURL() string {
	return "https://twitter.com/i/web/status/" + t.ID.String()
}

// ParseTweets decodes a feed document. Anything but a JSON array is an error;
// in particular a bare null is rejected rather than read as an empty feed.
func ParseTweets(data []byte) ([]Tweet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("feed document is not a JSON array (starts with %q)", preview(trimmed))
	}

	var tweets []Tweet
	if err := json.Unmarshal(trimmed, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode feed document: %w", err)
	}
	if tweets == nil {
		tweets = []Tweet{}
	}
	return tweets, nil
}

func preview(b []byte) string {
	s := string(b)
	if len(s) > 16 {
		s = s[:16]
	}
	return strings.TrimSpace(s)
}

// PageSnapshot is the current content of the page elements
type PageSnapshot struct {
	TweetsHTML string `json:"tweets_html"`
	LastUpdate string `json:"last_update"`
}
