package business

import (
	"fmt"
	"strings"

	"github.com/Conte777/tweetfeed/internal/domain/alert/dto"
	feedentities "github.com/Conte777/tweetfeed/internal/domain/feed/entities"
)

const (
	// MaxTextRunes bounds the tweet text quoted in an alert
	MaxTextRunes = 280

	priorityEmoji = "🔥"
	normalEmoji   = "📊"
)

const alertTemplate = "%s <b>%s</b> (@%s)\n\n%s\n\n🔗 <a href=\"%s\">View on X</a>"

// IsPriority reports whether text contains any keyword, ignoring case
func IsPriority(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// FormatMessage builds the Telegram HTML message for one tweet
func FormatMessage(t feedentities.Tweet, keywords []string) string {
	emoji := normalEmoji
	if IsPriority(t.Text, keywords) {
		emoji = priorityEmoji
	}

	return fmt.Sprintf(alertTemplate,
		emoji,
		authorName(t),
		authorUsername(t),
		truncate(t.Text, MaxTextRunes),
		StatusURL(t),
	)
}

// StatusURL links to the tweet under its author, or under "i" when the author is unknown
func StatusURL(t feedentities.Tweet) string {
	user := "i"
	if t.Author != nil && t.Author.Username != "" {
		user = t.Author.Username
	}
	return fmt.Sprintf("https://twitter.com/%s/status/%s", user, t.ID)
}

// NewEvent builds the published event for a tweet
func NewEvent(eventID string, t feedentities.Tweet, keywords []string) dto.NewTweetEvent {
	priority := dto.PriorityNormal
	if IsPriority(t.Text, keywords) {
		priority = dto.PriorityHigh
	}

	return dto.NewTweetEvent{
		EventID:        eventID,
		TweetID:        t.ID.String(),
		AuthorName:     authorName(t),
		AuthorUsername: authorUsername(t),
		Text:           t.Text,
		CreatedAt:      t.CreatedAt,
		URL:            StatusURL(t),
		Priority:       priority,
	}
}

func authorName(t feedentities.Tweet) string {
	if t.Author == nil || t.Author.Name == "" {
		return "Unknown"
	}
	return t.Author.Name
}

func authorUsername(t feedentities.Tweet) string {
	if t.Author == nil || t.Author.Username == "" {
		return "unknown"
	}
	return t.Author.Username
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
