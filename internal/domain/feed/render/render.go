// Package render turns feed records into the HTML written to the page.
//
// Field values are inserted verbatim unless sanitizing is switched on, so
// markup inside a tweet reaches the page as markup.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/feed/entities"
)

const (
	// EmptyPlaceholder replaces the region when the feed has no records
	EmptyPlaceholder = `<p class="no-tweets">No tweets yet</p>`

	// LastUpdatedPrefix starts the label text
	LastUpdatedPrefix = "Last updated: "

	// InvalidDate is shown for a created_at value that cannot be parsed
	InvalidDate = "Invalid Date"

	// DefaultTimeLayout is the en-US date-time rendition
	DefaultTimeLayout = "1/2/2006, 3:04:05 PM"
)

const tweetFragment = `<div class="tweet">` +
	`<div class="tweet-header"><strong>%s</strong> <span class="username">@%s</span></div>` +
	`<div class="tweet-text">%s</div>` +
	`<div class="tweet-footer"><span class="tweet-time">%s</span> ` +
	`<a href="%s" target="_blank">View on X</a></div>` +
	`</div>`

// zoned layouts carry their own offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RubyDate, // Twitter v1: Mon Jan 02 15:04:05 -0700 2006
	time.RFC1123Z,
	time.RFC1123,
}

// local layouts are read in the renderer's location
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Renderer builds tweet cards
type Renderer struct {
	layout   string
	location *time.Location
	strict   *bluemonday.Policy
	ugc      *bluemonday.Policy
}

// Option configures a Renderer
type Option func(*Renderer)

// WithSanitizer strips markup from author fields and unsafe markup from text
func WithSanitizer() Option {
	return func(r *Renderer) {
		r.strict = bluemonday.StrictPolicy()
		r.ugc = bluemonday.UGCPolicy()
	}
}

// New creates a renderer formatting times with layout in loc
func New(layout string, loc *time.Location, opts ...Option) *Renderer {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if loc == nil {
		loc = time.Local
	}

	r := &Renderer{
		layout:   layout,
		location: loc,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a renderer from render configuration
func NewFromConfig(cfg *config.RenderConfig) (*Renderer, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid RENDER_TIMEZONE %q: %w", cfg.TimeZone, err)
	}

	var opts []Option
	if cfg.Sanitize {
		opts = append(opts, WithSanitizer())
	}
	return New(cfg.TimeLayout, loc, opts...), nil
}

// Feed renders all records in order and joins them without a separator
func (r *Renderer) Feed(tweets []entities.Tweet) string {
	var b strings.Builder
	for _, t := range tweets {
		b.WriteString(r.Tweet(t))
	}
	return b.String()
}

// Tweet renders one card
func (r *Renderer) Tweet(t entities.Tweet) string {
	name, username, text := t.DisplayName(), t.Username(), t.Text
	if r.strict != nil {
		name = r.strict.Sanitize(name)
		username = r.strict.Sanitize(username)
		text = r.ugc.Sanitize(text)
	}

	return fmt.Sprintf(tweetFragment,
		name,
		username,
		text,
		r.FormatCreatedAt(t.CreatedAt),
		t.StatusURL(),
	)
}

// FormatCreatedAt renders a created_at value, or InvalidDate
func (r *Renderer) FormatCreatedAt(raw string) string {
	ts, ok := ParseTimestamp(raw, r.location)
	if !ok {
		return InvalidDate
	}
	return r.FormatTime(ts)
}

// FormatTime renders t in the renderer's location and layout
func (r *Renderer) FormatTime(t time.Time) string {
	return t.In(r.location).Format(r.layout)
}

// LastUpdated returns the label text for the given moment
func (r *Renderer) LastUpdated(now time.Time) string {
	return LastUpdatedPrefix + r.FormatTime(now)
}

// ParseTimestamp reads the timestamp forms a feed is known to carry.
// Date-only values are UTC; date-times without an offset use loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, true
		}
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts, true
	}

	return time.Time{}, false
}
