package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Conte777/tweetfeed/internal/domain/alert/deps"
	"github.com/Conte777/tweetfeed/internal/domain/alert/entities"
	alerterrors "github.com/Conte777/tweetfeed/internal/domain/alert/errors"
)

type seenRepository struct {
	db *gorm.DB
}

// NewSeenRepository creates a new seen tweet repository
func NewSeenRepository(db *gorm.DB) deps.SeenStore {
	return &seenRepository{
		db: db,
	}
}

// Seen returns the subset of ids already stored
func (r *seenRepository) Seen(ctx context.Context, ids []string) (map[string]bool, error) {
	seen := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return seen, nil
	}

	var found []string
	result := r.db.WithContext(ctx).
		Model(&entities.SeenTweet{}).
		Where("tweet_id IN ?", ids).
		Pluck("tweet_id", &found)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, result.Error)
	}

	for _, id := range found {
		seen[id] = true
	}
	return seen, nil
}

// MarkSeen inserts ids, ignoring ones already present
func (r *seenRepository) MarkSeen(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	rows := make([]entities.SeenTweet, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, entities.SeenTweet{TweetID: id})
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, result.Error)
	}
	return nil
}
