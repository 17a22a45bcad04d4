package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// Store keeps page element contents in Redis so several page
// servers can share one renderer
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a Redis backed page store; keys are "<prefix>:page:<id>"
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(id string) string {
	return s.prefix + ":page:" + id
}

// Load returns the element content, "" if never written
func (s *Store) Load(ctx context.Context, id string) (string, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load element %s: %w: %v", id, feederrors.ErrStoreUnavailable, err)
	}
	return val, nil
}

// Save replaces the element content
func (s *Store) Save(ctx context.Context, id, content string) error {
	if err := s.client.Set(ctx, s.key(id), content, 0).Err(); err != nil {
		return fmt.Errorf("save element %s: %w: %v", id, feederrors.ErrStoreUnavailable, err)
	}
	return nil
}
