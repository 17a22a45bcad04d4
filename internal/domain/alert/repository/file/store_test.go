package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alerterrors "github.com/Conte777/tweetfeed/internal/domain/alert/errors"
)

func TestSeenStore_MissingFileIsEmpty(t *testing.T) {
	store := NewSeenStore(filepath.Join(t.TempDir(), "seen.json"))

	seen, err := store.Seen(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestSeenStore_MarkAndRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "seen.json")
	store := NewSeenStore(path)

	require.NoError(t, store.MarkSeen(ctx, []string{"2", "1"}))
	require.NoError(t, store.MarkSeen(ctx, []string{"1", "3"}))

	seen, err := store.Seen(ctx, []string{"1", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"1": true, "3": true}, seen)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var ids []string
	require.NoError(t, json.Unmarshal(data, &ids))
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestSeenStore_ReadsExistingArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte(`["44196397","7"]`), 0o644))

	seen, err := NewSeenStore(path).Seen(context.Background(), []string{"7", "8"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"7": true}, seen)
}

func TestSeenStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops":true}`), 0o644))
	store := NewSeenStore(path)

	_, err := store.Seen(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, alerterrors.ErrCorruptSeenFile)

	err = store.MarkSeen(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, alerterrors.ErrCorruptSeenFile)
}
