package page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
	"github.com/Conte777/tweetfeed/internal/domain/feed/repository/memory"
)

type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Save(context.Context, string, string) error   { return f.err }

func TestDocument_WriteAndSnapshot(t *testing.T) {
	ctx := context.Background()
	doc := NewDocument(memory.NewStore())

	require.NoError(t, doc.Region(TweetsElementID).ReplaceHTML(ctx, "<p>one</p>"))
	require.NoError(t, doc.Label(LastUpdateElementID).SetText(ctx, "Last updated: now"))

	snap, err := doc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>", snap.TweetsHTML)
	assert.Equal(t, "Last updated: now", snap.LastUpdate)
}

func TestDocument_ReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	doc := NewDocument(memory.NewStore())

	require.NoError(t, doc.Region(TweetsElementID).ReplaceHTML(ctx, "<p>one</p>"))
	require.NoError(t, doc.Region(TweetsElementID).ReplaceHTML(ctx, "<p>two</p>"))

	snap, err := doc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>two</p>", snap.TweetsHTML)
}

func TestDocument_MissingTargets(t *testing.T) {
	ctx := context.Background()
	doc := NewDocument(memory.NewStore())

	err := doc.Region("feed").ReplaceHTML(ctx, "<p>x</p>")
	assert.ErrorIs(t, err, feederrors.ErrTargetMissing)

	err = doc.Label("updated-at").SetText(ctx, "x")
	assert.ErrorIs(t, err, feederrors.ErrTargetMissing)

	// the label is a text element, not a region
	err = doc.Region(LastUpdateElementID).ReplaceHTML(ctx, "<p>x</p>")
	assert.ErrorIs(t, err, feederrors.ErrTargetMissing)
}

func TestDocument_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	doc := NewDocument(failingStore{err: boom})

	assert.ErrorIs(t, doc.Region(TweetsElementID).ReplaceHTML(ctx, "x"), boom)

	_, err := doc.Snapshot(ctx)
	assert.ErrorIs(t, err, boom)
}
