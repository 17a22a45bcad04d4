package page

import (
	"context"
	"fmt"

	"github.com/Conte777/tweetfeed/internal/domain/feed/deps"
	"github.com/Conte777/tweetfeed/internal/domain/feed/entities"
	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// Element ids declared by the host page
const (
	TweetsElementID     = "tweets"
	LastUpdateElementID = "last-update"
)

// Store persists element contents by id
type Store interface {
	// Load returns "" for an element that was never written
	Load(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, id, content string) error
}

type elementKind int

const (
	kindHTML elementKind = iota
	kindText
)

// Document is the server-side page: a fixed set of addressable elements
type Document struct {
	store    Store
	elements map[string]elementKind
}

// NewDocument creates the host page layout on top of store
func NewDocument(store Store) *Document {
	return &Document{
		store: store,
		elements: map[string]elementKind{
			TweetsElementID:     kindHTML,
			LastUpdateElementID: kindText,
		},
	}
}

// Region returns the HTML element with the given id. Writes fail with
// ErrTargetMissing if the page has no such HTML element.
func (d *Document) Region(id string) deps.Region {
	return &region{doc: d, id: id}
}

// Label returns the text element with the given id. Writes fail with
// ErrTargetMissing if the page has no such text element.
func (d *Document) Label(id string) deps.Label {
	return &label{doc: d, id: id}
}

// Snapshot reads the current contents of both elements
func (d *Document) Snapshot(ctx context.Context) (entities.PageSnapshot, error) {
	tweets, err := d.store.Load(ctx, TweetsElementID)
	if err != nil {
		return entities.PageSnapshot{}, err
	}
	lastUpdate, err := d.store.Load(ctx, LastUpdateElementID)
	if err != nil {
		return entities.PageSnapshot{}, err
	}

	return entities.PageSnapshot{
		TweetsHTML: tweets,
		LastUpdate: lastUpdate,
	}, nil
}

func (d *Document) write(ctx context.Context, id string, kind elementKind, content string) error {
	if k, ok := d.elements[id]; !ok || k != kind {
		return fmt.Errorf("element #%s: %w", id, feederrors.ErrTargetMissing)
	}
	return d.store.Save(ctx, id, content)
}

type region struct {
	doc *Document
	id  string
}

func (r *region) ReplaceHTML(ctx context.Context, html string) error {
	return r.doc.write(ctx, r.id, kindHTML, html)
}

type label struct {
	doc *Document
	id  string
}

func (l *label) SetText(ctx context.Context, text string) error {
	return l.doc.write(ctx, l.id, kindText, text)
}
