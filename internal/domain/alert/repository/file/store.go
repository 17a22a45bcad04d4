package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Conte777/tweetfeed/internal/domain/alert/deps"
	alerterrors "github.com/Conte777/tweetfeed/internal/domain/alert/errors"
)

type seenStore struct {
	path string
	mu   sync.Mutex
}

// NewSeenStore creates a seen store kept as a JSON array of ids at path.
// A missing file is an empty set.
func NewSeenStore(path string) deps.SeenStore {
	return &seenStore{path: path}
}

// Seen returns the subset of ids present in the file
func (s *seenStore) Seen(_ context.Context, ids []string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := all[id]; ok {
			seen[id] = true
		}
	}
	return seen, nil
}

// MarkSeen adds ids and rewrites the file
func (s *seenStore) MarkSeen(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	for _, id := range ids {
		all[id] = struct{}{}
	}

	return s.save(all)
}

func (s *seenStore) load() (map[string]struct{}, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.path, alerterrors.ErrCorruptSeenFile, err)
	}

	all := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		all[id] = struct{}{}
	}
	return all, nil
}

// save writes through a temp file so a crash never leaves a truncated array
func (s *seenStore) save(all map[string]struct{}) error {
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".seen-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", alerterrors.ErrSeenStoreUnavailable, err)
	}
	return nil
}
