package source

import (
	"context"
	"fmt"
	"os"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// FileSource reads the feed document from local disk
type FileSource struct {
	path string
}

// NewFileSource creates a source for path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source in logs
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Fetch reads the whole file
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", s.path, feederrors.ErrSourceUnavailable, err)
	}
	return data, nil
}
