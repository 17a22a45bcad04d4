package source

import (
	"context"
	"fmt"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// ObjectReader downloads one object; implemented by the S3 infrastructure client
type ObjectReader interface {
	ReadObject(ctx context.Context, key string) ([]byte, error)
	Bucket() string
}

// S3Source reads the feed document from an object store
type S3Source struct {
	reader ObjectReader
	key    string
}

// NewS3Source creates a source for key
func NewS3Source(reader ObjectReader, key string) *S3Source {
	return &S3Source{reader: reader, key: key}
}

// Name identifies the source in logs
func (s *S3Source) Name() string {
	return "s3:" + s.reader.Bucket() + "/" + s.key
}

// Fetch downloads the object
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	data, err := s.reader.ReadObject(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", feederrors.ErrSourceUnavailable, err)
	}
	return data, nil
}
