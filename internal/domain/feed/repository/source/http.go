package source

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// FeedPath is the fixed location of the feed document relative to the site root
const FeedPath = "data/tweets.json"

// HTTPSource fetches the feed document with a plain GET.
// No headers, auth, cache directives or timeout are set, and the status
// code is not inspected: the body alone decides whether parsing succeeds.
type HTTPSource struct {
	client *fasthttp.Client
	url    string
	logger zerolog.Logger
}

// NewHTTPSource resolves FeedPath against baseURL
func NewHTTPSource(client *fasthttp.Client, baseURL string, logger zerolog.Logger) (*HTTPSource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("feed base url %q must be absolute", baseURL)
	}

	ref, _ := url.Parse(FeedPath)

	return &HTTPSource{
		client: client,
		url:    base.ResolveReference(ref).String(),
		logger: logger,
	}, nil
}

// Name identifies the source in logs
func (s *HTTPSource) Name() string {
	return "http:" + s.url
}

// URL returns the resolved document location
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch performs the GET and returns a copy of the body. Cancelling ctx
// abandons the request; the pooled connection is released when the peer
// answers or drops it.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	done := make(chan fetchResult, 1)
	go func() {
		done <- s.do()
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("GET %s: %w: %w", s.url, feederrors.ErrSourceUnavailable, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("GET %s: %w: %v", s.url, feederrors.ErrSourceUnavailable, res.err)
		}
		s.logger.Debug().
			Str("url", s.url).
			Int("status", res.status).
			Int("bytes", len(res.body)).
			Msg("Fetched feed document")
		return res.body, nil
	}
}

type fetchResult struct {
	body   []byte
	status int
	err    error
}

func (s *HTTPSource) do() fetchResult {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := s.client.Do(req, resp); err != nil {
		return fetchResult{err: err}
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return fetchResult{body: body, status: resp.StatusCode()}
}
