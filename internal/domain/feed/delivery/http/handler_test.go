package http

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/feed/entities"
	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

// mockPageReader is a mock implementation of deps.PageReader
type mockPageReader struct {
	snap entities.PageSnapshot
	err  error
}

func (m *mockPageReader) Snapshot(context.Context) (entities.PageSnapshot, error) {
	return m.snap, m.err
}

func newHandler(reader *mockPageReader) *PageHandler {
	return NewPageHandler(
		reader,
		&config.PageConfig{Title: "Tweets", RegionID: "tweets", LabelID: "last-update"},
		&config.FeedConfig{RefreshInterval: 60 * time.Second},
		zerolog.Nop(),
	)
}

func serve(h func(*fasthttp.RequestCtx)) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	h(ctx)
	return ctx
}

func TestIndex_RegionUnescapedLabelEscaped(t *testing.T) {
	h := newHandler(&mockPageReader{snap: entities.PageSnapshot{
		TweetsHTML: `<div class="tweet"><b>bold</b></div>`,
		LastUpdate: "Last updated: <script>",
	}})

	ctx := serve(h.Index)
	body := string(ctx.Response.Body())

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "text/html; charset=utf-8", string(ctx.Response.Header.ContentType()))
	assert.Contains(t, body, `<div id="tweets"><div class="tweet"><b>bold</b></div></div>`)
	assert.Contains(t, body, `<div id="last-update">Last updated: &lt;script&gt;</div>`)
	assert.Contains(t, body, `<meta http-equiv="refresh" content="60">`)
	assert.Contains(t, body, `<title>Tweets</title>`)
}

func TestFragment(t *testing.T) {
	h := newHandler(&mockPageReader{snap: entities.PageSnapshot{TweetsHTML: "<p>x</p>"}})

	ctx := serve(h.Fragment)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "<p>x</p>", string(ctx.Response.Body()))
}

func TestFeed_JSON(t *testing.T) {
	h := newHandler(&mockPageReader{snap: entities.PageSnapshot{
		TweetsHTML: "<p>x</p>",
		LastUpdate: "Last updated: now",
	}})

	ctx := serve(h.Feed)

	var resp struct {
		Success bool                  `json:"success"`
		Data    entities.PageSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "<p>x</p>", resp.Data.TweetsHTML)
	assert.Equal(t, "Last updated: now", resp.Data.LastUpdate)
}

func TestFeed_StoreUnavailable(t *testing.T) {
	h := newHandler(&mockPageReader{err: feederrors.ErrStoreUnavailable})

	ctx := serve(h.Feed)

	assert.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"success":false`)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantHealth HealthStatus
	}{
		{name: "healthy", wantStatus: fasthttp.StatusOK, wantHealth: HealthStatusHealthy},
		{name: "store down", err: feederrors.ErrStoreUnavailable, wantStatus: fasthttp.StatusServiceUnavailable, wantHealth: HealthStatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(&mockPageReader{err: tt.err})

			ctx := serve(h.Health)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.Equal(t, tt.wantStatus, ctx.Response.StatusCode())
			assert.Equal(t, tt.wantHealth, resp.Status)
		})
	}
}

func TestRouter_ServesRoutesAndData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tweets.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_tweets.json"), []byte(`["1"]`), 0o644))

	h := newHandler(&mockPageReader{snap: entities.PageSnapshot{TweetsHTML: "<p>x</p>"}})
	rt := router.New()
	NewRouter(h, &config.PageConfig{DataDir: dir}, zerolog.Nop()).RegisterRoutes(rt)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/fragment/tweets", wantStatus: fasthttp.StatusOK, wantBody: "<p>x</p>"},
		{path: "/data/tweets.json", wantStatus: fasthttp.StatusOK, wantBody: "[]"},
		{path: "/data/", wantStatus: fasthttp.StatusNotFound},
		{path: "/data/seen_tweets.json", wantStatus: fasthttp.StatusNotFound},
		{path: "/data/../config/config.go", wantStatus: fasthttp.StatusNotFound},
		{path: "/nope", wantStatus: fasthttp.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctx := &fasthttp.RequestCtx{}
			ctx.Request.Header.SetMethod(fasthttp.MethodGet)
			ctx.Request.SetRequestURI(tt.path)

			rt.Handler(ctx)

			assert.Equal(t, tt.wantStatus, ctx.Response.StatusCode())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, string(ctx.Response.Body()))
			}
		})
	}
}
