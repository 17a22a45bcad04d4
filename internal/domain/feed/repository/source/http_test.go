package source

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	feederrors "github.com/Conte777/tweetfeed/internal/domain/feed/errors"
)

func newInmemoryClient(t *testing.T, handler fasthttp.RequestHandler) *fasthttp.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()
	t.Cleanup(func() { _ = ln.Close() })

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}

func TestNewHTTPSource_ResolvesFeedPath(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{base: "http://example.com/", want: "http://example.com/data/tweets.json"},
		{base: "http://example.com/site/", want: "http://example.com/site/data/tweets.json"},
		{base: "http://example.com/site/index.html", want: "http://example.com/site/data/tweets.json"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			src, err := NewHTTPSource(&fasthttp.Client{}, tt.base, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.URL())
		})
	}
}

func TestNewHTTPSource_RejectsRelativeBase(t *testing.T) {
	_, err := NewHTTPSource(&fasthttp.Client{}, "data/", zerolog.Nop())
	assert.Error(t, err)
}

func TestHTTPSource_Fetch(t *testing.T) {
	var gotPath, gotMethod string
	client := newInmemoryClient(t, func(ctx *fasthttp.RequestCtx) {
		gotPath = string(ctx.Path())
		gotMethod = string(ctx.Method())
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`[{"id":"1","text":"hi"}]`)
	})

	src, err := NewHTTPSource(client, "http://feed.local/", zerolog.Nop())
	require.NoError(t, err)

	body, err := src.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, `[{"id":"1","text":"hi"}]`, string(body))
	assert.Equal(t, "/data/tweets.json", gotPath)
	assert.Equal(t, fasthttp.MethodGet, gotMethod)
}

func TestHTTPSource_Fetch_NonSuccessStatusReturnsBody(t *testing.T) {
	client := newInmemoryClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString("not found")
	})

	src, err := NewHTTPSource(client, "http://feed.local/", zerolog.Nop())
	require.NoError(t, err)

	body, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "not found", string(body))
}

func TestHTTPSource_Fetch_Unreachable(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	require.NoError(t, ln.Close())

	client := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	src, err := NewHTTPSource(client, "http://feed.local/", zerolog.Nop())
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, feederrors.ErrSourceUnavailable)
}

func newStalledClient(t *testing.T) *fasthttp.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		// Accept and hold connections without ever answering
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}

func TestHTTPSource_Fetch_CancelledWhileServerStalls(t *testing.T) {
	src, err := NewHTTPSource(newStalledClient(t), "http://feed.local/", zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	errCh := make(chan error, 1)
	go func() {
		_, err := src.Fetch(ctx)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.ErrorIs(t, err, feederrors.ErrSourceUnavailable)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Fetch did not return after its context was cancelled")
	}
}

func TestHTTPSource_Fetch_DeadlineWhileServerStalls(t *testing.T) {
	src, err := NewHTTPSource(newStalledClient(t), "http://feed.local/", zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = src.Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
