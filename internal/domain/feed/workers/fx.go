package workers

import (
	"context"

	"go.uber.org/fx"

	"github.com/Conte777/tweetfeed/internal/infrastructure/http/server"
)

// Module provides the feed refresh worker for fx DI
var Module = fx.Module("feed-workers",
	fx.Provide(NewRefreshWorkerFromConfig),
	fx.Invoke(registerLifecycle),
)

// registerLifecycle registers refresh worker with fx.Lifecycle.
// The server dependency orders its start hook first: the first cycle may
// fetch the feed from this same server.
func registerLifecycle(lc fx.Lifecycle, w *RefreshWorker, _ *server.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.StopContext(ctx)
		},
	})
}
