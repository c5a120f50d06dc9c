package expiry

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
)

// runScheduler drives RunOnce on the configured wall-clock interval,
// independent of request traffic. A run has no mid-scan cancellation: it
// either completes or the process stops.
func runScheduler(lc fx.Lifecycle, svc *Service, cfg *cfgpkg.Config, log *zap.SugaredLogger) {
	interval := cfg.Scheduler.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Infow("starting expiry scheduler", "interval", interval)
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()

				if _, _, err := svc.RunOnce(ctx); err != nil {
					log.Errorf("expiry scan failed: %v", err)
				}
				for {
					select {
					case <-ticker.C:
						if _, _, err := svc.RunOnce(ctx); err != nil {
							log.Errorf("expiry scan failed: %v", err)
						}
					case <-ctx.Done():
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Infow("stopping expiry scheduler")
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

// Module exposes the expiration scheduler via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
	fx.Invoke(runScheduler),
)
