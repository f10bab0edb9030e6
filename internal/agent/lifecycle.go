package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

func (a *Agent) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.scheduler.Run(gctx)
	})
	g.Go(func() error {
		return a.runHealthLoop(gctx)
	})
	g.Go(func() error {
		return a.runProbeListener(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *Agent) runHealthLoop(ctx context.Context) error {
	t := time.NewTicker(a.cfg.HealthInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			a.logHealth()
		}
	}
}

func (a *Agent) logHealth() {
	a.logger.Log(context.Background(), slog.LevelDebug, "agent health", "snapshot", a.health.Snapshot())
}

func (a *Agent) shutdown(ctx context.Context) {
	if err := a.sink.Close(ctx); err != nil {
		a.logger.Warn("stream sink close failed", "error", err)
	}
	a.health.SetStreamConnected(false)
}
