package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procsight/internal/collector"
	"procsight/internal/config"
	"procsight/internal/model"
	"procsight/internal/procfs"
	"procsight/internal/stream"
)

type Agent struct {
	cfg       config.Config
	logger    *slog.Logger
	scheduler *collector.Scheduler
	sink      stream.Sink
	health    *HealthStatus
}

func New(cfg config.Config, logger *slog.Logger) (*Agent, error) {
	tlsCfg, err := cfg.TLSConfig()
	if err != nil {
		return nil, fmt.Errorf("tls config: %w", err)
	}

	sink, err := stream.NewSinkFromConfig(cfg, tlsCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("stream sink: %w", err)
	}

	ticksPerSecond, err := procfs.ClockTicks()
	if err != nil {
		return nil, fmt.Errorf("resolve clock tick rate: %w", err)
	}

	fs := procfs.NewFS(cfg.ProcPath)
	snapshots := collector.NewSnapshotCollector(fs, ticksPerSecond, cfg.NodeID, cfg.Hostname)

	health := NewHealthStatus()
	wrappedSink := &healthSink{sink: sink, health: health}
	scheduler := collector.NewScheduler(
		logger,
		snapshots,
		wrappedSink,
		cfg.PollInterval,
		cfg.CollectorErrorBackoff,
	)

	return &Agent{
		cfg:       cfg,
		logger:    logger,
		scheduler: scheduler,
		sink:      wrappedSink,
		health:    health,
	}, nil
}

func (a *Agent) Run(ctx context.Context) error {
	a.logger.Info("starting procsight agent", "node_id", a.cfg.NodeID, "proc_path", a.cfg.ProcPath)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- a.run(runCtx)
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case runErr = <-runErrCh:
		// Agent terminated by itself (startup error/runtime error/parent ctx canceled).
	case sig := <-sigCh:
		a.logger.Info("shutdown signal received, starting graceful shutdown", "signal", sig.String(), "timeout", a.cfg.ShutdownTimeout)
		cancelRun()

		graceTimer := time.NewTimer(a.cfg.ShutdownTimeout)
		defer graceTimer.Stop()

		select {
		case runErr = <-runErrCh:
			// graceful stop completed in time
		case sig2 := <-sigCh:
			a.logger.Warn("second signal received, forcing immediate shutdown", "signal", sig2.String())
			runErr = context.Canceled
		case <-graceTimer.C:
			a.logger.Warn("graceful shutdown timeout reached, forcing shutdown", "timeout", a.cfg.ShutdownTimeout)
			runErr = context.DeadlineExceeded
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancelShutdown()
	a.shutdown(shutdownCtx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) && !errors.Is(runErr, context.DeadlineExceeded) {
		return runErr
	}
	a.logger.Info("procsight agent stopped")
	return nil
}

func BuildLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	hOpts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, hOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, hOpts))
}

type healthSink struct {
	sink   stream.Sink
	health *HealthStatus
}

func (s *healthSink) SendSnapshot(ctx context.Context, snap model.Snapshot) error {
	err := s.sink.SendSnapshot(ctx, snap)
	if err != nil {
		s.health.SetStreamConnected(false)
		return err
	}
	s.health.SetStreamConnected(true)
	if snap.TimestampUnix > 0 {
		s.health.MarkSnapshot(time.Unix(snap.TimestampUnix, 0).UTC())
	}
	return nil
}

func (s *healthSink) Close(ctx context.Context) error {
	return s.sink.Close(ctx)
}
