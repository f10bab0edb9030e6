package collector

import (
	"context"
	"log/slog"
	"time"

	"procsight/internal/model"
	"procsight/internal/stream"
)

type Scheduler struct {
	logger       *slog.Logger
	snapshots    *SnapshotCollector
	sink         stream.Sink
	pollInterval time.Duration
	errorBackoff time.Duration
}

func NewScheduler(
	logger *slog.Logger,
	snapshots *SnapshotCollector,
	sink stream.Sink,
	pollInterval, errorBackoff time.Duration,
) *Scheduler {
	if errorBackoff <= 0 {
		errorBackoff = time.Second
	}
	return &Scheduler{
		logger:       logger,
		snapshots:    snapshots,
		sink:         sink,
		pollInterval: pollInterval,
		errorBackoff: errorBackoff,
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	if err := s.collectAndSend(ctx); err != nil {
		s.logger.Warn("initial snapshot collect failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.collectAndSend(ctx); err != nil {
				s.logger.Error("snapshot collect/send failed", "error", err)
				s.sleepWithContext(ctx, s.errorBackoff)
			}
		}
	}
}

func (s *Scheduler) collectAndSend(ctx context.Context) error {
	snap, err := s.snapshots.Collect(ctx)
	if err != nil {
		return err
	}
	return s.sink.SendSnapshot(ctx, snap)
}

func (s *Scheduler) sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func AsSnapshotEnvelope(snap model.Snapshot) model.Envelope {
	return model.Envelope{Type: model.MetricTypeSnapshot, NodeID: snap.NodeID, TimestampUnix: snap.TimestampUnix, Payload: snap}
}
