package collector

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"procsight/internal/model"
	"procsight/internal/procfs"
)

// SnapshotCollector assembles one model.Snapshot per call by reading every
// supported procfs file. The reads are independent, so they run
// concurrently; any decode failure fails the whole snapshot.
type SnapshotCollector struct {
	fs             procfs.FS
	ticksPerSecond int64
	nodeID         string
	hostname       string
}

func NewSnapshotCollector(fs procfs.FS, ticksPerSecond int64, nodeID, hostname string) *SnapshotCollector {
	return &SnapshotCollector{
		fs:             fs,
		ticksPerSecond: ticksPerSecond,
		nodeID:         nodeID,
		hostname:       hostname,
	}
}

func (c *SnapshotCollector) Collect(ctx context.Context) (model.Snapshot, error) {
	snap := model.Snapshot{
		NodeID:         c.nodeID,
		Hostname:       c.hostname,
		TimestampUnix:  time.Now().UTC().Unix(),
		TicksPerSecond: c.ticksPerSecond,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.Stat, err = c.fs.ReadStat(c.ticksPerSecond)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.SchedStat, err = c.fs.ReadSchedStat(c.ticksPerSecond)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.MemInfo, err = c.fs.ReadMemInfo()
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.DiskStats, err = c.fs.ReadDiskStats()
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.NetDev, err = c.fs.ReadNetDev()
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.Loadavg, err = c.fs.ReadLoadavg()
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.VMStat, err = c.fs.ReadVMStat()
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		snap.Pressure, err = c.fs.ReadPressure()
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}
