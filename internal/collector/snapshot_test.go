package collector

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"procsight/internal/model"
	"procsight/internal/procfs"
)

func fakeProcRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"stat":      "cpu  100 0 50 1000 0 0 0 0 0 0\ncpu0 100 0 50 1000 0 0 0 0 0 0\nctxt 42\nbtime 1701783048\n",
		"schedstat": "version 15\ntimestamp 1\ncpu0 0 0 0 0 0 0 0 100 200 3\n",
		"meminfo":   "MemTotal: 1024 kB\nMemFree: 512 kB\n",
		"diskstats": "8 0 sda 1 2 3 4 5 6 7 8 9 10 11\n",
		"net/dev":   "Inter-| Receive | Transmit\n face |bytes\nlo: 1 2 0 0 0 0 0 0 3 4 0 0 0 0 0 0\n",
		"loadavg":   "0.05 0.19 0.13 1/161 7\n",
		"vmstat":    "nr_free_pages 99\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestSnapshotCollectorCollect(t *testing.T) {
	fs := procfs.NewFS(fakeProcRoot(t))
	c := NewSnapshotCollector(fs, 100, "node-1", "host-1")

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if snap.NodeID != "node-1" || snap.Hostname != "host-1" {
		t.Errorf("identity = %q/%q", snap.NodeID, snap.Hostname)
	}
	if snap.TicksPerSecond != 100 {
		t.Errorf("TicksPerSecond = %d, want 100", snap.TicksPerSecond)
	}
	if snap.TimestampUnix == 0 {
		t.Error("TimestampUnix = 0, want stamped")
	}
	if snap.Stat.CPUTotal.User != 1000 {
		t.Errorf("Stat.CPUTotal.User = %d, want 1000", snap.Stat.CPUTotal.User)
	}
	if snap.SchedStat.Version != 15 {
		t.Errorf("SchedStat.Version = %d, want 15", snap.SchedStat.Version)
	}
	if snap.MemInfo.MemTotal != 1024 {
		t.Errorf("MemInfo.MemTotal = %d, want 1024", snap.MemInfo.MemTotal)
	}
	if len(snap.DiskStats.DiskStats) != 1 {
		t.Errorf("DiskStats count = %d, want 1", len(snap.DiskStats.DiskStats))
	}
	if len(snap.NetDev.Interface) != 1 || snap.NetDev.Interface[0].Name != "lo" {
		t.Errorf("NetDev = %+v", snap.NetDev.Interface)
	}
	if snap.Loadavg.Total != 161 {
		t.Errorf("Loadavg.Total = %d, want 161", snap.Loadavg.Total)
	}
	if snap.VMStat.NrFreePages != 99 {
		t.Errorf("VMStat.NrFreePages = %d, want 99", snap.VMStat.NrFreePages)
	}
	if snap.Pressure != nil {
		t.Errorf("Pressure = %+v, want nil without pressure dir", snap.Pressure)
	}
}

func TestSnapshotCollectorFailsOnBadFile(t *testing.T) {
	root := fakeProcRoot(t)
	if err := os.WriteFile(filepath.Join(root, "stat"), []byte("cpu abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewSnapshotCollector(procfs.NewFS(root), 100, "node-1", "host-1")
	if _, err := c.Collect(context.Background()); err == nil {
		t.Fatal("Collect: want error on malformed stat")
	}
}

type captureSink struct {
	mu    sync.Mutex
	snaps []model.Snapshot
}

func (s *captureSink) SendSnapshot(_ context.Context, snap model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, snap)
	return nil
}

func (s *captureSink) Close(context.Context) error { return nil }

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snaps)
}

func TestSchedulerSendsSnapshots(t *testing.T) {
	fs := procfs.NewFS(fakeProcRoot(t))
	c := NewSnapshotCollector(fs, 100, "node-1", "host-1")
	sink := &captureSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sched := NewScheduler(logger, c, sink, 10*time.Millisecond, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := sched.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sink.count() == 0 {
		t.Fatal("sink received no snapshots")
	}
}

func TestAsSnapshotEnvelope(t *testing.T) {
	snap := model.Snapshot{NodeID: "node-1", TimestampUnix: 7}
	env := AsSnapshotEnvelope(snap)
	if env.Type != model.MetricTypeSnapshot || env.NodeID != "node-1" || env.TimestampUnix != 7 {
		t.Errorf("envelope = %+v", env)
	}
}
