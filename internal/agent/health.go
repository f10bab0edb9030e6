package agent

import (
	"sync/atomic"
	"time"
)

type HealthStatus struct {
	streamConnected atomic.Bool
	lastSnapshotAt  atomic.Int64
}

func NewHealthStatus() *HealthStatus {
	h := &HealthStatus{}
	h.streamConnected.Store(false)
	return h
}

func (h *HealthStatus) SetStreamConnected(ok bool) {
	h.streamConnected.Store(ok)
}

func (h *HealthStatus) MarkSnapshot(ts time.Time) {
	h.lastSnapshotAt.Store(ts.UnixNano())
}

func (h *HealthStatus) Snapshot() map[string]any {
	out := map[string]any{
		"stream_connected": h.streamConnected.Load(),
	}
	if v := h.lastSnapshotAt.Load(); v > 0 {
		out["last_snapshot_at"] = time.Unix(0, v).UTC()
	}
	return out
}
