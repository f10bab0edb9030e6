package stream

import (
	"encoding/json"
	"testing"

	"procsight/internal/model"
)

func TestEncodeEnvelope(t *testing.T) {
	snap := model.Snapshot{
		NodeID:         "node-1",
		Hostname:       "node-1",
		TimestampUnix:  1701783048,
		TicksPerSecond: 100,
	}
	env := model.Envelope{
		Type:          model.MetricTypeSnapshot,
		NodeID:        snap.NodeID,
		TimestampUnix: snap.TimestampUnix,
		Payload:       NewSnapshotFrame(snap),
	}

	raw, err := EncodeEnvelope(env)
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}

	var decoded struct {
		Type          string `json:"type"`
		NodeID        string `json:"node_id"`
		TimestampUnix int64  `json:"timestamp_unix"`
		Payload       struct {
			NodeID   string `json:"node_id"`
			Snapshot struct {
				TicksPerSecond int64 `json:"ticks_per_second"`
			} `json:"snapshot"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if decoded.Type != "procfs_snapshot" {
		t.Errorf("type = %q, want procfs_snapshot", decoded.Type)
	}
	if decoded.NodeID != "node-1" || decoded.TimestampUnix != 1701783048 {
		t.Errorf("framing = %q/%d", decoded.NodeID, decoded.TimestampUnix)
	}
	if decoded.Payload.Snapshot.TicksPerSecond != 100 {
		t.Errorf("payload ticks_per_second = %d, want 100", decoded.Payload.Snapshot.TicksPerSecond)
	}
}

func TestNewSnapshotFrame(t *testing.T) {
	snap := model.Snapshot{NodeID: "n", TimestampUnix: 7}
	frame := NewSnapshotFrame(snap)
	if frame.NodeID != "n" || frame.TimestampUnix != 7 {
		t.Errorf("frame = %+v", frame)
	}
}
