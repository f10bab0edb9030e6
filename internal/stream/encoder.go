package stream

import (
	"context"
	"encoding/json"

	"procsight/internal/model"
)

type Sink interface {
	SendSnapshot(ctx context.Context, snap model.Snapshot) error
	Close(ctx context.Context) error
}

type SnapshotFrame struct {
	NodeID        string         `json:"node_id"`
	TimestampUnix int64          `json:"timestamp_unix"`
	Snapshot      model.Snapshot `json:"snapshot"`
}

func EncodeEnvelope(e model.Envelope) ([]byte, error) {
	return json.Marshal(e)
}

func NewSnapshotFrame(snap model.Snapshot) SnapshotFrame {
	return SnapshotFrame{NodeID: snap.NodeID, TimestampUnix: snap.TimestampUnix, Snapshot: snap}
}
