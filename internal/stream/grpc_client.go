package stream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/metadata"

	"procsight/internal/model"
)

type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type GRPCClient struct {
	mu sync.Mutex

	logger         *slog.Logger
	addr           string
	tlsConfig      *tls.Config
	token          string
	snapshotMethod string
	conn           *grpc.ClientConn
	snapshotStream grpc.ClientStream
	dialTimeout    time.Duration
}

func NewGRPCClient(addr string, tlsCfg *tls.Config, token, snapshotMethod string, logger *slog.Logger) *GRPCClient {
	encoding.RegisterCodec(jsonCodec{})
	return &GRPCClient{
		logger:         logger,
		addr:           addr,
		tlsConfig:      tlsCfg,
		token:          token,
		snapshotMethod: snapshotMethod,
		dialTimeout:    8 * time.Second,
	}
}

func (c *GRPCClient) SendSnapshot(ctx context.Context, snap model.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureConnLocked(ctx); err != nil {
		return err
	}
	if c.snapshotStream == nil {
		if err := c.openSnapshotStreamLocked(ctx); err != nil {
			return err
		}
	}
	frame := NewSnapshotFrame(snap)
	if err := c.snapshotStream.SendMsg(frame); err != nil {
		c.logger.Warn("grpc snapshot send failed, reopening stream", "error", err)
		c.snapshotStream = nil
		if err2 := c.openSnapshotStreamLocked(ctx); err2 != nil {
			return fmt.Errorf("reopen snapshot stream: %w", err2)
		}
		if err2 := c.snapshotStream.SendMsg(frame); err2 != nil {
			return fmt.Errorf("send snapshot frame: %w", err2)
		}
	}
	return nil
}

func (c *GRPCClient) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshotStream != nil {
		_ = c.snapshotStream.CloseSend()
		c.snapshotStream = nil
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	_ = ctx
	return nil
}

func (c *GRPCClient) ensureConnLocked(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	dialCtx, cancel := context.WithTimeout(context.Background(), c.dialTimeout)
	defer cancel()
	if dl, ok := ctx.Deadline(); ok {
		dialCtx, cancel = context.WithDeadline(context.Background(), dl)
		defer cancel()
	}

	var creds credentials.TransportCredentials
	if c.tlsConfig != nil {
		creds = credentials.NewTLS(c.tlsConfig)
	} else {
		creds = insecure.NewCredentials()
	}

	conn, err := grpc.DialContext(
		dialCtx,
		c.addr,
		grpc.WithTransportCredentials(creds),
		grpc.WithBlock(),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{}), grpc.CallContentSubtype("json")),
	)
	if err != nil {
		return fmt.Errorf("grpc dial %s: %w", c.addr, err)
	}
	c.conn = conn
	c.logger.Info("grpc stream connected", "addr", c.addr)
	return nil
}

func (c *GRPCClient) openSnapshotStreamLocked(ctx context.Context) error {
	if c.conn == nil {
		return fmt.Errorf("grpc conn is nil")
	}
	streamCtx := c.decorateContext(ctx)
	s, err := c.conn.NewStream(streamCtx, &grpc.StreamDesc{ClientStreams: true}, c.snapshotMethod)
	if err != nil {
		return fmt.Errorf("open snapshot stream: %w", err)
	}
	c.snapshotStream = s
	return nil
}

func (c *GRPCClient) decorateContext(ctx context.Context) context.Context {
	out := context.Background()
	if dl, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		out, cancel = context.WithDeadline(out, dl)
		_ = cancel
	}
	if c.token != "" {
		out = metadata.AppendToOutgoingContext(out, "authorization", "Bearer "+c.token)
	}
	return out
}
