package model

import "procsight/internal/procfs"

type MetricType string

const (
	MetricTypeSnapshot MetricType = "procfs_snapshot"
)

// Envelope is transport-agnostic framing for stream payloads.
type Envelope struct {
	Type          MetricType `json:"type"`
	NodeID        string     `json:"node_id"`
	TimestampUnix int64      `json:"timestamp_unix"`
	Payload       any        `json:"payload"`
}

// Snapshot is one full read of the node's procfs counters. Time-typed
// counters are already normalized to milliseconds; TicksPerSecond records
// the divisor that was used so consumers can recover raw ticks if they
// need to.
type Snapshot struct {
	NodeID         string               `json:"node_id"`
	Hostname       string               `json:"hostname"`
	TimestampUnix  int64                `json:"timestamp_unix"`
	TicksPerSecond int64                `json:"ticks_per_second"`
	Stat           procfs.ProcStat      `json:"stat"`
	SchedStat      procfs.ProcSchedStat `json:"schedstat"`
	MemInfo        procfs.ProcMemInfo   `json:"meminfo"`
	DiskStats      procfs.ProcDiskStats `json:"diskstats"`
	NetDev         procfs.ProcNetDev    `json:"net_dev"`
	Loadavg        procfs.ProcLoadavg   `json:"loadavg"`
	VMStat         procfs.ProcVMStat    `json:"vmstat"`
	Pressure       *procfs.Psi          `json:"pressure,omitempty"`
}
