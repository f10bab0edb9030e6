package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"procsight/internal/model"
	"procsight/internal/procfs"
)

func main() {
	procPath := flag.String("proc", procfs.DefaultRoot, "procfs mount point to read")
	nodeID := flag.String("node-id", "", "node id to stamp on the snapshot (defaults to hostname)")
	flag.Parse()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}
	if *nodeID == "" {
		*nodeID = hostname
	}

	ticksPerSecond, err := procfs.ClockTicks()
	if err != nil {
		log.Fatalf("resolve clock tick rate: %v", err)
	}

	fs := procfs.NewFS(*procPath)
	snap := model.Snapshot{
		NodeID:         *nodeID,
		Hostname:       hostname,
		TimestampUnix:  time.Now().UTC().Unix(),
		TicksPerSecond: ticksPerSecond,
	}

	if snap.Stat, err = fs.ReadStat(ticksPerSecond); err != nil {
		log.Fatalf("decode stat: %v", err)
	}
	if snap.SchedStat, err = fs.ReadSchedStat(ticksPerSecond); err != nil {
		log.Fatalf("decode schedstat: %v", err)
	}
	if snap.MemInfo, err = fs.ReadMemInfo(); err != nil {
		log.Fatalf("decode meminfo: %v", err)
	}
	if snap.DiskStats, err = fs.ReadDiskStats(); err != nil {
		log.Fatalf("decode diskstats: %v", err)
	}
	if snap.NetDev, err = fs.ReadNetDev(); err != nil {
		log.Fatalf("decode net/dev: %v", err)
	}
	if snap.Loadavg, err = fs.ReadLoadavg(); err != nil {
		log.Fatalf("decode loadavg: %v", err)
	}
	if snap.VMStat, err = fs.ReadVMStat(); err != nil {
		log.Fatalf("decode vmstat: %v", err)
	}
	if snap.Pressure, err = fs.ReadPressure(); err != nil {
		log.Fatalf("decode pressure: %v", err)
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Fatalf("encode snapshot: %v", err)
	}
	fmt.Println(string(out))
}
