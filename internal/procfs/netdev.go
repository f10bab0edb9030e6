package procfs

import "strings"

const netDevFileName = "net/dev"

// Interface lines carry 16 counters: 8 receive then 8 transmit, all
// passthrough (bytes and event counts, no time units).
const interfaceStatsFieldCount = 16

// InterfaceStats holds one network interface's counters. The interface
// name is the unique key within a snapshot.
type InterfaceStats struct {
	Name               string `json:"name"`
	ReceiveBytes       uint64 `json:"receive_bytes"`
	ReceivePackets     uint64 `json:"receive_packets"`
	ReceiveErrors      uint64 `json:"receive_errors"`
	ReceiveDrop        uint64 `json:"receive_drop"`
	ReceiveFifo        uint64 `json:"receive_fifo"`
	ReceiveFrame       uint64 `json:"receive_frame"`
	ReceiveCompressed  uint64 `json:"receive_compressed"`
	ReceiveMulticast   uint64 `json:"receive_multicast"`
	TransmitBytes      uint64 `json:"transmit_bytes"`
	TransmitPackets    uint64 `json:"transmit_packets"`
	TransmitErrors     uint64 `json:"transmit_errors"`
	TransmitDrop       uint64 `json:"transmit_drop"`
	TransmitFifo       uint64 `json:"transmit_fifo"`
	TransmitCollisions uint64 `json:"transmit_collisions"`
	TransmitCarrier    uint64 `json:"transmit_carrier"`
	TransmitCompressed uint64 `json:"transmit_compressed"`
}

// ProcNetDev is one decoded snapshot of /proc/net/dev in source line order,
// header lines excluded.
type ProcNetDev struct {
	Interface []InterfaceStats `json:"interface"`
}

// ParseNetDev decodes the text of /proc/net/dev, skipping the two fixed
// column-header lines.
func ParseNetDev(text string) (ProcNetDev, error) {
	var netdev ProcNetDev
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		if ls.lineNo <= 2 && strings.Contains(ls.line, "|") {
			continue
		}
		stats, err := parseNetDevLine(ls.lineNo, ls.fields)
		if err != nil {
			return ProcNetDev{}, err
		}
		netdev.Interface = append(netdev.Interface, stats)
	}
	return netdev, nil
}

func parseNetDevLine(lineNo int, fields []string) (InterfaceStats, error) {
	if len(fields) < interfaceStatsFieldCount+1 {
		return InterfaceStats{}, &ParseError{File: netDevFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	var counters [interfaceStatsFieldCount]uint64
	for i := range counters {
		v, err := parseUint(netDevFileName, lineNo, fields[i+1])
		if err != nil {
			return InterfaceStats{}, err
		}
		counters[i] = v
	}
	return InterfaceStats{
		Name:               strings.TrimSuffix(fields[0], ":"),
		ReceiveBytes:       counters[0],
		ReceivePackets:     counters[1],
		ReceiveErrors:      counters[2],
		ReceiveDrop:        counters[3],
		ReceiveFifo:        counters[4],
		ReceiveFrame:       counters[5],
		ReceiveCompressed:  counters[6],
		ReceiveMulticast:   counters[7],
		TransmitBytes:      counters[8],
		TransmitPackets:    counters[9],
		TransmitErrors:     counters[10],
		TransmitDrop:       counters[11],
		TransmitFifo:       counters[12],
		TransmitCollisions: counters[13],
		TransmitCarrier:    counters[14],
		TransmitCompressed: counters[15],
	}, nil
}
