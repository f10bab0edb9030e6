package procfs

import "strings"

const statFileName = "stat"

// CpuStat holds one cpu time-accounting line of /proc/stat with every
// counter converted from clock ticks to milliseconds. Name is "cpu" for the
// all-cpu aggregate and "cpuN" for an individual core.
type CpuStat struct {
	Name      string `json:"name"`
	User      uint64 `json:"user"`
	Nice      uint64 `json:"nice"`
	System    uint64 `json:"system"`
	Idle      uint64 `json:"idle"`
	IOWait    uint64 `json:"iowait"`
	IRQ       uint64 `json:"irq"`
	SoftIRQ   uint64 `json:"softirq"`
	Steal     uint64 `json:"steal"`
	Guest     uint64 `json:"guest"`
	GuestNice uint64 `json:"guest_nice"`
}

// ProcStat is one decoded snapshot of /proc/stat. CPUIndividual preserves
// the kernel's line order; Interrupts and SoftIRQ are raw event counts, not
// times, and are never unit-converted. The interrupt vector length is
// kernel- and arch-dependent.
type ProcStat struct {
	CPUTotal         CpuStat   `json:"cpu_total"`
	CPUIndividual    []CpuStat `json:"cpu_individual"`
	Interrupts       []uint64  `json:"interrupts"`
	ContextSwitches  uint64    `json:"context_switches"`
	BootTime         uint64    `json:"boot_time"`
	Processes        uint64    `json:"processes"`
	ProcessesRunning uint64    `json:"processes_running"`
	ProcessesBlocked uint64    `json:"processes_blocked"`
	SoftIRQ          []uint64  `json:"softirq"`
}

// A cpu line carries up to ten counters in fixed kernel order. Kernels
// before 2.6.11 stop after idle; the trailing counters zero-fill.
const (
	cpuStatFieldCount    = 10
	cpuStatRequiredCount = 4
)

// ParseStat decodes the text of /proc/stat. Unrecognized line labels are
// ignored so future kernel counters do not break the decode.
func ParseStat(text string, ticksPerSecond int64) (ProcStat, error) {
	if err := checkTickRate(ticksPerSecond); err != nil {
		return ProcStat{}, err
	}

	var stat ProcStat
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		label := ls.fields[0]
		var err error
		switch {
		case label == "cpu":
			stat.CPUTotal, err = parseCPUStatLine(ls.lineNo, ls.fields, ticksPerSecond)
		case isCPULabel(label):
			var cpu CpuStat
			cpu, err = parseCPUStatLine(ls.lineNo, ls.fields, ticksPerSecond)
			if err == nil {
				stat.CPUIndividual = append(stat.CPUIndividual, cpu)
			}
		case label == "intr":
			stat.Interrupts, err = parseCounterVector(statFileName, ls.lineNo, ls.fields[1:])
		case label == "ctxt":
			stat.ContextSwitches, err = parseScalarLine(statFileName, ls.lineNo, ls.fields)
		case label == "btime":
			stat.BootTime, err = parseScalarLine(statFileName, ls.lineNo, ls.fields)
		case label == "processes":
			stat.Processes, err = parseScalarLine(statFileName, ls.lineNo, ls.fields)
		case label == "procs_running":
			stat.ProcessesRunning, err = parseScalarLine(statFileName, ls.lineNo, ls.fields)
		case label == "procs_blocked":
			stat.ProcessesBlocked, err = parseScalarLine(statFileName, ls.lineNo, ls.fields)
		case label == "softirq":
			stat.SoftIRQ, err = parseCounterVector(statFileName, ls.lineNo, ls.fields[1:])
		default:
			// Future kernel counters.
		}
		if err != nil {
			return ProcStat{}, err
		}
	}
	return stat, nil
}

// isCPULabel accepts exactly cpu<N>; a bare "cpu" is handled as the
// aggregate line and anything else starting with cpu is not a cpu line.
func isCPULabel(label string) bool {
	suffix, ok := strings.CutPrefix(label, "cpu")
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseCPUStatLine(lineNo int, fields []string, ticksPerSecond int64) (CpuStat, error) {
	if len(fields) < cpuStatRequiredCount+1 {
		return CpuStat{}, &ParseError{File: statFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	var millis [cpuStatFieldCount]uint64
	for i := 0; i < cpuStatFieldCount && i+1 < len(fields); i++ {
		raw, err := parseUint(statFileName, lineNo, fields[i+1])
		if err != nil {
			return CpuStat{}, err
		}
		millis[i] = ticksToMillis(raw, ticksPerSecond)
	}
	return CpuStat{
		Name:      fields[0],
		User:      millis[0],
		Nice:      millis[1],
		System:    millis[2],
		Idle:      millis[3],
		IOWait:    millis[4],
		IRQ:       millis[5],
		SoftIRQ:   millis[6],
		Steal:     millis[7],
		Guest:     millis[8],
		GuestNice: millis[9],
	}, nil
}

func parseCounterVector(file string, lineNo int, tokens []string) ([]uint64, error) {
	out := make([]uint64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseUint(file, lineNo, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseScalarLine(file string, lineNo int, fields []string) (uint64, error) {
	if len(fields) < 2 {
		return 0, &ParseError{File: file, Line: lineNo, Err: ErrMalformedLine}
	}
	return parseUint(file, lineNo, fields[1])
}
