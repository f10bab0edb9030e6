package procfs

import (
	"fmt"
	"strconv"
	"strings"
)

const schedstatFileName = "schedstat"

// The /proc/schedstat layout is versioned by the kernel. This decoder is
// pinned to version 15 and refuses anything else rather than silently
// misreading fields.
const supportedSchedStatVersion = 15

// Each decoded vector prepends indices derived from the line label, which
// shifts the kernel documentation's field numbers. Keeping the shifts named
// is deliberate: the off-by-two here is a classic bug.
const (
	schedCPUIndexShift    = 1 // vector[0] is the core number
	schedDomainIndexShift = 2 // vector[0] is the domain number, vector[1] the cpumask
)

// The kernel-documented running-time and waiting-time fields are the only
// tick-based schedstat counters; everything else passes through raw.
const (
	schedCPURunningIndex = 8
	schedCPUWaitingIndex = 9
)

// ProcSchedStat is one decoded snapshot of /proc/schedstat.
//
// Each CPU vector is [coreNumber, fields...] with the running-time and
// waiting-time entries converted to milliseconds. Each Domain vector is
// [domainNumber, cpumask, counters...]; the cpumask is carried as a raw
// integer and the counter arity varies across kernel versions, so no fixed
// length is assumed or enforced.
type ProcSchedStat struct {
	Version   uint64     `json:"version"`
	Timestamp uint64     `json:"timestamp"`
	CPU       [][]uint64 `json:"cpu"`
	Domain    [][]uint64 `json:"domain"`
}

// ParseSchedStat decodes the text of /proc/schedstat.
func ParseSchedStat(text string, ticksPerSecond int64) (ProcSchedStat, error) {
	if err := checkTickRate(ticksPerSecond); err != nil {
		return ProcSchedStat{}, err
	}

	var sched ProcSchedStat
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		label := ls.fields[0]
		var err error
		switch {
		case label == "version":
			sched.Version, err = parseScalarLine(schedstatFileName, ls.lineNo, ls.fields)
			if err == nil && sched.Version != supportedSchedStatVersion {
				return ProcSchedStat{}, fmt.Errorf("%w: got %d, decoder targets %d",
					ErrUnsupportedVersion, sched.Version, supportedSchedStatVersion)
			}
		case label == "timestamp":
			sched.Timestamp, err = parseScalarLine(schedstatFileName, ls.lineNo, ls.fields)
		case strings.HasPrefix(label, "cpu"):
			var vec []uint64
			vec, err = parseSchedCPULine(ls.lineNo, ls.fields, ticksPerSecond)
			if err == nil {
				sched.CPU = append(sched.CPU, vec)
			}
		case strings.HasPrefix(label, "domain"):
			var vec []uint64
			vec, err = parseSchedDomainLine(ls.lineNo, ls.fields)
			if err == nil {
				sched.Domain = append(sched.Domain, vec)
			}
		default:
			err = &ParseError{File: schedstatFileName, Line: ls.lineNo, Field: label, Err: ErrMalformedLine}
		}
		if err != nil {
			return ProcSchedStat{}, err
		}
	}
	if sched.Version != supportedSchedStatVersion {
		return ProcSchedStat{}, fmt.Errorf("%w: no version line, decoder targets %d",
			ErrUnsupportedVersion, supportedSchedStatVersion)
	}
	return sched, nil
}

func parseSchedCPULine(lineNo int, fields []string, ticksPerSecond int64) ([]uint64, error) {
	core, err := labelNumber(schedstatFileName, lineNo, fields[0], "cpu")
	if err != nil {
		return nil, err
	}
	if len(fields) < 2 {
		return nil, &ParseError{File: schedstatFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	vec := make([]uint64, 0, len(fields)-1+schedCPUIndexShift)
	vec = append(vec, core)
	for _, tok := range fields[1:] {
		v, err := parseUint(schedstatFileName, lineNo, tok)
		if err != nil {
			return nil, err
		}
		if i := len(vec); i == schedCPURunningIndex || i == schedCPUWaitingIndex {
			v = ticksToMillis(v, ticksPerSecond)
		}
		vec = append(vec, v)
	}
	return vec, nil
}

func parseSchedDomainLine(lineNo int, fields []string) ([]uint64, error) {
	domain, err := labelNumber(schedstatFileName, lineNo, fields[0], "domain")
	if err != nil {
		return nil, err
	}
	if len(fields) < 2 {
		return nil, &ParseError{File: schedstatFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	vec := make([]uint64, 0, len(fields)-1+schedDomainIndexShift)
	vec = append(vec, domain)
	// The cpumask is printed in hex without a 0x prefix; any bitmask
	// interpretation is the caller's business.
	mask, err := parseCpumask(lineNo, fields[1])
	if err != nil {
		return nil, err
	}
	vec = append(vec, mask)
	for _, tok := range fields[2:] {
		v, err := parseUint(schedstatFileName, lineNo, tok)
		if err != nil {
			return nil, err
		}
		vec = append(vec, v)
	}
	return vec, nil
}

func parseCpumask(lineNo int, token string) (uint64, error) {
	if v, err := strconv.ParseUint(token, 10, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseUint(token, 16, 64)
	if err != nil {
		return 0, &ParseError{File: schedstatFileName, Line: lineNo, Field: token, Err: ErrBadNumber}
	}
	return v, nil
}

func labelNumber(file string, lineNo int, label, prefix string) (uint64, error) {
	suffix := strings.TrimPrefix(label, prefix)
	v, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, &ParseError{File: file, Line: lineNo, Field: label, Err: ErrMalformedLine}
	}
	return v, nil
}
