package procfs

import "strings"

const loadavgFileName = "loadavg"

// ProcLoadavg is the decoded single line of /proc/loadavg. The fourth
// column is runnable/total split on the slash; LastPID is the most recently
// allocated process id.
type ProcLoadavg struct {
	Load1           float64 `json:"load_1"`
	Load5           float64 `json:"load_5"`
	Load15          float64 `json:"load_15"`
	CurrentRunnable uint64  `json:"current_runnable"`
	Total           uint64  `json:"total"`
	LastPID         uint64  `json:"last_pid"`
}

// ParseLoadavg decodes the text of /proc/loadavg.
func ParseLoadavg(text string) (ProcLoadavg, error) {
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		return parseLoadavgLine(ls.lineNo, ls.fields)
	}
	return ProcLoadavg{}, &ParseError{File: loadavgFileName, Line: 1, Err: ErrMalformedLine}
}

func parseLoadavgLine(lineNo int, fields []string) (ProcLoadavg, error) {
	if len(fields) < 5 {
		return ProcLoadavg{}, &ParseError{File: loadavgFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	var out ProcLoadavg
	var err error
	if out.Load1, err = parseFloat(loadavgFileName, lineNo, fields[0]); err != nil {
		return ProcLoadavg{}, err
	}
	if out.Load5, err = parseFloat(loadavgFileName, lineNo, fields[1]); err != nil {
		return ProcLoadavg{}, err
	}
	if out.Load15, err = parseFloat(loadavgFileName, lineNo, fields[2]); err != nil {
		return ProcLoadavg{}, err
	}

	runnable, total, ok := strings.Cut(fields[3], "/")
	if !ok {
		return ProcLoadavg{}, &ParseError{File: loadavgFileName, Line: lineNo, Field: fields[3], Err: ErrMalformedLine}
	}
	if out.CurrentRunnable, err = parseUint(loadavgFileName, lineNo, runnable); err != nil {
		return ProcLoadavg{}, err
	}
	if out.Total, err = parseUint(loadavgFileName, lineNo, total); err != nil {
		return ProcLoadavg{}, err
	}
	if out.LastPID, err = parseUint(loadavgFileName, lineNo, fields[4]); err != nil {
		return ProcLoadavg{}, err
	}
	return out, nil
}
