package procfs

import "strings"

// PsiStats is one some/full line of a pressure stall information file:
// three rolling-average percentages and an absolute stalled-time total in
// microseconds.
type PsiStats struct {
	Avg10  float64 `json:"avg10"`
	Avg60  float64 `json:"avg60"`
	Avg300 float64 `json:"avg300"`
	Total  uint64  `json:"total"`
}

// Psi aggregates the three /proc/pressure files. CPUFull is nil on kernels
// that do not print a full line for cpu (added in 5.13, and still always
// zero there).
type Psi struct {
	CPUSome    PsiStats  `json:"cpu_some"`
	CPUFull    *PsiStats `json:"cpu_full,omitempty"`
	IOSome     PsiStats  `json:"io_some"`
	IOFull     PsiStats  `json:"io_full"`
	MemorySome PsiStats  `json:"memory_some"`
	MemoryFull PsiStats  `json:"memory_full"`
}

// ParsePressure decodes the text of /proc/pressure/cpu, /proc/pressure/io
// and /proc/pressure/memory. Whether the pressure directory exists at all
// (CONFIG_PSI, psi= boot flag) is the file-reading caller's concern.
func ParsePressure(cpu, io, memory string) (Psi, error) {
	var psi Psi

	cpuSome, cpuFull, err := parsePsiFile("pressure/cpu", cpu)
	if err != nil {
		return Psi{}, err
	}
	psi.CPUSome = cpuSome
	psi.CPUFull = cpuFull

	ioSome, ioFull, err := parsePsiFile("pressure/io", io)
	if err != nil {
		return Psi{}, err
	}
	if ioFull == nil {
		return Psi{}, &ParseError{File: "pressure/io", Line: 1, Err: ErrMalformedLine}
	}
	psi.IOSome = ioSome
	psi.IOFull = *ioFull

	memSome, memFull, err := parsePsiFile("pressure/memory", memory)
	if err != nil {
		return Psi{}, err
	}
	if memFull == nil {
		return Psi{}, &ParseError{File: "pressure/memory", Line: 1, Err: ErrMalformedLine}
	}
	psi.MemorySome = memSome
	psi.MemoryFull = *memFull

	return psi, nil
}

func parsePsiFile(file, text string) (some PsiStats, full *PsiStats, err error) {
	sawSome := false
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		switch ls.fields[0] {
		case "some":
			some, err = parsePsiLine(file, ls.lineNo, ls.fields)
			if err != nil {
				return PsiStats{}, nil, err
			}
			sawSome = true
		case "full":
			stats, lineErr := parsePsiLine(file, ls.lineNo, ls.fields)
			if lineErr != nil {
				return PsiStats{}, nil, lineErr
			}
			full = &stats
		default:
			return PsiStats{}, nil, &ParseError{File: file, Line: ls.lineNo, Field: ls.fields[0], Err: ErrMalformedLine}
		}
	}
	if !sawSome {
		return PsiStats{}, nil, &ParseError{File: file, Line: 1, Err: ErrMalformedLine}
	}
	return some, full, nil
}

func parsePsiLine(file string, lineNo int, fields []string) (PsiStats, error) {
	if len(fields) < 5 {
		return PsiStats{}, &ParseError{File: file, Line: lineNo, Err: ErrMalformedLine}
	}
	var stats PsiStats
	for _, tok := range fields[1:5] {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return PsiStats{}, &ParseError{File: file, Line: lineNo, Field: tok, Err: ErrMalformedLine}
		}
		var err error
		switch key {
		case "avg10":
			stats.Avg10, err = parseFloat(file, lineNo, value)
		case "avg60":
			stats.Avg60, err = parseFloat(file, lineNo, value)
		case "avg300":
			stats.Avg300, err = parseFloat(file, lineNo, value)
		case "total":
			stats.Total, err = parseUint(file, lineNo, value)
		default:
			err = &ParseError{File: file, Line: lineNo, Field: tok, Err: ErrMalformedLine}
		}
		if err != nil {
			return PsiStats{}, err
		}
	}
	return stats, nil
}
