package procfs

import (
	"errors"
	"testing"
)

const sampleMemInfo = `MemTotal:       16042172 kB
MemFree:          196316 kB
MemAvailable:    9659548 kB
Buffers:         3427356 kB
Cached:          5498284 kB
SwapCached:            8 kB
Active:          8337440 kB
Inactive:        5862940 kB
Active(anon):    3978064 kB
Inactive(anon):   212700 kB
Active(file):    4359376 kB
Inactive(file):  5650240 kB
SwapTotal:       2097148 kB
SwapFree:        2096636 kB
Dirty:               520 kB
Committed_AS:   11324892 kB
HugePages_Total:       0
HugePages_Free:        0
Hugepagesize:       2048 kB
`

func TestParseMemInfo(t *testing.T) {
	info, err := ParseMemInfo(sampleMemInfo)
	if err != nil {
		t.Fatalf("ParseMemInfo: %v", err)
	}

	if info.MemTotal != 16042172 {
		t.Errorf("MemTotal = %d, want 16042172", info.MemTotal)
	}
	if info.MemAvailable != 9659548 {
		t.Errorf("MemAvailable = %d, want 9659548", info.MemAvailable)
	}
	if info.ActiveAnon != 3978064 {
		t.Errorf("ActiveAnon = %d, want 3978064", info.ActiveAnon)
	}
	if info.InactiveFile != 5650240 {
		t.Errorf("InactiveFile = %d, want 5650240", info.InactiveFile)
	}
	if info.CommittedAS != 11324892 {
		t.Errorf("CommittedAS = %d, want 11324892", info.CommittedAS)
	}
	if info.Hugepagesize != 2048 {
		t.Errorf("Hugepagesize = %d, want 2048", info.Hugepagesize)
	}
}

func TestParseMemInfoAbsentKeysStayZero(t *testing.T) {
	info, err := ParseMemInfo("MemTotal: 1024 kB\n")
	if err != nil {
		t.Fatalf("ParseMemInfo: %v", err)
	}
	if info.SwapTotal != 0 || info.Zswap != 0 {
		t.Errorf("absent keys = %+v, want zero", info)
	}
}

func TestParseMemInfoIgnoresUnknownKeys(t *testing.T) {
	info, err := ParseMemInfo("MemTotal: 1024 kB\nSomeNewCounter: 99 kB\n")
	if err != nil {
		t.Fatalf("ParseMemInfo: %v", err)
	}
	if info.MemTotal != 1024 {
		t.Errorf("MemTotal = %d, want 1024", info.MemTotal)
	}
}

func TestParseMemInfoMissingValue(t *testing.T) {
	_, err := ParseMemInfo("MemTotal:\n")
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParseMemInfoBadNumber(t *testing.T) {
	_, err := ParseMemInfo("MemTotal: lots kB\n")
	if !errors.Is(err, ErrBadNumber) {
		t.Fatalf("err = %v, want ErrBadNumber", err)
	}
}
