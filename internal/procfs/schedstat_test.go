package procfs

import (
	"errors"
	"reflect"
	"testing"
)

const sampleSchedStat = `version 15
timestamp 4318766371
cpu0 0 0 0 0 0 0 0 40178371330 4778820750 26299
domain0 3f 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
`

func TestParseSchedStat(t *testing.T) {
	sched, err := ParseSchedStat(sampleSchedStat, 100)
	if err != nil {
		t.Fatalf("ParseSchedStat: %v", err)
	}

	if sched.Version != 15 {
		t.Errorf("Version = %d, want 15", sched.Version)
	}
	if sched.Timestamp != 4318766371 {
		t.Errorf("Timestamp = %d, want 4318766371", sched.Timestamp)
	}

	if len(sched.CPU) != 1 {
		t.Fatalf("CPU count = %d, want 1", len(sched.CPU))
	}
	cpu := sched.CPU[0]
	if cpu[0] != 0 {
		t.Errorf("core number = %d, want 0", cpu[0])
	}
	// Running and waiting ticks land at fixed vector positions after the
	// core-number prefix and are the only converted entries.
	if got, want := cpu[schedCPURunningIndex], uint64(40178371330*1000/100); got != want {
		t.Errorf("running ms = %d, want %d", got, want)
	}
	if got, want := cpu[schedCPUWaitingIndex], uint64(4778820750*1000/100); got != want {
		t.Errorf("waiting ms = %d, want %d", got, want)
	}
	if got := cpu[len(cpu)-1]; got != 26299 {
		t.Errorf("timeslice count = %d, want 26299 unconverted", got)
	}

	if len(sched.Domain) != 1 {
		t.Fatalf("Domain count = %d, want 1", len(sched.Domain))
	}
	dom := sched.Domain[0]
	if dom[0] != 0 {
		t.Errorf("domain number = %d, want 0", dom[0])
	}
	if dom[1] != 0x3f {
		t.Errorf("cpumask = %d, want 63", dom[1])
	}
	for i, v := range dom[schedDomainIndexShift:] {
		if v != 0 {
			t.Errorf("domain counter %d = %d, want 0", i, v)
		}
	}
}

func TestParseSchedStatCPUVectorPositions(t *testing.T) {
	// Distinct value per position: only the two tick-based entries convert,
	// and vector index 0 comes from the line label, not the fields.
	text := "version 15\ntimestamp 1\ncpu7 11 12 13 14 15 16 17 18 19 20\n"
	sched, err := ParseSchedStat(text, 1)
	if err != nil {
		t.Fatalf("ParseSchedStat: %v", err)
	}
	got := sched.CPU[0]
	want := []uint64{7, 11, 12, 13, 14, 15, 16, 17, 18000, 19000, 20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("vector = %v, want %v", got, want)
	}
}

func TestParseSchedStatUnsupportedVersion(t *testing.T) {
	_, err := ParseSchedStat("version 14\ntimestamp 1\n", 100)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestParseSchedStatMissingVersion(t *testing.T) {
	_, err := ParseSchedStat("timestamp 1\ncpu0 0 0 0 0 0 0 0 1 1 1\n", 100)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestParseSchedStatUnknownLabel(t *testing.T) {
	_, err := ParseSchedStat("version 15\nbogus 1 2 3\n", 100)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParseSchedStatBadNumber(t *testing.T) {
	_, err := ParseSchedStat("version 15\ncpu0 0 0 x\n", 100)
	if !errors.Is(err, ErrBadNumber) {
		t.Fatalf("err = %v, want ErrBadNumber", err)
	}
}

func TestParseSchedStatInvalidTickRate(t *testing.T) {
	if _, err := ParseSchedStat(sampleSchedStat, 0); !errors.Is(err, ErrInvalidTickRate) {
		t.Fatalf("err = %v, want ErrInvalidTickRate", err)
	}
}

func TestParseSchedStatIdempotent(t *testing.T) {
	first, err := ParseSchedStat(sampleSchedStat, 100)
	if err != nil {
		t.Fatalf("ParseSchedStat: %v", err)
	}
	second, err := ParseSchedStat(sampleSchedStat, 100)
	if err != nil {
		t.Fatalf("ParseSchedStat: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat decode differs")
	}
}
