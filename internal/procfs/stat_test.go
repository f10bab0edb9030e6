package procfs

import (
	"errors"
	"reflect"
	"testing"
)

const sampleStat = `cpu  101521 47 66467 43586274 7651 0 1367 0 0 0
cpu0 101521 47 66467 43586274 7651 0 1367 0 0 0
intr 8885917 17 0 0 1 2
ctxt 36432936
btime 1701783048
processes 345159
procs_running 1
procs_blocked 0
softirq 4305087 1 907411 14 360330 8283 0 6061 565625 0 1457209
`

func TestParseStat(t *testing.T) {
	stat, err := ParseStat(sampleStat, 100)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}

	wantCPU := CpuStat{
		Name:    "cpu",
		User:    1015210,
		Nice:    470,
		System:  664670,
		Idle:    435862740,
		IOWait:  76510,
		SoftIRQ: 13670,
	}
	if stat.CPUTotal != wantCPU {
		t.Errorf("CPUTotal = %+v, want %+v", stat.CPUTotal, wantCPU)
	}
	if len(stat.CPUIndividual) != 1 {
		t.Fatalf("CPUIndividual count = %d, want 1", len(stat.CPUIndividual))
	}
	if stat.CPUIndividual[0].Name != "cpu0" {
		t.Errorf("CPUIndividual[0].Name = %q, want cpu0", stat.CPUIndividual[0].Name)
	}
	if stat.CPUIndividual[0].User != wantCPU.User {
		t.Errorf("CPUIndividual[0].User = %d, want %d", stat.CPUIndividual[0].User, wantCPU.User)
	}

	wantIntr := []uint64{8885917, 17, 0, 0, 1, 2}
	if !reflect.DeepEqual(stat.Interrupts, wantIntr) {
		t.Errorf("Interrupts = %v, want %v", stat.Interrupts, wantIntr)
	}
	if stat.ContextSwitches != 36432936 {
		t.Errorf("ContextSwitches = %d, want 36432936", stat.ContextSwitches)
	}
	if stat.BootTime != 1701783048 {
		t.Errorf("BootTime = %d, want 1701783048", stat.BootTime)
	}
	if stat.Processes != 345159 {
		t.Errorf("Processes = %d, want 345159", stat.Processes)
	}
	if stat.ProcessesRunning != 1 {
		t.Errorf("ProcessesRunning = %d, want 1", stat.ProcessesRunning)
	}
	if stat.ProcessesBlocked != 0 {
		t.Errorf("ProcessesBlocked = %d, want 0", stat.ProcessesBlocked)
	}
	if len(stat.SoftIRQ) != 11 || stat.SoftIRQ[0] != 4305087 {
		t.Errorf("SoftIRQ = %v, want 11 entries starting with 4305087", stat.SoftIRQ)
	}
}

func TestParseStatTickConversionTruncates(t *testing.T) {
	stat, err := ParseStat("cpu  1 1 1 999 0 0 0 0 0 0\n", 250)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	// 1*1000/250 = 4, 999*1000/250 = 3996.
	if stat.CPUTotal.User != 4 {
		t.Errorf("User = %d, want 4", stat.CPUTotal.User)
	}
	if stat.CPUTotal.Idle != 3996 {
		t.Errorf("Idle = %d, want 3996", stat.CPUTotal.Idle)
	}
}

func TestParseStatShortCPULineZeroFills(t *testing.T) {
	stat, err := ParseStat("cpu0 100 0 100 100\n", 100)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	cpu := stat.CPUIndividual[0]
	if cpu.User != 1000 || cpu.Idle != 1000 {
		t.Errorf("cpu = %+v, want user/idle 1000", cpu)
	}
	if cpu.IOWait != 0 || cpu.GuestNice != 0 {
		t.Errorf("trailing counters = %+v, want zero-filled", cpu)
	}
}

func TestParseStatTooFewCPUCounters(t *testing.T) {
	_, err := ParseStat("cpu0 100 0 100\n", 100)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParseStatBadNumber(t *testing.T) {
	_, err := ParseStat("ctxt abc\n", 100)
	if !errors.Is(err, ErrBadNumber) {
		t.Fatalf("err = %v, want ErrBadNumber", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Line != 1 || perr.Field != "abc" {
		t.Errorf("ParseError = %+v, want line 1 field abc", perr)
	}
}

func TestParseStatInvalidTickRate(t *testing.T) {
	for _, hz := range []int64{0, -100} {
		if _, err := ParseStat(sampleStat, hz); !errors.Is(err, ErrInvalidTickRate) {
			t.Errorf("hz=%d: err = %v, want ErrInvalidTickRate", hz, err)
		}
	}
}

func TestParseStatIgnoresUnknownLabels(t *testing.T) {
	stat, err := ParseStat("cpu  1 2 3 4 5 6 7 8 9 10\nnewcounter 1 2 3\n", 1000)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	if stat.CPUTotal.User != 1 {
		t.Errorf("User = %d, want 1", stat.CPUTotal.User)
	}
}

func TestParseStatCPULabelMatching(t *testing.T) {
	// cpufreq is not a per-core line and must not land in CPUIndividual.
	stat, err := ParseStat("cpu12 1 2 3 4\ncpufreq 1 2 3 4\n", 1000)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	if len(stat.CPUIndividual) != 1 || stat.CPUIndividual[0].Name != "cpu12" {
		t.Errorf("CPUIndividual = %+v, want only cpu12", stat.CPUIndividual)
	}
}

func TestParseStatIdempotent(t *testing.T) {
	first, err := ParseStat(sampleStat, 100)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	second, err := ParseStat(sampleStat, 100)
	if err != nil {
		t.Fatalf("ParseStat: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat decode differs: %+v vs %+v", first, second)
	}
}
