package procfs

import (
	"errors"
	"testing"
)

func TestParseLoadavg(t *testing.T) {
	la, err := ParseLoadavg("0.05 0.19 0.13 1/161 7\n")
	if err != nil {
		t.Fatalf("ParseLoadavg: %v", err)
	}
	if la.Load1 != 0.05 || la.Load5 != 0.19 || la.Load15 != 0.13 {
		t.Errorf("loads = %v %v %v, want 0.05 0.19 0.13", la.Load1, la.Load5, la.Load15)
	}
	if la.CurrentRunnable != 1 || la.Total != 161 {
		t.Errorf("runnable/total = %d/%d, want 1/161", la.CurrentRunnable, la.Total)
	}
	if la.LastPID != 7 {
		t.Errorf("LastPID = %d, want 7", la.LastPID)
	}
}

func TestParseLoadavgEmpty(t *testing.T) {
	_, err := ParseLoadavg("")
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParseLoadavgMissingSlash(t *testing.T) {
	_, err := ParseLoadavg("0.05 0.19 0.13 161 7\n")
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParseLoadavgBadNumber(t *testing.T) {
	_, err := ParseLoadavg("high 0.19 0.13 1/161 7\n")
	if !errors.Is(err, ErrBadNumber) {
		t.Fatalf("err = %v, want ErrBadNumber", err)
	}
}
