package procfs

import (
	"errors"
	"testing"
)

const (
	samplePsiCPU = `some avg10=1.53 avg60=0.89 avg300=0.35 total=58761459
full avg10=0.00 avg60=0.00 avg300=0.00 total=0
`
	samplePsiIO = `some avg10=0.00 avg60=0.04 avg300=0.06 total=1923586
full avg10=0.00 avg60=0.03 avg300=0.05 total=1703163
`
	samplePsiMemory = `some avg10=0.00 avg60=0.00 avg300=0.00 total=12441
full avg10=0.00 avg60=0.00 avg300=0.00 total=10994
`
)

func TestParsePressure(t *testing.T) {
	psi, err := ParsePressure(samplePsiCPU, samplePsiIO, samplePsiMemory)
	if err != nil {
		t.Fatalf("ParsePressure: %v", err)
	}

	if psi.CPUSome.Avg10 != 1.53 || psi.CPUSome.Total != 58761459 {
		t.Errorf("CPUSome = %+v", psi.CPUSome)
	}
	if psi.CPUFull == nil || psi.CPUFull.Total != 0 {
		t.Errorf("CPUFull = %+v, want present and zero", psi.CPUFull)
	}
	if psi.IOFull.Total != 1703163 || psi.IOFull.Avg60 != 0.03 {
		t.Errorf("IOFull = %+v", psi.IOFull)
	}
	if psi.MemorySome.Total != 12441 || psi.MemoryFull.Total != 10994 {
		t.Errorf("memory = %+v / %+v", psi.MemorySome, psi.MemoryFull)
	}
}

func TestParsePressureCPUWithoutFullLine(t *testing.T) {
	cpu := "some avg10=0.00 avg60=0.00 avg300=0.00 total=10\n"
	psi, err := ParsePressure(cpu, samplePsiIO, samplePsiMemory)
	if err != nil {
		t.Fatalf("ParsePressure: %v", err)
	}
	if psi.CPUFull != nil {
		t.Errorf("CPUFull = %+v, want nil", psi.CPUFull)
	}
}

func TestParsePressureIORequiresFullLine(t *testing.T) {
	io := "some avg10=0.00 avg60=0.00 avg300=0.00 total=10\n"
	_, err := ParsePressure(samplePsiCPU, io, samplePsiMemory)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}

func TestParsePressureBadToken(t *testing.T) {
	cpu := "some avg10=fast avg60=0.00 avg300=0.00 total=10\n"
	_, err := ParsePressure(cpu, samplePsiIO, samplePsiMemory)
	if !errors.Is(err, ErrBadNumber) {
		t.Fatalf("err = %v, want ErrBadNumber", err)
	}
}

func TestParsePressureUnknownLabel(t *testing.T) {
	cpu := "partial avg10=0.00 avg60=0.00 avg300=0.00 total=10\n"
	_, err := ParsePressure(cpu, samplePsiIO, samplePsiMemory)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
}
