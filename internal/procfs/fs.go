package procfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is where the kernel mounts the proc pseudo-filesystem.
const DefaultRoot = "/proc"

// FS reads pseudo-files from a configurable root, so tests and
// containerized callers can point it somewhere other than /proc. Reading
// and decoding stay separate: every ReadXxx slurps the file into memory and
// hands the blob to the pure ParseXxx entry point.
type FS struct {
	root string
}

func NewFS(root string) FS {
	if root == "" {
		root = DefaultRoot
	}
	return FS{root: root}
}

func (fs FS) readFile(name string) (string, error) {
	path := filepath.Join(fs.root, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func (fs FS) ReadStat(ticksPerSecond int64) (ProcStat, error) {
	text, err := fs.readFile(statFileName)
	if err != nil {
		return ProcStat{}, err
	}
	return ParseStat(text, ticksPerSecond)
}

func (fs FS) ReadSchedStat(ticksPerSecond int64) (ProcSchedStat, error) {
	text, err := fs.readFile(schedstatFileName)
	if err != nil {
		return ProcSchedStat{}, err
	}
	return ParseSchedStat(text, ticksPerSecond)
}

func (fs FS) ReadMemInfo() (ProcMemInfo, error) {
	text, err := fs.readFile(meminfoFileName)
	if err != nil {
		return ProcMemInfo{}, err
	}
	return ParseMemInfo(text)
}

func (fs FS) ReadDiskStats() (ProcDiskStats, error) {
	text, err := fs.readFile(diskstatsFileName)
	if err != nil {
		return ProcDiskStats{}, err
	}
	return ParseDiskStats(text)
}

func (fs FS) ReadNetDev() (ProcNetDev, error) {
	text, err := fs.readFile(netDevFileName)
	if err != nil {
		return ProcNetDev{}, err
	}
	return ParseNetDev(text)
}

func (fs FS) ReadLoadavg() (ProcLoadavg, error) {
	text, err := fs.readFile(loadavgFileName)
	if err != nil {
		return ProcLoadavg{}, err
	}
	return ParseLoadavg(text)
}

func (fs FS) ReadVMStat() (ProcVMStat, error) {
	text, err := fs.readFile(vmstatFileName)
	if err != nil {
		return ProcVMStat{}, err
	}
	return ParseVMStat(text)
}

// ReadPressure returns nil without error when the pressure directory is
// absent (kernel built without CONFIG_PSI, or psi=0).
func (fs FS) ReadPressure() (*Psi, error) {
	cpu, err := fs.readFile("pressure/cpu")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	io, err := fs.readFile("pressure/io")
	if err != nil {
		return nil, err
	}
	memory, err := fs.readFile("pressure/memory")
	if err != nil {
		return nil, err
	}
	psi, err := ParsePressure(cpu, io, memory)
	if err != nil {
		return nil, err
	}
	return &psi, nil
}
