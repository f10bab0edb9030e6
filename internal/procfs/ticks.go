package procfs

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
)

// ClockTicks returns the kernel's ticks-per-second setting (CLK_TCK, set by
// CONFIG_HZ, 100 on most distributions). Query it once per process and pass
// the value into the decoders that normalize tick counters.
func ClockTicks() (int64, error) {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, fmt.Errorf("sysconf CLK_TCK: %w", err)
	}
	if hz <= 0 {
		return 0, fmt.Errorf("%w: %d ticks per second", ErrInvalidTickRate, hz)
	}
	return hz, nil
}
