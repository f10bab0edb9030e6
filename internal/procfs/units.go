package procfs

import "fmt"

// Tick-based counters are normalized to milliseconds; everything else
// (kB, sectors, bytes, event counts) passes through as the kernel reports
// it. The tick rate is an explicit parameter on every decode entry point
// that needs it, never ambient process state.

func checkTickRate(ticksPerSecond int64) error {
	if ticksPerSecond <= 0 {
		return fmt.Errorf("%w: %d ticks per second", ErrInvalidTickRate, ticksPerSecond)
	}
	return nil
}

// ticksToMillis truncates toward zero, matching the kernel's own tick
// granularity. Fractional milliseconds are not representable.
func ticksToMillis(ticks uint64, ticksPerSecond int64) uint64 {
	return ticks * 1000 / uint64(ticksPerSecond)
}
