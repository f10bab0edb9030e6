package procfs

const diskstatsFileName = "diskstats"

// A diskstats line is three identity tokens followed by counters in fixed
// kernel order. The counter list has grown over time: 11 counters through
// 4.17, discards from 4.18, flush requests from 5.5. Missing trailing
// counters zero-fill; missing identity tokens or the pre-4.18 counters do
// not.
const (
	diskStatsIdentityCount   = 3
	diskStatsMinCounterCount = 11
	diskStatsMaxCounterCount = 17
)

// DiskStats holds one block device's I/O counters exactly as the kernel
// reports them: sector counts stay sectors (the block layer's 512-byte
// convention is the caller's to apply) and times stay milliseconds.
type DiskStats struct {
	BlockMajor                    uint64 `json:"block_major"`
	BlockMinor                    uint64 `json:"block_minor"`
	DeviceName                    string `json:"device_name"`
	ReadsCompletedSuccess         uint64 `json:"reads_completed_success"`
	ReadsMerged                   uint64 `json:"reads_merged"`
	ReadsSectors                  uint64 `json:"reads_sectors"`
	ReadsTimeSpentMS              uint64 `json:"reads_time_spent_ms"`
	WritesCompletedSuccess        uint64 `json:"writes_completed_success"`
	WritesMerged                  uint64 `json:"writes_merged"`
	WritesSectors                 uint64 `json:"writes_sectors"`
	WritesTimeSpentMS             uint64 `json:"writes_time_spent_ms"`
	IOsInProgress                 uint64 `json:"ios_in_progress"`
	IOsTimeSpentMS                uint64 `json:"ios_time_spent_ms"`
	IOsWeightedTimeSpentMS        uint64 `json:"ios_weighted_time_spent_ms"`
	DiscardsCompletedSuccess      uint64 `json:"discards_completed_success"`
	DiscardsMerged                uint64 `json:"discards_merged"`
	DiscardsSectors               uint64 `json:"discards_sectors"`
	DiscardsTimeSpentMS           uint64 `json:"discards_time_spent_ms"`
	FlushRequestsCompletedSuccess uint64 `json:"flush_requests_completed_success"`
	FlushRequestsTimeSpentMS      uint64 `json:"flush_requests_time_spent_ms"`
}

// ProcDiskStats is one decoded snapshot of /proc/diskstats in the kernel's
// listing order. Devices with no I/O history still appear.
type ProcDiskStats struct {
	DiskStats []DiskStats `json:"disk_stats"`
}

// ParseDiskStats decodes the text of /proc/diskstats.
func ParseDiskStats(text string) (ProcDiskStats, error) {
	var disks ProcDiskStats
	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		stats, err := parseDiskStatsLine(ls.lineNo, ls.fields)
		if err != nil {
			return ProcDiskStats{}, err
		}
		disks.DiskStats = append(disks.DiskStats, stats)
	}
	return disks, nil
}

func parseDiskStatsLine(lineNo int, fields []string) (DiskStats, error) {
	if len(fields) < diskStatsIdentityCount+diskStatsMinCounterCount {
		return DiskStats{}, &ParseError{File: diskstatsFileName, Line: lineNo, Err: ErrMalformedLine}
	}
	major, err := parseUint(diskstatsFileName, lineNo, fields[0])
	if err != nil {
		return DiskStats{}, err
	}
	minor, err := parseUint(diskstatsFileName, lineNo, fields[1])
	if err != nil {
		return DiskStats{}, err
	}

	var counters [diskStatsMaxCounterCount]uint64
	for i := 0; i < diskStatsMaxCounterCount && i+diskStatsIdentityCount < len(fields); i++ {
		counters[i], err = parseUint(diskstatsFileName, lineNo, fields[i+diskStatsIdentityCount])
		if err != nil {
			return DiskStats{}, err
		}
	}

	return DiskStats{
		BlockMajor:                    major,
		BlockMinor:                    minor,
		DeviceName:                    fields[2],
		ReadsCompletedSuccess:         counters[0],
		ReadsMerged:                   counters[1],
		ReadsSectors:                  counters[2],
		ReadsTimeSpentMS:              counters[3],
		WritesCompletedSuccess:        counters[4],
		WritesMerged:                  counters[5],
		WritesSectors:                 counters[6],
		WritesTimeSpentMS:             counters[7],
		IOsInProgress:                 counters[8],
		IOsTimeSpentMS:                counters[9],
		IOsWeightedTimeSpentMS:        counters[10],
		DiscardsCompletedSuccess:      counters[11],
		DiscardsMerged:                counters[12],
		DiscardsSectors:               counters[13],
		DiscardsTimeSpentMS:           counters[14],
		FlushRequestsCompletedSuccess: counters[15],
		FlushRequestsTimeSpentMS:      counters[16],
	}, nil
}
