package procfs

import "strings"

const meminfoFileName = "meminfo"

// ProcMemInfo is one decoded snapshot of /proc/meminfo. Every value is in
// kilobytes, exactly as the kernel reports it; the trailing kB token is a
// unit marker and is discarded. Keys the running kernel does not expose
// stay zero, and keys this decoder does not know are ignored, so the same
// decode works across kernel versions in both directions.
//
// This is the only decoder keyed by name instead of position: meminfo is a
// key/value list, not a positional table.
type ProcMemInfo struct {
	MemTotal          uint64 `json:"memtotal"`
	MemFree           uint64 `json:"memfree"`
	MemAvailable      uint64 `json:"memavailable"`
	Buffers           uint64 `json:"buffers"`
	Cached            uint64 `json:"cached"`
	SwapCached        uint64 `json:"swapcached"`
	Active            uint64 `json:"active"`
	Inactive          uint64 `json:"inactive"`
	ActiveAnon        uint64 `json:"active_anon"`
	InactiveAnon      uint64 `json:"inactive_anon"`
	ActiveFile        uint64 `json:"active_file"`
	InactiveFile      uint64 `json:"inactive_file"`
	Unevictable       uint64 `json:"unevictable"`
	Mlocked           uint64 `json:"mlocked"`
	SwapTotal         uint64 `json:"swaptotal"`
	SwapFree          uint64 `json:"swapfree"`
	Zswap             uint64 `json:"zswap"`
	Zswapped          uint64 `json:"zswapped"`
	Dirty             uint64 `json:"dirty"`
	Writeback         uint64 `json:"writeback"`
	AnonPages         uint64 `json:"anonpages"`
	Mapped            uint64 `json:"mapped"`
	Shmem             uint64 `json:"shmem"`
	KReclaimable      uint64 `json:"kreclaimable"`
	Slab              uint64 `json:"slab"`
	SReclaimable      uint64 `json:"sreclaimable"`
	SUnreclaim        uint64 `json:"sunreclaim"`
	KernelStack       uint64 `json:"kernelstack"`
	ShadowCallStack   uint64 `json:"shadowcallstack"`
	PageTables        uint64 `json:"pagetables"`
	SecPageTables     uint64 `json:"secpagetables"`
	NFSUnstable       uint64 `json:"nfs_unstable"`
	Bounce            uint64 `json:"bounce"`
	WritebackTmp      uint64 `json:"writebacktmp"`
	CommitLimit       uint64 `json:"commitlimit"`
	CommittedAS       uint64 `json:"committed_as"`
	VmallocTotal      uint64 `json:"vmalloctotal"`
	VmallocUsed       uint64 `json:"vmallocused"`
	VmallocChunk      uint64 `json:"vmallocchunk"`
	Percpu            uint64 `json:"percpu"`
	HardwareCorrupted uint64 `json:"hardwarecorrupted"`
	AnonHugePages     uint64 `json:"anonhugepages"`
	ShmemHugePages    uint64 `json:"shmemhugepages"`
	ShmemPmdMapped    uint64 `json:"shmempmdmapped"`
	FileHugePages     uint64 `json:"filehugepages"`
	FilePmdMapped     uint64 `json:"filepmdmapped"`
	CmaTotal          uint64 `json:"cmatotal"`
	CmaFree           uint64 `json:"cmafree"`
	HugePagesTotal    uint64 `json:"hugepages_total"`
	HugePagesFree     uint64 `json:"hugepages_free"`
	HugePagesRsvd     uint64 `json:"hugepages_rsvd"`
	HugePagesSurp     uint64 `json:"hugepages_surp"`
	Hugepagesize      uint64 `json:"hugepagesize"`
	Hugetlb           uint64 `json:"hugetlb"`
	DirectMap4k       uint64 `json:"directmap4k"`
	DirectMap2M       uint64 `json:"directmap2m"`
}

// fieldByKey maps the kernel's documented key names, exactly as spelled in
// the file, onto struct fields.
func (m *ProcMemInfo) fieldByKey() map[string]*uint64 {
	return map[string]*uint64{
		"MemTotal":          &m.MemTotal,
		"MemFree":           &m.MemFree,
		"MemAvailable":      &m.MemAvailable,
		"Buffers":           &m.Buffers,
		"Cached":            &m.Cached,
		"SwapCached":        &m.SwapCached,
		"Active":            &m.Active,
		"Inactive":          &m.Inactive,
		"Active(anon)":      &m.ActiveAnon,
		"Inactive(anon)":    &m.InactiveAnon,
		"Active(file)":      &m.ActiveFile,
		"Inactive(file)":    &m.InactiveFile,
		"Unevictable":       &m.Unevictable,
		"Mlocked":           &m.Mlocked,
		"SwapTotal":         &m.SwapTotal,
		"SwapFree":          &m.SwapFree,
		"Zswap":             &m.Zswap,
		"Zswapped":          &m.Zswapped,
		"Dirty":             &m.Dirty,
		"Writeback":         &m.Writeback,
		"AnonPages":         &m.AnonPages,
		"Mapped":            &m.Mapped,
		"Shmem":             &m.Shmem,
		"KReclaimable":      &m.KReclaimable,
		"Slab":              &m.Slab,
		"SReclaimable":      &m.SReclaimable,
		"SUnreclaim":        &m.SUnreclaim,
		"KernelStack":       &m.KernelStack,
		"ShadowCallStack":   &m.ShadowCallStack,
		"PageTables":        &m.PageTables,
		"SecPageTables":     &m.SecPageTables,
		"NFS_Unstable":      &m.NFSUnstable,
		"Bounce":            &m.Bounce,
		"WritebackTmp":      &m.WritebackTmp,
		"CommitLimit":       &m.CommitLimit,
		"Committed_AS":      &m.CommittedAS,
		"VmallocTotal":      &m.VmallocTotal,
		"VmallocUsed":       &m.VmallocUsed,
		"VmallocChunk":      &m.VmallocChunk,
		"Percpu":            &m.Percpu,
		"HardwareCorrupted": &m.HardwareCorrupted,
		"AnonHugePages":     &m.AnonHugePages,
		"ShmemHugePages":    &m.ShmemHugePages,
		"ShmemPmdMapped":    &m.ShmemPmdMapped,
		"FileHugePages":     &m.FileHugePages,
		"FilePmdMapped":     &m.FilePmdMapped,
		"CmaTotal":          &m.CmaTotal,
		"CmaFree":           &m.CmaFree,
		"HugePages_Total":   &m.HugePagesTotal,
		"HugePages_Free":    &m.HugePagesFree,
		"HugePages_Rsvd":    &m.HugePagesRsvd,
		"HugePages_Surp":    &m.HugePagesSurp,
		"Hugepagesize":      &m.Hugepagesize,
		"Hugetlb":           &m.Hugetlb,
		"DirectMap4k":       &m.DirectMap4k,
		"DirectMap2M":       &m.DirectMap2M,
	}
}

// ParseMemInfo decodes the text of /proc/meminfo.
func ParseMemInfo(text string) (ProcMemInfo, error) {
	var info ProcMemInfo
	fields := info.fieldByKey()

	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		key := strings.TrimSuffix(ls.fields[0], ":")
		dst, ok := fields[key]
		if !ok {
			continue
		}
		if len(ls.fields) < 2 {
			return ProcMemInfo{}, &ParseError{File: meminfoFileName, Line: ls.lineNo, Err: ErrMalformedLine}
		}
		v, err := parseUint(meminfoFileName, ls.lineNo, ls.fields[1])
		if err != nil {
			return ProcMemInfo{}, err
		}
		*dst = v
	}
	return info, nil
}
