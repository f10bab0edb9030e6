package procfs

const vmstatFileName = "vmstat"

// ProcVMStat is one decoded snapshot of /proc/vmstat: key/value lines of
// virtual memory event counters and gauges, no units to normalize. As with
// meminfo, keys absent on the running kernel stay zero and unknown keys are
// ignored.
type ProcVMStat struct {
	NrFreePages                 uint64 `json:"nr_free_pages"`
	NrZoneInactiveAnon          uint64 `json:"nr_zone_inactive_anon"`
	NrZoneActiveAnon            uint64 `json:"nr_zone_active_anon"`
	NrZoneInactiveFile          uint64 `json:"nr_zone_inactive_file"`
	NrZoneActiveFile            uint64 `json:"nr_zone_active_file"`
	NrZoneUnevictable           uint64 `json:"nr_zone_unevictable"`
	NrZoneWritePending          uint64 `json:"nr_zone_write_pending"`
	NrMlock                     uint64 `json:"nr_mlock"`
	NrBounce                    uint64 `json:"nr_bounce"`
	NrZspages                   uint64 `json:"nr_zspages"`
	NrFreeCMA                   uint64 `json:"nr_free_cma"`
	NUMAHit                     uint64 `json:"numa_hit"`
	NUMAMiss                    uint64 `json:"numa_miss"`
	NUMAForeign                 uint64 `json:"numa_foreign"`
	NUMAInterleave              uint64 `json:"numa_interleave"`
	NUMALocal                   uint64 `json:"numa_local"`
	NUMAOther                   uint64 `json:"numa_other"`
	NrInactiveAnon              uint64 `json:"nr_inactive_anon"`
	NrActiveAnon                uint64 `json:"nr_active_anon"`
	NrInactiveFile              uint64 `json:"nr_inactive_file"`
	NrActiveFile                uint64 `json:"nr_active_file"`
	NrUnevictable               uint64 `json:"nr_unevictable"`
	NrSlabReclaimable           uint64 `json:"nr_slab_reclaimable"`
	NrSlabUnreclaimable         uint64 `json:"nr_slab_unreclaimable"`
	NrIsolatedAnon              uint64 `json:"nr_isolated_anon"`
	NrIsolatedFile              uint64 `json:"nr_isolated_file"`
	WorkingsetNodes             uint64 `json:"workingset_nodes"`
	WorkingsetRefaultAnon       uint64 `json:"workingset_refault_anon"`
	WorkingsetRefaultFile       uint64 `json:"workingset_refault_file"`
	WorkingsetActivateAnon      uint64 `json:"workingset_activate_anon"`
	WorkingsetActivateFile      uint64 `json:"workingset_activate_file"`
	WorkingsetRestoreAnon       uint64 `json:"workingset_restore_anon"`
	WorkingsetRestoreFile       uint64 `json:"workingset_restore_file"`
	WorkingsetNodereclaim       uint64 `json:"workingset_nodereclaim"`
	NrAnonPages                 uint64 `json:"nr_anon_pages"`
	NrMapped                    uint64 `json:"nr_mapped"`
	NrFilePages                 uint64 `json:"nr_file_pages"`
	NrDirty                     uint64 `json:"nr_dirty"`
	NrWriteback                 uint64 `json:"nr_writeback"`
	NrWritebackTemp             uint64 `json:"nr_writeback_temp"`
	NrShmem                     uint64 `json:"nr_shmem"`
	NrShmemHugepages            uint64 `json:"nr_shmem_hugepages"`
	NrShmemPmdmapped            uint64 `json:"nr_shmem_pmdmapped"`
	NrFileHugepages             uint64 `json:"nr_file_hugepages"`
	NrFilePmdmapped             uint64 `json:"nr_file_pmdmapped"`
	NrAnonTransparentHugepages  uint64 `json:"nr_anon_transparent_hugepages"`
	NrVmscanWrite               uint64 `json:"nr_vmscan_write"`
	NrVmscanImmediateReclaim    uint64 `json:"nr_vmscan_immediate_reclaim"`
	NrDirtied                   uint64 `json:"nr_dirtied"`
	NrWritten                   uint64 `json:"nr_written"`
	NrThrottledWritten          uint64 `json:"nr_throttled_written"`
	NrKernelMiscReclaimable     uint64 `json:"nr_kernel_misc_reclaimable"`
	NrFollPinAcquired           uint64 `json:"nr_foll_pin_acquired"`
	NrFollPinReleased           uint64 `json:"nr_foll_pin_released"`
	NrKernelStack               uint64 `json:"nr_kernel_stack"`
	NrShadowCallStack           uint64 `json:"nr_shadow_call_stack"`
	NrPageTablePages            uint64 `json:"nr_page_table_pages"`
	NrSecPageTablePages         uint64 `json:"nr_sec_page_table_pages"`
	NrSwapcached                uint64 `json:"nr_swapcached"`
	PgpromoteSuccess            uint64 `json:"pgpromote_success"`
	PgpromoteCandidate          uint64 `json:"pgpromote_candidate"`
	NrDirtyThreshold            uint64 `json:"nr_dirty_threshold"`
	NrDirtyBackgroundThreshold  uint64 `json:"nr_dirty_background_threshold"`
	Pgpgin                      uint64 `json:"pgpgin"`
	Pgpgout                     uint64 `json:"pgpgout"`
	Pswpin                      uint64 `json:"pswpin"`
	Pswpout                     uint64 `json:"pswpout"`
	PgallocDma                  uint64 `json:"pgalloc_dma"`
	PgallocDma32                uint64 `json:"pgalloc_dma32"`
	PgallocNormal               uint64 `json:"pgalloc_normal"`
	PgallocMovable              uint64 `json:"pgalloc_movable"`
	PgallocDevice               uint64 `json:"pgalloc_device"`
	AllocstallDma               uint64 `json:"allocstall_dma"`
	AllocstallDma32             uint64 `json:"allocstall_dma32"`
	AllocstallNormal            uint64 `json:"allocstall_normal"`
	AllocstallMovable           uint64 `json:"allocstall_movable"`
	AllocstallDevice            uint64 `json:"allocstall_device"`
	PgskipDma                   uint64 `json:"pgskip_dma"`
	PgskipDma32                 uint64 `json:"pgskip_dma32"`
	PgskipNormal                uint64 `json:"pgskip_normal"`
	PgskipMovable               uint64 `json:"pgskip_movable"`
	PgskipDevice                uint64 `json:"pgskip_device"`
	Pgfree                      uint64 `json:"pgfree"`
	Pgactivate                  uint64 `json:"pgactivate"`
	Pgdeactivate                uint64 `json:"pgdeactivate"`
	Pglazyfree                  uint64 `json:"pglazyfree"`
	Pglazyfreed                 uint64 `json:"pglazyfreed"`
	Pgfault                     uint64 `json:"pgfault"`
	Pgmajfault                  uint64 `json:"pgmajfault"`
	Pgrefill                    uint64 `json:"pgrefill"`
	Pgreuse                     uint64 `json:"pgreuse"`
	PgstealKswapd               uint64 `json:"pgsteal_kswapd"`
	PgstealDirect               uint64 `json:"pgsteal_direct"`
	PgstealKhugepaged           uint64 `json:"pgsteal_khugepaged"`
	PgdemoteKswapd              uint64 `json:"pgdemote_kswapd"`
	PgdemoteDirect              uint64 `json:"pgdemote_direct"`
	PgdemoteKhugepaged          uint64 `json:"pgdemote_khugepaged"`
	PgscanKswapd                uint64 `json:"pgscan_kswapd"`
	PgscanDirect                uint64 `json:"pgscan_direct"`
	PgscanKhugepaged            uint64 `json:"pgscan_khugepaged"`
	PgscanDirectThrottle        uint64 `json:"pgscan_direct_throttle"`
	PgscanAnon                  uint64 `json:"pgscan_anon"`
	PgscanFile                  uint64 `json:"pgscan_file"`
	PgstealAnon                 uint64 `json:"pgsteal_anon"`
	PgstealFile                 uint64 `json:"pgsteal_file"`
	ZoneReclaimFailed           uint64 `json:"zone_reclaim_failed"`
	Pginodesteal                uint64 `json:"pginodesteal"`
	SlabsScanned                uint64 `json:"slabs_scanned"`
	KswapdInodesteal            uint64 `json:"kswapd_inodesteal"`
	KswapdLowWmarkHitQuickly    uint64 `json:"kswapd_low_wmark_hit_quickly"`
	KswapdHighWmarkHitQuickly   uint64 `json:"kswapd_high_wmark_hit_quickly"`
	Pageoutrun                  uint64 `json:"pageoutrun"`
	Pgrotated                   uint64 `json:"pgrotated"`
	DropPagecache               uint64 `json:"drop_pagecache"`
	DropSlab                    uint64 `json:"drop_slab"`
	OOMKill                     uint64 `json:"oom_kill"`
	NUMAPTEUpdates              uint64 `json:"numa_pte_updates"`
	NUMAHugePTEUpdates          uint64 `json:"numa_huge_pte_updates"`
	NUMAHintFaults              uint64 `json:"numa_hint_faults"`
	NUMAHintFaultsLocal         uint64 `json:"numa_hint_faults_local"`
	NUMAPagesMigrated           uint64 `json:"numa_pages_migrated"`
	PgmigrateSuccess            uint64 `json:"pgmigrate_success"`
	PgmigrateFail               uint64 `json:"pgmigrate_fail"`
	THPMigrationSuccess         uint64 `json:"thp_migration_success"`
	THPMigrationFail            uint64 `json:"thp_migration_fail"`
	THPMigrationSplit           uint64 `json:"thp_migration_split"`
	CompactMigrateScanned       uint64 `json:"compact_migrate_scanned"`
	CompactFreeScanned          uint64 `json:"compact_free_scanned"`
	CompactIsolated             uint64 `json:"compact_isolated"`
	CompactStall                uint64 `json:"compact_stall"`
	CompactFail                 uint64 `json:"compact_fail"`
	CompactSuccess              uint64 `json:"compact_success"`
	CompactDaemonWake           uint64 `json:"compact_daemon_wake"`
	CompactDaemonMigrateScanned uint64 `json:"compact_daemon_migrate_scanned"`
	CompactDaemonFreeScanned    uint64 `json:"compact_daemon_free_scanned"`
	HTLBBuddyAllocSuccess       uint64 `json:"htlb_buddy_alloc_success"`
	HTLBBuddyAllocFail          uint64 `json:"htlb_buddy_alloc_fail"`
	CMAAllocSuccess             uint64 `json:"cma_alloc_success"`
	CMAAllocFail                uint64 `json:"cma_alloc_fail"`
	UnevictablePgsCulled        uint64 `json:"unevictable_pgs_culled"`
	UnevictablePgsScanned       uint64 `json:"unevictable_pgs_scanned"`
	UnevictablePgsRescued       uint64 `json:"unevictable_pgs_rescued"`
	UnevictablePgsMlocked       uint64 `json:"unevictable_pgs_mlocked"`
	UnevictablePgsMunlocked     uint64 `json:"unevictable_pgs_munlocked"`
	UnevictablePgsCleared       uint64 `json:"unevictable_pgs_cleared"`
	UnevictablePgsStranded      uint64 `json:"unevictable_pgs_stranded"`
	THPFaultAlloc               uint64 `json:"thp_fault_alloc"`
	THPFaultFallback            uint64 `json:"thp_fault_fallback"`
	THPFaultFallbackCharge      uint64 `json:"thp_fault_fallback_charge"`
	THPCollapseAlloc            uint64 `json:"thp_collapse_alloc"`
	THPCollapseAllocFailed      uint64 `json:"thp_collapse_alloc_failed"`
	THPFileAlloc                uint64 `json:"thp_file_alloc"`
	THPFileFallback             uint64 `json:"thp_file_fallback"`
	THPFileFallbackCharge       uint64 `json:"thp_file_fallback_charge"`
	THPFileMapped               uint64 `json:"thp_file_mapped"`
	THPSplitPage                uint64 `json:"thp_split_page"`
	THPSplitPageFailed          uint64 `json:"thp_split_page_failed"`
	THPDeferredSplitPage        uint64 `json:"thp_deferred_split_page"`
	THPSplitPmd                 uint64 `json:"thp_split_pmd"`
	THPScanExceedNonePTE        uint64 `json:"thp_scan_exceed_none_pte"`
	THPScanExceedSwapPTE        uint64 `json:"thp_scan_exceed_swap_pte"`
	THPScanExceedSharePTE       uint64 `json:"thp_scan_exceed_share_pte"`
	THPZeroPageAlloc            uint64 `json:"thp_zero_page_alloc"`
	THPZeroPageAllocFailed      uint64 `json:"thp_zero_page_alloc_failed"`
	THPSwpout                   uint64 `json:"thp_swpout"`
	THPSwpoutFallback           uint64 `json:"thp_swpout_fallback"`
	BalloonInflate              uint64 `json:"balloon_inflate"`
	BalloonDeflate              uint64 `json:"balloon_deflate"`
	BalloonMigrate              uint64 `json:"balloon_migrate"`
	SwapRa                      uint64 `json:"swap_ra"`
	SwapRaHit                   uint64 `json:"swap_ra_hit"`
	KSMSwpinCopy                uint64 `json:"ksm_swpin_copy"`
	CowKSM                      uint64 `json:"cow_ksm"`
	Zswpin                      uint64 `json:"zswpin"`
	Zswpout                     uint64 `json:"zswpout"`
	NrUnstable                  uint64 `json:"nr_unstable"`
}

func (v *ProcVMStat) fieldByKey() map[string]*uint64 {
	return map[string]*uint64{
		"nr_free_pages":                  &v.NrFreePages,
		"nr_zone_inactive_anon":          &v.NrZoneInactiveAnon,
		"nr_zone_active_anon":            &v.NrZoneActiveAnon,
		"nr_zone_inactive_file":          &v.NrZoneInactiveFile,
		"nr_zone_active_file":            &v.NrZoneActiveFile,
		"nr_zone_unevictable":            &v.NrZoneUnevictable,
		"nr_zone_write_pending":          &v.NrZoneWritePending,
		"nr_mlock":                       &v.NrMlock,
		"nr_bounce":                      &v.NrBounce,
		"nr_zspages":                     &v.NrZspages,
		"nr_free_cma":                    &v.NrFreeCMA,
		"numa_hit":                       &v.NUMAHit,
		"numa_miss":                      &v.NUMAMiss,
		"numa_foreign":                   &v.NUMAForeign,
		"numa_interleave":                &v.NUMAInterleave,
		"numa_local":                     &v.NUMALocal,
		"numa_other":                     &v.NUMAOther,
		"nr_inactive_anon":               &v.NrInactiveAnon,
		"nr_active_anon":                 &v.NrActiveAnon,
		"nr_inactive_file":               &v.NrInactiveFile,
		"nr_active_file":                 &v.NrActiveFile,
		"nr_unevictable":                 &v.NrUnevictable,
		"nr_slab_reclaimable":            &v.NrSlabReclaimable,
		"nr_slab_unreclaimable":          &v.NrSlabUnreclaimable,
		"nr_isolated_anon":               &v.NrIsolatedAnon,
		"nr_isolated_file":               &v.NrIsolatedFile,
		"workingset_nodes":               &v.WorkingsetNodes,
		"workingset_refault_anon":        &v.WorkingsetRefaultAnon,
		"workingset_refault_file":        &v.WorkingsetRefaultFile,
		"workingset_activate_anon":       &v.WorkingsetActivateAnon,
		"workingset_activate_file":       &v.WorkingsetActivateFile,
		"workingset_restore_anon":        &v.WorkingsetRestoreAnon,
		"workingset_restore_file":        &v.WorkingsetRestoreFile,
		"workingset_nodereclaim":         &v.WorkingsetNodereclaim,
		"nr_anon_pages":                  &v.NrAnonPages,
		"nr_mapped":                      &v.NrMapped,
		"nr_file_pages":                  &v.NrFilePages,
		"nr_dirty":                       &v.NrDirty,
		"nr_writeback":                   &v.NrWriteback,
		"nr_writeback_temp":              &v.NrWritebackTemp,
		"nr_shmem":                       &v.NrShmem,
		"nr_shmem_hugepages":             &v.NrShmemHugepages,
		"nr_shmem_pmdmapped":             &v.NrShmemPmdmapped,
		"nr_file_hugepages":              &v.NrFileHugepages,
		"nr_file_pmdmapped":              &v.NrFilePmdmapped,
		"nr_anon_transparent_hugepages":  &v.NrAnonTransparentHugepages,
		"nr_vmscan_write":                &v.NrVmscanWrite,
		"nr_vmscan_immediate_reclaim":    &v.NrVmscanImmediateReclaim,
		"nr_dirtied":                     &v.NrDirtied,
		"nr_written":                     &v.NrWritten,
		"nr_throttled_written":           &v.NrThrottledWritten,
		"nr_kernel_misc_reclaimable":     &v.NrKernelMiscReclaimable,
		"nr_foll_pin_acquired":           &v.NrFollPinAcquired,
		"nr_foll_pin_released":           &v.NrFollPinReleased,
		"nr_kernel_stack":                &v.NrKernelStack,
		"nr_shadow_call_stack":           &v.NrShadowCallStack,
		"nr_page_table_pages":            &v.NrPageTablePages,
		"nr_sec_page_table_pages":        &v.NrSecPageTablePages,
		"nr_swapcached":                  &v.NrSwapcached,
		"pgpromote_success":              &v.PgpromoteSuccess,
		"pgpromote_candidate":            &v.PgpromoteCandidate,
		"nr_dirty_threshold":             &v.NrDirtyThreshold,
		"nr_dirty_background_threshold":  &v.NrDirtyBackgroundThreshold,
		"pgpgin":                         &v.Pgpgin,
		"pgpgout":                        &v.Pgpgout,
		"pswpin":                         &v.Pswpin,
		"pswpout":                        &v.Pswpout,
		"pgalloc_dma":                    &v.PgallocDma,
		"pgalloc_dma32":                  &v.PgallocDma32,
		"pgalloc_normal":                 &v.PgallocNormal,
		"pgalloc_movable":                &v.PgallocMovable,
		"pgalloc_device":                 &v.PgallocDevice,
		"allocstall_dma":                 &v.AllocstallDma,
		"allocstall_dma32":               &v.AllocstallDma32,
		"allocstall_normal":              &v.AllocstallNormal,
		"allocstall_movable":             &v.AllocstallMovable,
		"allocstall_device":              &v.AllocstallDevice,
		"pgskip_dma":                     &v.PgskipDma,
		"pgskip_dma32":                   &v.PgskipDma32,
		"pgskip_normal":                  &v.PgskipNormal,
		"pgskip_movable":                 &v.PgskipMovable,
		"pgskip_device":                  &v.PgskipDevice,
		"pgfree":                         &v.Pgfree,
		"pgactivate":                     &v.Pgactivate,
		"pgdeactivate":                   &v.Pgdeactivate,
		"pglazyfree":                     &v.Pglazyfree,
		"pglazyfreed":                    &v.Pglazyfreed,
		"pgfault":                        &v.Pgfault,
		"pgmajfault":                     &v.Pgmajfault,
		"pgrefill":                       &v.Pgrefill,
		"pgreuse":                        &v.Pgreuse,
		"pgsteal_kswapd":                 &v.PgstealKswapd,
		"pgsteal_direct":                 &v.PgstealDirect,
		"pgsteal_khugepaged":             &v.PgstealKhugepaged,
		"pgdemote_kswapd":                &v.PgdemoteKswapd,
		"pgdemote_direct":                &v.PgdemoteDirect,
		"pgdemote_khugepaged":            &v.PgdemoteKhugepaged,
		"pgscan_kswapd":                  &v.PgscanKswapd,
		"pgscan_direct":                  &v.PgscanDirect,
		"pgscan_khugepaged":              &v.PgscanKhugepaged,
		"pgscan_direct_throttle":         &v.PgscanDirectThrottle,
		"pgscan_anon":                    &v.PgscanAnon,
		"pgscan_file":                    &v.PgscanFile,
		"pgsteal_anon":                   &v.PgstealAnon,
		"pgsteal_file":                   &v.PgstealFile,
		"zone_reclaim_failed":            &v.ZoneReclaimFailed,
		"pginodesteal":                   &v.Pginodesteal,
		"slabs_scanned":                  &v.SlabsScanned,
		"kswapd_inodesteal":              &v.KswapdInodesteal,
		"kswapd_low_wmark_hit_quickly":   &v.KswapdLowWmarkHitQuickly,
		"kswapd_high_wmark_hit_quickly":  &v.KswapdHighWmarkHitQuickly,
		"pageoutrun":                     &v.Pageoutrun,
		"pgrotated":                      &v.Pgrotated,
		"drop_pagecache":                 &v.DropPagecache,
		"drop_slab":                      &v.DropSlab,
		"oom_kill":                       &v.OOMKill,
		"numa_pte_updates":               &v.NUMAPTEUpdates,
		"numa_huge_pte_updates":          &v.NUMAHugePTEUpdates,
		"numa_hint_faults":               &v.NUMAHintFaults,
		"numa_hint_faults_local":         &v.NUMAHintFaultsLocal,
		"numa_pages_migrated":            &v.NUMAPagesMigrated,
		"pgmigrate_success":              &v.PgmigrateSuccess,
		"pgmigrate_fail":                 &v.PgmigrateFail,
		"thp_migration_success":          &v.THPMigrationSuccess,
		"thp_migration_fail":             &v.THPMigrationFail,
		"thp_migration_split":            &v.THPMigrationSplit,
		"compact_migrate_scanned":        &v.CompactMigrateScanned,
		"compact_free_scanned":           &v.CompactFreeScanned,
		"compact_isolated":               &v.CompactIsolated,
		"compact_stall":                  &v.CompactStall,
		"compact_fail":                   &v.CompactFail,
		"compact_success":                &v.CompactSuccess,
		"compact_daemon_wake":            &v.CompactDaemonWake,
		"compact_daemon_migrate_scanned": &v.CompactDaemonMigrateScanned,
		"compact_daemon_free_scanned":    &v.CompactDaemonFreeScanned,
		"htlb_buddy_alloc_success":       &v.HTLBBuddyAllocSuccess,
		"htlb_buddy_alloc_fail":          &v.HTLBBuddyAllocFail,
		"cma_alloc_success":              &v.CMAAllocSuccess,
		"cma_alloc_fail":                 &v.CMAAllocFail,
		"unevictable_pgs_culled":         &v.UnevictablePgsCulled,
		"unevictable_pgs_scanned":        &v.UnevictablePgsScanned,
		"unevictable_pgs_rescued":        &v.UnevictablePgsRescued,
		"unevictable_pgs_mlocked":        &v.UnevictablePgsMlocked,
		"unevictable_pgs_munlocked":      &v.UnevictablePgsMunlocked,
		"unevictable_pgs_cleared":        &v.UnevictablePgsCleared,
		"unevictable_pgs_stranded":       &v.UnevictablePgsStranded,
		"thp_fault_alloc":                &v.THPFaultAlloc,
		"thp_fault_fallback":             &v.THPFaultFallback,
		"thp_fault_fallback_charge":      &v.THPFaultFallbackCharge,
		"thp_collapse_alloc":             &v.THPCollapseAlloc,
		"thp_collapse_alloc_failed":      &v.THPCollapseAllocFailed,
		"thp_file_alloc":                 &v.THPFileAlloc,
		"thp_file_fallback":              &v.THPFileFallback,
		"thp_file_fallback_charge":       &v.THPFileFallbackCharge,
		"thp_file_mapped":                &v.THPFileMapped,
		"thp_split_page":                 &v.THPSplitPage,
		"thp_split_page_failed":          &v.THPSplitPageFailed,
		"thp_deferred_split_page":        &v.THPDeferredSplitPage,
		"thp_split_pmd":                  &v.THPSplitPmd,
		"thp_scan_exceed_none_pte":       &v.THPScanExceedNonePTE,
		"thp_scan_exceed_swap_pte":       &v.THPScanExceedSwapPTE,
		"thp_scan_exceed_share_pte":      &v.THPScanExceedSharePTE,
		"thp_zero_page_alloc":            &v.THPZeroPageAlloc,
		"thp_zero_page_alloc_failed":     &v.THPZeroPageAllocFailed,
		"thp_swpout":                     &v.THPSwpout,
		"thp_swpout_fallback":            &v.THPSwpoutFallback,
		"balloon_inflate":                &v.BalloonInflate,
		"balloon_deflate":                &v.BalloonDeflate,
		"balloon_migrate":                &v.BalloonMigrate,
		"swap_ra":                        &v.SwapRa,
		"swap_ra_hit":                    &v.SwapRaHit,
		"ksm_swpin_copy":                 &v.KSMSwpinCopy,
		"cow_ksm":                        &v.CowKSM,
		"zswpin":                         &v.Zswpin,
		"zswpout":                        &v.Zswpout,
		"nr_unstable":                    &v.NrUnstable,
	}
}

// ParseVMStat decodes the text of /proc/vmstat.
func ParseVMStat(text string) (ProcVMStat, error) {
	var stat ProcVMStat
	fields := stat.fieldByKey()

	ls := newLineScanner(text)
	for ls.Scan() {
		if len(ls.fields) == 0 {
			continue
		}
		dst, ok := fields[ls.fields[0]]
		if !ok {
			continue
		}
		if len(ls.fields) < 2 {
			return ProcVMStat{}, &ParseError{File: vmstatFileName, Line: ls.lineNo, Err: ErrMalformedLine}
		}
		value, err := parseUint(vmstatFileName, ls.lineNo, ls.fields[1])
		if err != nil {
			return ProcVMStat{}, err
		}
		*dst = value
	}
	return stat, nil
}
