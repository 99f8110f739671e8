package utils

import (
	"fmt"
	"runtime"
)

// MemUsage summarizes the heap after a stage of work, for verbose progress output
func MemUsage(stage string) string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	toKb := func(b uint64) uint64 { return b / 1024 }
	return fmt.Sprintf("[%s] Alloc = %v KiB TotalAlloc = %v KiB Sys = %v KiB NumGC = %v",
		stage, toKb(m.Alloc), toKb(m.TotalAlloc), toKb(m.Sys), m.NumGC)
}
