// Package system probes the host for the export pipeline: how many encoder
// workers to run, how much memory frames may take, and whether ffmpeg is
// installed.
package system

import (
	"os/exec"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Workers is the number of physical cores, or the logical CPU count when
// the host does not report cores.
func Workers() int {
	n, err := cpu.Counts(false)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// MemoryAvailable is the memory the OS reports as available, in bytes. It
// is zero when unknown.
func MemoryAvailable() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Available
}

// FrameBudget bounds how many frames of frameBytes each may be in flight at
// once: at most workers, and at most a quarter of the available memory.
func FrameBudget(workers int, frameBytes, available uint64) int {
	if workers < 1 {
		workers = 1
	}
	if frameBytes == 0 || available == 0 {
		return workers
	}
	byMem := int(available / 4 / frameBytes)
	if byMem < 1 {
		return 1
	}
	if byMem < workers {
		return byMem
	}
	return workers
}

// FFmpegAvailable reports whether ffmpeg is on PATH.
func FFmpegAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}
