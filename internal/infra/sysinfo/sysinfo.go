// Package sysinfo reports host resource usage for the status endpoint.
package sysinfo

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned on platforms without the required syscalls.
var ErrUnsupported = errors.New("sysinfo: not supported on this platform")

// Usage is a used/total pair in bytes.
type Usage struct {
	Used  uint64
	Total uint64
}

// Percentage returns used/total*100, or 0 when total is unknown.
func (u Usage) Percentage() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}

// Runtime describes the Go process itself.
type Runtime struct {
	Goroutines int
	HeapAlloc  uint64
	Sys        uint64
	NumGC      uint32
}

// ReadRuntime samples the Go runtime.
func ReadRuntime() Runtime {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Runtime{
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// CPUCores returns the number of logical CPUs usable by the process.
func CPUCores() int {
	return runtime.NumCPU()
}

// CPULoad converts a 1-minute load average into a percentage of the
// available cores, capped at 100.
func CPULoad(load1 float64, cores int) float64 {
	if cores <= 0 || load1 <= 0 {
		return 0
	}
	pct := load1 / float64(cores) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
