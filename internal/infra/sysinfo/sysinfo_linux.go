//go:build linux

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// loadScale is the fixed-point shift used by sysinfo(2) load averages.
const loadScale = 1 << 16

// Disk returns usage of the filesystem containing path.
func Disk(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	free := st.Bfree * bsize
	return Usage{Used: total - free, Total: total}, nil
}

// Memory returns system RAM usage and the 1-minute load average.
func Memory() (Usage, float64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return Usage{}, 0, fmt.Errorf("sysinfo: %w", err)
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(si.Totalram) * unit
	free := (uint64(si.Freeram) + uint64(si.Bufferram)) * unit
	used := uint64(0)
	if total > free {
		used = total - free
	}
	return Usage{Used: used, Total: total}, float64(si.Loads[0]) / loadScale, nil
}
