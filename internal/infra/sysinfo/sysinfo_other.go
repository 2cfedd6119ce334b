//go:build !linux

package sysinfo

// Disk is only implemented on Linux.
func Disk(path string) (Usage, error) {
	return Usage{}, ErrUnsupported
}

// Memory is only implemented on Linux.
func Memory() (Usage, float64, error) {
	return Usage{}, 0, ErrUnsupported
}
