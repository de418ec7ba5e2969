//go:build windows
// +build windows

package clock

import (
	"syscall"
)

// processNanos reads the kernel- and user-mode execution times of the current process and
// reports their sum, which excludes time spent sleeping. Falls back to the monotonic
// reading if the process times are unavailable.
func processNanos() int64 {
	handle, err := syscall.GetCurrentProcess()
	if err != nil {
		return monotonicNanos()
	}

	var creation, exit, kernel, user syscall.Filetime
	if err := syscall.GetProcessTimes(handle, &creation, &exit, &kernel, &user); err != nil {
		return monotonicNanos()
	}

	return kernel.Nanoseconds() + user.Nanoseconds()
}
