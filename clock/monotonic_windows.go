//go:build windows
// +build windows

package clock

import (
	"syscall"
	"unsafe"
)

// The runtime's interrupt-time-based clock has millisecond-order granularity on Windows,
// which is too coarse for short measurements. QueryPerformanceCounter provides the
// high-resolution counter instead.
//
// See https://github.com/golang/go/issues/31160

var (
	queryPerformanceCounter          uintptr
	queryPerformanceCounterFrequency int64
)

func init() {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	queryPerformanceFrequency := kernel32.NewProc("QueryPerformanceFrequency").Addr()
	syscall.Syscall(queryPerformanceFrequency, 1, uintptr(unsafe.Pointer(&queryPerformanceCounterFrequency)), 0, 0)
	queryPerformanceCounter = kernel32.NewProc("QueryPerformanceCounter").Addr()
}

func monotonicNanos() int64 {
	var now int64
	syscall.Syscall(queryPerformanceCounter, 1, uintptr(unsafe.Pointer(&now)), 0, 0)
	return now * (1e9 / queryPerformanceCounterFrequency)
}
