// cpuset_linux.go - Linux affinity queries via sched_{get,set}affinity(2)

//go:build linux

package cpuset

import (
	"syscall"
	"unsafe"
)

// schedGetaffinity reads the process's current allowed-core mask.
func schedGetaffinity() (*cpuMask, error) {
	var mask cpuMask
	_, _, errno := syscall.RawSyscall(
		syscall.SYS_SCHED_GETAFFINITY,
		0, // current process
		uintptr(unsafe.Sizeof(mask)),
		uintptr(unsafe.Pointer(&mask[0])),
	)
	if errno != 0 {
		return nil, errno
	}
	return &mask, nil
}

// Pin binds the calling thread to a single core. The caller must be
// holding runtime.LockOSThread for the binding to stick to anything.
// A rejected pin (invalid or disallowed core) is returned verbatim;
// it indicates a misconfigured host, never transient contention.
func Pin(core int) error {
	if core < 0 || core >= MaxCPUs {
		return syscall.EINVAL
	}
	var mask cpuMask
	mask.set(core)
	_, _, errno := syscall.RawSyscall(
		syscall.SYS_SCHED_SETAFFINITY,
		0, // current thread
		uintptr(unsafe.Sizeof(mask)),
		uintptr(unsafe.Pointer(&mask[0])),
	)
	if errno != 0 {
		return errno
	}
	return nil
}
