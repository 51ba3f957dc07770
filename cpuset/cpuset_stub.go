// cpuset_stub.go - no-op affinity for platforms without sched_setaffinity(2)
//
// Keeps the API surface identical so callers need no conditional code.
// Resolution falls back to runtime.NumCPU; pinning silently does nothing,
// which degrades measurement quality but never correctness of the flow.

//go:build !linux

package cpuset

import "runtime"

// schedGetaffinity synthesizes a full mask over the visible CPUs.
func schedGetaffinity() (*cpuMask, error) {
	var mask cpuMask
	n := runtime.NumCPU()
	if n > MaxCPUs {
		n = MaxCPUs
	}
	for i := 0; i < n; i++ {
		mask.set(i)
	}
	return &mask, nil
}

// Pin is a no-op where thread-to-core binding is unsupported.
func Pin(core int) error {
	return nil
}
