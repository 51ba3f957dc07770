// ============================================================================
// CPU SET RESOLUTION AND THREAD PINNING
// ============================================================================
//
// Package cpuset answers two questions the measurement loop depends on:
// which logical cores may this process run on, and how does a worker
// thread nail itself to exactly one of them.
//
// Core capabilities:
//   - Resolve: intersect the kernel's allowed-core mask with an inclusive
//     [begin, end] core range, ascending order
//   - Pin: single-core sched_setaffinity(2) for the calling thread
//
// Error model:
//   - An unreadable affinity mask or a rejected pin is an environment
//     fault, surfaced as the raw OS diagnostic. Callers treat both as
//     fatal; nothing here retries.
//
// Platform model:
//   - Linux: raw syscalls against cpu_set_t-shaped bit masks
//   - Elsewhere: mask synthesized from NumCPU, Pin is a silent no-op

package cpuset

// MaxCPUs mirrors the kernel cpu_set_t capacity. Core ids at or beyond
// this bound cannot appear in an affinity mask.
const MaxCPUs = 1024

const nCPUBits = 64

// cpuMask is a cpu_set_t-shaped bitmap, one bit per logical core.
type cpuMask [MaxCPUs / nCPUBits]uint64

//go:inline
func (m *cpuMask) isSet(cpu int) bool {
	return m[cpu/nCPUBits]&(1<<uint(cpu%nCPUBits)) != 0
}

//go:inline
func (m *cpuMask) set(cpu int) {
	m[cpu/nCPUBits] |= 1 << uint(cpu%nCPUBits)
}

// Resolve returns the ascending list of logical cores inside the
// inclusive [begin, end] range that the process is allowed to run on.
// The mask is read once; a failed read is an unrecoverable environment
// fault and comes back as the OS error.
func Resolve(begin, end int) ([]int, error) {
	mask, err := schedGetaffinity()
	if err != nil {
		return nil, err
	}
	return resolveInMask(begin, end, mask.isSet), nil
}

// resolveInMask intersects [begin, end] with a core-membership
// predicate. Both bounds are inclusive; begin clamps to 0 and end to
// MaxCPUs-1 since nothing outside that window can be schedulable.
// Split from the syscall so the range semantics stay testable.
func resolveInMask(begin, end int, isSet func(int) bool) []int {
	if begin < 0 {
		begin = 0
	}
	if end > MaxCPUs-1 {
		end = MaxCPUs - 1
	}
	cores := make([]int, 0, 64)
	for i := begin; i <= end; i++ {
		if isSet(i) {
			cores = append(cores, i)
		}
	}
	return cores
}
