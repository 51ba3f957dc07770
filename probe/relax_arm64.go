// relax_arm64.go — ARM64 spin-wait hint via the YIELD instruction
//
// Same contract as the amd64 variant: a pipeline hint for the
// pre-measurement handshake spin, never emitted on the timed path.

//go:build arm64 && cgo && !noasm

package probe

/*
#ifdef __aarch64__
static inline void cpu_yield() {
    __asm__ __volatile__("yield" ::: "memory");
}
#else
#error "This file requires ARM64 architecture"
#endif
*/
import "C"

//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_yield()
}
