// relax_amd64.go — x86-64 spin-wait hint via the PAUSE instruction
//
// PAUSE tells the pipeline the thread is busy-waiting, cutting power and
// freeing resources for an SMT sibling. Used only in the pre-measurement
// handshake; timed spins stay bare so the hint's own delay (tens of
// cycles on modern parts) never lands inside a sample.

//go:build amd64 && cgo && !noasm

package probe

/*
#ifdef __x86_64__
static inline void cpu_pause() {
    __asm__ __volatile__("pause" ::: "memory");
}
#else
#error "This file requires x86-64 architecture"
#endif
*/
import "C"

//go:nosplit
//go:inline
func cpuRelax() {
	C.cpu_pause()
}
