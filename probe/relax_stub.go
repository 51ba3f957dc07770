// relax_stub.go — no-op cpuRelax for targets without a spin-wait hint
//
// Safe drop-in where PAUSE/YIELD are unavailable (other architectures,
// cgo disabled, or -tags noasm). The empty body inlines away entirely;
// the handshake spin just runs at full speed.

//go:build (!amd64 && !arm64) || !cgo || noasm

package probe

//go:nosplit
//go:inline
func cpuRelax() {}
