// ════════════════════════════════════════════════════════════════════════════════════════════════
// Pairwise Cache-Line Latency Probe
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Two-Thread Ping-Pong Measurement
//
// Description:
//   Estimates one-way cache-line transfer latency between two logical cores by
//   bouncing a pair of sequence counters between two affinity-pinned threads and
//   timing batches of 100 round trips. OS preemption, interrupts and cache misses
//   only ever inflate a batch, so the minimum over many batches is the estimate
//   of the hardware latency floor.
//
// Memory ordering:
//   Both counters are sync/atomic cells; Go's atomics are sequentially
//   consistent, which subsumes the release-store / acquire-load edges each
//   round needs for the spin-waits to observe fresh writes.
//
// Concurrency model:
//   Exactly two worker threads per probe, created fresh and joined before the
//   next pair starts. The counters are freshly allocated per probe and never
//   pooled, so no stale round value can leak across pairs. Spin-waits carry no
//   deadline: a probe whose peer never arrives spins forever, and the only
//   concession is a log-only stall watchdog that stays off the timed path.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package probe

import (
	"errors"
	"runtime"
	"sync/atomic"
	"time"

	"corelat/cpuset"
	"corelat/debug"
	"corelat/utils"

	"golang.org/x/sys/cpu"
)

const (
	// RoundsPerBatch is the ping-pong round count inside one timed
	// interval. Timing 100 rounds at once amortizes the clock-read
	// overhead down to noise.
	RoundsPerBatch = 100

	// sentinel parks both counters outside the valid round range
	// [0, RoundsPerBatch) between batches.
	sentinel = -1

	// stallWarn is the diagnostic-only watchdog threshold. Even the
	// slowest sane run of a single pair finishes in well under this.
	stallWarn = 30 * time.Second
)

// readiness states published by the responder before sampling starts.
const (
	notReady = int32(iota)
	readyOK
	readyFailed
)

var (
	// ErrSampleCount rejects non-positive outer iteration counts.
	ErrSampleCount = errors.New("probe: sample count must be positive")

	errPeerPin = errors.New("probe: responder failed to pin")
)

// pairState holds the only mutable state two probe threads share. Each
// cell sits on its own cache line so the ping-pong traffic is exactly
// one migrating line per counter, with no false sharing between them.
type pairState struct {
	_     cpu.CacheLinePad
	turnA atomic.Int32 // written by initiator, spun on by responder
	_     cpu.CacheLinePad
	turnB atomic.Int32 // written by responder, spun on by initiator
	_     cpu.CacheLinePad
	ready atomic.Int32 // responder pin handshake, pre-measurement only
	_     cpu.CacheLinePad
}

type initResult struct {
	samples []time.Duration
	err     error
}

// Estimate reduces per-batch round-trip durations to the one-way
// latency: the minimum batch divided by 2 (the timed interval covers a
// full round trip per round) and by RoundsPerBatch. Empty input reads
// as zero, meaning "not measured".
func Estimate(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	best := samples[0]
	for _, s := range samples[1:] {
		if s < best {
			best = s
		}
	}
	return best / 2 / RoundsPerBatch
}

// Probe measures the one-way latency between coreA and coreB using
// nsamples timed batches. It blocks until both workers have finished
// and returns the min-based estimate.
//
// A pinning failure on either worker is returned as-is; the caller is
// expected to treat it as fatal and exit, which also reaps a peer that
// may still be spinning on a handshake that will never complete.
func Probe(coreA, coreB, nsamples int) (time.Duration, error) {
	if nsamples <= 0 {
		return 0, ErrSampleCount
	}

	// Fresh shared state per pair, discarded after the join.
	st := new(pairState)
	st.turnA.Store(sentinel)
	st.turnB.Store(sentinel)

	respDone := make(chan error, 1)
	initDone := make(chan initResult, 1)

	go responder(coreA, nsamples, st, respDone)
	go initiator(coreB, nsamples, st, initDone)

	stop := startWatchdog(coreA, coreB)
	defer stop()

	res := <-initDone
	if res.err != nil {
		if res.err == errPeerPin {
			return 0, <-respDone
		}
		return 0, res.err
	}
	if err := <-respDone; err != nil {
		return 0, err
	}
	return Estimate(res.samples), nil
}

// responder pins to its core, publishes readiness, then echoes every
// round: spin until turnA reaches n, store n into turnB. The spin body
// is a bare load so nothing perturbs the line migration being timed.
func responder(core, nsamples int, st *pairState, done chan<- error) {
	runtime.LockOSThread()
	if err := cpuset.Pin(core); err != nil {
		st.ready.Store(readyFailed)
		done <- err
		return
	}
	st.ready.Store(readyOK)

	for m := 0; m < nsamples; m++ {
		for n := int32(0); n < RoundsPerBatch; n++ {
			for st.turnA.Load() != n {
			}
			st.turnB.Store(n)
		}
	}
	done <- nil
}

// initiator pins to its core, waits for the responder's readiness so
// thread startup never lands inside a timed interval, then drives the
// batches: reset both counters to the sentinel, timestamp, run 100
// write-then-spin rounds, timestamp again.
func initiator(core, nsamples int, st *pairState, out chan<- initResult) {
	runtime.LockOSThread()
	if err := cpuset.Pin(core); err != nil {
		out <- initResult{err: err}
		return
	}

	// Pre-measurement handshake; cpuRelax is fine here, off the clock.
	for {
		r := st.ready.Load()
		if r == readyOK {
			break
		}
		if r == readyFailed {
			out <- initResult{err: errPeerPin}
			return
		}
		cpuRelax()
	}

	samples := make([]time.Duration, 0, nsamples)
	for m := 0; m < nsamples; m++ {
		st.turnA.Store(sentinel)
		st.turnB.Store(sentinel)
		ts := time.Now()
		for n := int32(0); n < RoundsPerBatch; n++ {
			st.turnA.Store(n)
			for st.turnB.Load() != n {
			}
		}
		samples = append(samples, time.Since(ts))
	}
	out <- initResult{samples: samples}
}

// startWatchdog arms a log-only stall diagnostic for one pair. It never
// touches the spin cells and adds nothing to the timed path; it exists
// so a probe wedged by a mispinned peer is at least visible.
func startWatchdog(coreA, coreB int) (stop func()) {
	t := time.AfterFunc(stallWarn, func() {
		debug.DropMessage("STALL",
			"pair "+utils.Itoa(coreA)+"/"+utils.Itoa(coreB)+
				" still spinning after "+utils.Itoa(int(stallWarn/time.Second))+"s")
	})
	return func() { t.Stop() }
}
