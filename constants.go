package main

// constants.go — run defaults and the command-line contract.

// ───────────────────────────── Sampling ──────────────────────────────

const (
	// defaultSamples is the outer iteration count per pair. The min
	// statistic needs only one preemption-free batch; 1000 trials make
	// one near certain even on a busy host, at roughly a second per
	// pair on common hardware.
	defaultSamples = 1000
)

// ─────────────────────────── CLI Surface ─────────────────────────────

const usageText = "corelat — inter-core one-way data latency matrix\n" +
	"usage: corelat [-p | -j] [-s number_of_samples] [-b begin_core] [-e end_core]\n" +
	"\nPlot results using gnuplot:\n" +
	"corelat -p | gnuplot -p\n"
