// ════════════════════════════════════════════════════════════════════════════════════════════════
// corelat - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Orchestration & Exit Policy
//
// Description:
//   Drives one measurement run end to end: resolve the schedulable core set,
//   probe every unordered core pair sequentially, then hand the symmetric
//   matrix to the reporter.
//
// Phases:
//   - Phase 1: Core set resolution from the OS affinity mask
//   - Phase 2: Sequential pairwise probing (two pinned threads per pair)
//   - Phase 3: Rendering (table, gnuplot script, or JSON)
//
// Exit policy:
//   0 on success; 1 on usage errors and on any affinity query/bind failure.
//   Affinity failures are terminal: a host that cannot pin threads cannot
//   produce a meaningful matrix, so nothing is retried.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"errors"
	"os"
	"strconv"

	"corelat/cpuset"
	"corelat/debug"
	"corelat/matrix"
	"corelat/probe"
	"corelat/report"
	"corelat/sysinfo"
	"corelat/utils"
)

// config carries the parsed command-line surface.
type config struct {
	begin   int  // inclusive lower core bound
	end     int  // inclusive upper core bound
	samples int  // timed batches per pair
	plot    bool // gnuplot wrapper around the table
	json    bool // JSON document instead of the table
}

var errUsage = errors.New("usage")

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		utils.PrintWarning(usageText)
		os.Exit(1)
	}

	// PHASE 1: Resolve which cores this process may measure.
	cores, err := cpuset.Resolve(cfg.begin, cfg.end)
	if err != nil {
		debug.DropError("sched_getaffinity", err)
		os.Exit(1)
	}
	debug.DropMessage("CORES", utils.Itoa(len(cores))+" schedulable in ["+
		utils.Itoa(cfg.begin)+","+utils.Itoa(cfg.end)+"]")

	// PHASE 2: Probe all unordered pairs.
	m := measure(cores, cfg.samples)

	// PHASE 3: Render.
	opts := report.Options{Plot: cfg.plot, JSON: cfg.json}
	if err := report.Write(os.Stdout, m, sysinfo.Collect(), opts); err != nil {
		debug.DropError("report", err)
		os.Exit(1)
	}
}

// measure probes every unordered pair {i,j} over core-list positions,
// ascending nested order, one pair at a time. Pairs never overlap:
// both workers of a pair are joined before the next pair starts, so no
// cross-pair traffic pollutes a sample. The matrix is written only
// from this goroutine, after each join.
func measure(cores []int, samples int) *matrix.Matrix {
	m := matrix.New(cores)
	for i := 0; i < len(cores); i++ {
		for j := i + 1; j < len(cores); j++ {
			d, err := probe.Probe(cores[i], cores[j], samples)
			if err != nil {
				debug.DropError("sched_setaffinity", err)
				os.Exit(1)
			}
			m.Set(i, j, d)
		}
	}
	return m
}

// parseArgs understands -b, -e, -s, -p and -j. Unknown flags, stray
// positionals, missing or malformed values, and non-positive sample
// counts are all usage errors. -b clamps below at 0 and -e above at
// the highest representable core; both bounds stay inclusive.
func parseArgs(args []string) (config, error) {
	cfg := config{
		begin:   0,
		end:     cpuset.MaxCPUs - 1,
		samples: defaultSamples,
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p":
			cfg.plot = true
		case "-j":
			cfg.json = true
		case "-b", "-e", "-s":
			if i+1 >= len(args) {
				return cfg, errUsage
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return cfg, errUsage
			}
			switch args[i] {
			case "-b":
				if v < 0 {
					v = 0
				}
				cfg.begin = v
			case "-e":
				if v > cpuset.MaxCPUs-1 {
					v = cpuset.MaxCPUs - 1
				}
				cfg.end = v
			case "-s":
				if v <= 0 {
					return cfg, errUsage
				}
				cfg.samples = v
			}
			i++
		default:
			return cfg, errUsage
		}
	}
	return cfg, nil
}
