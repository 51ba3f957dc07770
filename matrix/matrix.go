// matrix.go — symmetric aggregation of per-pair latency estimates.
//
// Keys are positions within the resolved core list, not raw core ids;
// the list itself travels with the matrix so renderers can label axes.
// Self pairs are never written and read back as zero ("not measured").
// Writes happen only from the single orchestrating goroutine after each
// pair's workers are joined, so no synchronization is needed.
package matrix

import "time"

// Matrix maps ordered core-position pairs to one-way latencies.
type Matrix struct {
	cores []int
	cells map[[2]int]time.Duration
}

// New builds an empty matrix over the resolved core list.
func New(cores []int) *Matrix {
	return &Matrix{
		cores: cores,
		cells: make(map[[2]int]time.Duration, len(cores)*len(cores)),
	}
}

// Cores returns the core ids labelling both axes, ascending.
func (m *Matrix) Cores() []int { return m.cores }

// Size returns the axis length.
func (m *Matrix) Size() int { return len(m.cores) }

// Set stores one measured duration symmetrically at (i,j) and (j,i).
// The probe times a full round trip, so one estimate serves both
// directions.
func (m *Matrix) Set(i, j int, d time.Duration) {
	m.cells[[2]int{i, j}] = d
	m.cells[[2]int{j, i}] = d
}

// At returns the latency at (i,j); unmeasured entries, including every
// self pair, read zero.
func (m *Matrix) At(i, j int) time.Duration {
	return m.cells[[2]int{i, j}]
}
