// report.go — renders a latency matrix as a text table, a gnuplot
// heatmap script, or a JSON document.
//
// Output formats:
//   - Table: header row of core ids, one row per core, every cell a
//     nanosecond integer left-padded to width 4.
//   - Plot: the same table wrapped in a gnuplot preamble and an inline
//     $data block, pipeable straight into `gnuplot -p`.
//   - JSON: cores, the full nanosecond grid, and the host CPU summary.
//
// All of this is cold-path formatting; it runs once, after every pair
// has been probed and joined.
package report

import (
	"io"
	"strings"
	"time"

	"corelat/matrix"
	"corelat/sysinfo"
	"corelat/utils"

	"github.com/sugawarayuuta/sonnet"
)

// cellWidth is the fixed pad width for every table cell.
const cellWidth = 4

// Options select the output surface. JSON wins if both are set.
type Options struct {
	Plot bool // wrap the table in a gnuplot heatmap script
	JSON bool // emit a JSON document instead of the table
}

// Write renders m to w according to opts.
func Write(w io.Writer, m *matrix.Matrix, info sysinfo.Summary, opts Options) error {
	if opts.JSON {
		return writeJSON(w, m, info)
	}
	return writeTable(w, m, info, opts.Plot)
}

// writeTable assembles the whole table in one builder and writes it in
// a single call. Header lines are '#'-prefixed so plot output stays
// valid gnuplot input.
func writeTable(w io.Writer, m *matrix.Matrix, info sysinfo.Summary, plot bool) error {
	var b strings.Builder

	if info.Model != "" {
		b.WriteString("# cpu: " + info.Model + "\n")
	}
	if info.Logical > 0 {
		b.WriteString("# cores: " + utils.Itoa(info.Physical) + " physical, " +
			utils.Itoa(info.Logical) + " logical\n")
	}

	if plot {
		b.WriteString("set title \"Inter-core one-way data latency between CPU cores\"\n")
		b.WriteString("set xlabel \"CPU\"\n")
		b.WriteString("set ylabel \"CPU\"\n")
		b.WriteString("set cblabel \"Latency (ns)\"\n")
		b.WriteString("$data << EOD\n")
	}

	cores := m.Cores()
	b.WriteString(utils.PadLeft("CPU", cellWidth))
	for _, c := range cores {
		b.WriteString(" " + utils.PadLeft(utils.Itoa(c), cellWidth))
	}
	b.WriteByte('\n')
	for i, c := range cores {
		b.WriteString(utils.PadLeft(utils.Itoa(c), cellWidth))
		for j := range cores {
			ns := int(m.At(i, j) / time.Nanosecond)
			b.WriteString(" " + utils.PadLeft(utils.Itoa(ns), cellWidth))
		}
		b.WriteByte('\n')
	}

	if plot {
		b.WriteString("EOD\n")
		b.WriteString("plot '$data' matrix rowheaders columnheaders using 2:1:3 with image\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// document is the JSON output shape.
type document struct {
	CPU       sysinfo.Summary `json:"cpu"`
	Cores     []int           `json:"cores"`
	LatencyNs [][]int64       `json:"latency_ns"`
}

func writeJSON(w io.Writer, m *matrix.Matrix, info sysinfo.Summary) error {
	doc := document{
		CPU:       info,
		Cores:     m.Cores(),
		LatencyNs: make([][]int64, m.Size()),
	}
	for i := range doc.LatencyNs {
		row := make([]int64, m.Size())
		for j := range row {
			row[j] = m.At(i, j).Nanoseconds()
		}
		doc.LatencyNs[i] = row
	}

	out, err := sonnet.Marshal(doc)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
