package report

import (
	"strings"
	"testing"
	"time"

	"corelat/matrix"
	"corelat/sysinfo"

	"github.com/sugawarayuuta/sonnet"
)

// ============================================================================
// TEST UTILITIES
// ============================================================================

// twoCoreMatrix builds the canonical 2x2 case: cores 0 and 1, one
// measured pair at 42ns.
func twoCoreMatrix() *matrix.Matrix {
	m := matrix.New([]int{0, 1})
	m.Set(0, 1, 42*time.Nanosecond)
	return m
}

// ============================================================================
// TEXT TABLE TESTS
// ============================================================================

func TestWriteTable_TwoCores(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, twoCoreMatrix(), sysinfo.Summary{}, Options{})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := " CPU    0    1\n" +
		"   0    0   42\n" +
		"   1   42    0\n"
	if buf.String() != expected {
		t.Errorf("table mismatch:\ngot:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWriteTable_WideCoreIds(t *testing.T) {
	m := matrix.New([]int{8, 32})
	m.Set(0, 1, 1234*time.Nanosecond)

	var buf strings.Builder
	if err := Write(&buf, m, sysinfo.Summary{}, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := " CPU    8   32\n" +
		"   8    0 1234\n" +
		"  32 1234    0\n"
	if buf.String() != expected {
		t.Errorf("table mismatch:\ngot:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWriteTable_SingleCore(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, matrix.New([]int{0}), sysinfo.Summary{}, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := " CPU    0\n" +
		"   0    0\n"
	if buf.String() != expected {
		t.Errorf("table mismatch:\ngot:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWriteTable_Header(t *testing.T) {
	info := sysinfo.Summary{Model: "Example CPU @ 3.2GHz", Physical: 4, Logical: 8}

	var buf strings.Builder
	if err := Write(&buf, twoCoreMatrix(), info, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# cpu: Example CPU @ 3.2GHz\n") {
		t.Errorf("missing model header:\n%s", out)
	}
	if !strings.Contains(out, "# cores: 4 physical, 8 logical\n") {
		t.Errorf("missing core count header:\n%s", out)
	}
}

// ============================================================================
// GNUPLOT MODE TESTS
// ============================================================================

func TestWritePlot_WrapsTable(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, twoCoreMatrix(), sysinfo.Summary{}, Options{Plot: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	preamble := []string{
		"set title \"Inter-core one-way data latency between CPU cores\"\n",
		"set xlabel \"CPU\"\n",
		"set ylabel \"CPU\"\n",
		"set cblabel \"Latency (ns)\"\n",
		"$data << EOD\n",
	}
	for _, line := range preamble {
		if !strings.Contains(out, line) {
			t.Errorf("missing preamble line %q", line)
		}
	}

	dataStart := strings.Index(out, "$data << EOD\n")
	dataEnd := strings.Index(out, "EOD\nplot ")
	if dataStart < 0 || dataEnd < 0 || dataEnd < dataStart {
		t.Fatalf("data block not delimited:\n%s", out)
	}
	block := out[dataStart+len("$data << EOD\n") : dataEnd]
	if block != " CPU    0    1\n   0    0   42\n   1   42    0\n" {
		t.Errorf("unexpected data block %q", block)
	}

	if !strings.HasSuffix(out,
		"plot '$data' matrix rowheaders columnheaders using 2:1:3 with image\n") {
		t.Errorf("missing plot command:\n%s", out)
	}
}

// ============================================================================
// JSON MODE TESTS
// ============================================================================

func TestWriteJSON_RoundTrip(t *testing.T) {
	m := matrix.New([]int{0, 1, 2})
	m.Set(0, 1, 40*time.Nanosecond)
	m.Set(0, 2, 55*time.Nanosecond)
	m.Set(1, 2, 70*time.Nanosecond)
	info := sysinfo.Summary{Model: "Example CPU", Logical: 3}

	var buf strings.Builder
	if err := Write(&buf, m, info, Options{JSON: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc document
	if err := sonnet.Unmarshal([]byte(buf.String()), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.CPU.Model != "Example CPU" || doc.CPU.Logical != 3 {
		t.Errorf("cpu summary lost: %+v", doc.CPU)
	}
	if len(doc.Cores) != 3 || doc.Cores[2] != 2 {
		t.Errorf("cores lost: %v", doc.Cores)
	}
	if len(doc.LatencyNs) != 3 {
		t.Fatalf("grid has %d rows, expected 3", len(doc.LatencyNs))
	}
	for i := range doc.LatencyNs {
		for j := range doc.LatencyNs[i] {
			if doc.LatencyNs[i][j] != doc.LatencyNs[j][i] {
				t.Errorf("grid asymmetric at (%d,%d)", i, j)
			}
			if i == j && doc.LatencyNs[i][j] != 0 {
				t.Errorf("diagonal (%d,%d) = %d, expected 0", i, j, doc.LatencyNs[i][j])
			}
		}
	}
	if doc.LatencyNs[0][1] != 40 {
		t.Errorf("latency_ns[0][1] = %d, expected 40", doc.LatencyNs[0][1])
	}
}

func TestWriteJSON_WinsOverPlot(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, twoCoreMatrix(), sysinfo.Summary{}, Options{Plot: true, JSON: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if strings.Contains(buf.String(), "set title") {
		t.Error("JSON mode must not emit gnuplot preamble")
	}
	var doc document
	if err := sonnet.Unmarshal([]byte(buf.String()), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}
