// utils.go — low-level zero-alloc helpers shared by report, debug & main.
package utils

import "os"

///////////////////////////////////////////////////////////////////////////////
// Decimal Formatting — No fmt, No strconv
///////////////////////////////////////////////////////////////////////////////

// Itoa converts an int to decimal ASCII with a single string allocation.
// Covers the full int range; used for log tags and table cells.
//
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// PadLeft left-pads s with spaces to width w. Strings already at or
// beyond w come back unchanged.
//
//go:inline
func PadLeft(s string, w int) string {
	const pad = "                " // 16 spaces, wider than any table cell
	if len(s) >= w || w > len(pad) {
		return s
	}
	return pad[:w-len(s)] + s
}

///////////////////////////////////////////////////////////////////////////////
// Stderr Sink — Cold Diagnostics Only
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr. No formatting, no locking
// beyond the fd write itself. Never call from a spin loop.
//
//go:inline
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}
