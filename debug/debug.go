// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging (zero-alloc)
//
// Purpose:
//   - Tags infrequent events without introducing heap pressure.
//   - Used only off the measurement path: startup, affinity failures,
//     stall warnings, report errors.
//
// Notes:
//   - Avoids fmt to keep footprint minimal.
//   - Messages are single concatenations written straight to stderr.
//
// ⚠️ Never invoke between the timestamps of a probe batch.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "corelat/utils"

// DropError logs an error with its OS diagnostic string, or just the
// prefix when err is nil.
//
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a tagged progress message. Cold paths only.
//
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
