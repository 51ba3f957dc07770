// Package sysinfo collects a best-effort CPU summary for report
// headers. Everything here is cosmetic metadata: a query failure
// degrades to a zero Summary and must never abort a measurement run.
package sysinfo

import "github.com/shirou/gopsutil/v4/cpu"

// Summary describes the host CPU. The zero value means "unknown".
type Summary struct {
	Model    string  `json:"model,omitempty"`
	MHz      float64 `json:"mhz,omitempty"`
	Physical int     `json:"physical_cores,omitempty"`
	Logical  int     `json:"logical_cores,omitempty"`
}

// Collect queries the host once. Partial answers are kept; errors
// leave the corresponding fields zero.
func Collect() Summary {
	var s Summary
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.Model = infos[0].ModelName
		s.MHz = infos[0].Mhz
	}
	if n, err := cpu.Counts(false); err == nil {
		s.Physical = n
	}
	if n, err := cpu.Counts(true); err == nil {
		s.Logical = n
	}
	return s
}
