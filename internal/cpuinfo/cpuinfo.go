// Package cpuinfo probes the host for the wide 16-byte transfer unit.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HasWide reports whether the host can move 16-byte lanes in a single
// instruction. The feature structs in x/sys/cpu are zero-valued on
// architectures they do not describe, so each arch is gated explicitly.
func HasWide() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasSSE2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
