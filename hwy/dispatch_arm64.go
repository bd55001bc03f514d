//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. SVE widths are implementation defined and
	// are not reported as a separate level.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		setLevel(DispatchScalar)
	}
}
