//go:build arm64

package v128

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	// NEON (ASIMD) is mandatory on ARMv8-A, but darwin leaves the
	// hwcap-derived feature flags unset, so only trust a cleared flag
	// on other platforms.
	if !cpu.ARM64.HasASIMD && runtime.GOOS != "darwin" {
		currentLevel = DispatchScalar
		return
	}
	currentLevel = DispatchNEON
}
