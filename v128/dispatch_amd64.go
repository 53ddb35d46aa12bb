//go:build amd64

package v128

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	// SSE2 is part of the x86-64 baseline, so a 128-bit backend is
	// always available here. Report AVX2 when present since a generated
	// backend would prefer its encodings.
	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		return
	}
	currentLevel = DispatchSSE2
}
