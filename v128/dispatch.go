package v128

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set backing the 128-bit
// operations for this build.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions. The register model stays
	// 128-bit; AVX2 only changes which encodings a generated backend uses.
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected backend for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the instruction set backing this build.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// It is 16 for every backend of this package; the value exists so that
// callers sizing buffers do not hard-code the constant.
func CurrentWidth() int {
	return 16
}

// CurrentName returns a human-readable name for the current backend.
// For example: "sse2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the V128_NO_SIMD environment variable is set.
// When set, the scalar fallback is reported regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("V128_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Lanes16 returns the number of lanes of type T in a 16-byte register.
//
// For example:
//   - int8/uint8: 16 lanes
//   - int16/uint16: 8 lanes
//   - int32/uint32/float32: 4 lanes
func Lanes16[T Lanes]() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}
