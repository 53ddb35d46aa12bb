//go:build !amd64 && !arm64

package v128

func init() {
	// Other architectures fall back to the scalar backend for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	currentLevel = DispatchScalar
}
