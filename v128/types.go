// Package v128 provides portable 128-bit SIMD lane operations.
//
// A Vec holds exactly 16 bytes of data, reinterpreted as 16/sizeof(T)
// lanes of element type T. Every operation is a pure function over
// register values with lane-wise semantics that match ordinary scalar
// arithmetic and comparison, so kernels written against this package
// behave bit-for-bit identically on every backend, including the pure
// Go scalar fallback.
//
// Basic usage:
//
//	import "github.com/go-simd/go-v128/v128"
//
//	a := v128.Load(data1)
//	b := v128.Load(data2)
//
//	lo := v128.Min(a, b)
//	hi := v128.Max(a, b)
//
//	v128.Store(lo, out)
package v128

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a 128-bit vector register value of 16/sizeof(T) lanes.
// It is a plain value type: Load copies its source, and two Vec values
// never alias each other or caller memory.
//
// Vec instances should not be created directly; use Load, Set, or Zero
// instead.
type Vec[T Lanes] struct {
	// data holds the lanes in the scalar backend. It always has exactly
	// Lanes16[T]() elements once created by one of the constructors.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to a slice.
// This is the method form of the v128.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Vec2 is an ordered pair of vectors of the same lane type, the input
// and output shape of Interleave and Deinterleave. Lo carries the first
// n elements of the conceptual 2n-element sequence and Hi the second n.
//
// The arity is fixed in the type rather than held in a slice so that
// "operates on a pair" is visible in every signature and no heap
// allocation is involved beyond the two registers themselves.
type Vec2[T Lanes] struct {
	Lo Vec[T]
	Hi Vec[T]
}

// NumLanes returns the number of lanes in each half of the pair.
func (t Vec2[T]) NumLanes() int {
	return t.Lo.NumLanes()
}
