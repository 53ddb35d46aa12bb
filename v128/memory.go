package v128

// This file provides memory-layout helpers built on the pair
// operations: conversions between interleaved (Array-of-Structures)
// and planar (Structure-of-Arrays) layouts, one register pair at a time.

// LoadInterleaved2 loads one register pair of interleaved elements and
// deinterleaves it into two vectors.
//
// Input memory layout (interleaved pairs, 2*Lanes16[T]() elements):
//
//	[a0, b0, a1, b1, a2, b2, ...]
//
// Output vectors:
//
//	vecA = [a0, a1, a2, ...]
//	vecB = [b0, b1, b2, ...]
//
// This is useful for processing 2D coordinates, complex numbers, or any
// paired data stored in interleaved format.
func LoadInterleaved2[T Lanes](src []T) (Vec[T], Vec[T]) {
	n := Lanes16[T]()
	var tail []T
	if len(src) > n {
		tail = src[n:]
	}
	planar := Deinterleave(Vec2[T]{Lo: Load(src), Hi: Load(tail)})
	return planar.Lo, planar.Hi
}

// StoreInterleaved2 interleaves two vectors and stores the resulting
// register pair to dst.
//
// Input vectors:
//
//	vecA = [a0, a1, a2, ...]
//	vecB = [b0, b1, b2, ...]
//
// Output memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, ...]
//
// This is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := Lanes16[T]()
	zipped := Interleave(Vec2[T]{Lo: a, Hi: b})
	Store(zipped.Lo, dst)
	if len(dst) > n {
		Store(zipped.Hi, dst[n:])
	}
}
