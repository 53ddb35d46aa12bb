package v128

// This file provides the shuffle operations: the Interleave and
// Deinterleave pair operations and the half-register primitives they
// are built from. All lane movement is index arithmetic over the scalar
// backend; hardware backends map these to zip/unzip instructions.

// GetLane extracts a single lane value from the vector.
// Returns the zero value if idx is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}

// ConcatEven places the even lanes of a in the lower half of the result
// and the even lanes of b in the upper half.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a2,b0,b2]
func ConcatEven[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[i] = a.data[2*i]
		result[half+i] = b.data[2*i]
	}
	return Vec[T]{data: result}
}

// ConcatOdd places the odd lanes of a in the lower half of the result
// and the odd lanes of b in the upper half.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a1,a3,b1,b3]
func ConcatOdd[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := 0; i < half; i++ {
		result[i] = a.data[2*i+1]
		result[half+i] = b.data[2*i+1]
	}
	return Vec[T]{data: result}
}

// Interleave zips the pair t, treating t.Lo and t.Hi as the two halves
// of one conceptual 2n-element sequence a. The flattened result r
// (r.Lo followed by r.Hi) satisfies
//
//	r[2*i]   = a[i]     (= t.Lo lanes)
//	r[2*i+1] = a[n+i]   (= t.Hi lanes)
//
// for i in [0, n). Example with int32 (n = 4):
//
//	{[1,2,3,4], [5,6,7,8]} -> {[1,5,2,6], [3,7,4,8]}
//
// Deinterleave is the exact inverse.
func Interleave[T Lanes](t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		Lo: InterleaveLower(t.Lo, t.Hi),
		Hi: InterleaveUpper(t.Lo, t.Hi),
	}
}

// Deinterleave unzips the pair t, undoing Interleave: with r the
// flattened 2n-element sequence t.Lo followed by t.Hi, the result a
// satisfies
//
//	a[i]   = r[2*i]     (a.Lo lanes)
//	a[n+i] = r[2*i+1]   (a.Hi lanes)
//
// for i in [0, n). Example with int32 (n = 4):
//
//	{[1,5,2,6], [3,7,4,8]} -> {[1,2,3,4], [5,6,7,8]}
func Deinterleave[T Lanes](t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		Lo: ConcatEven(t.Lo, t.Hi),
		Hi: ConcatOdd(t.Lo, t.Hi),
	}
}

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// OddEven combines odd lanes from a with even lanes from b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			result[i] = b.data[i]
		} else {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}
