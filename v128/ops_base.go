// Copyright 2026 go-v128 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v128

import "math"

// This file provides the pure Go (scalar) backend for all operations.
// Hardware backends must match these implementations bit-for-bit; the
// scalar code is the reference behavior the test suite pins.

// Load creates a vector from the first Lanes16[T]() elements of src.
// The elements are copied, so the vector is independent of src
// afterward. There is no alignment requirement. If src is shorter than
// one register, the remaining lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	lanes := Lanes16[T]()
	data := make([]T, lanes)
	copy(data, src[:min(len(src), lanes)])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst in lane order (lane i goes to
// dst[i]). Lanes beyond len(dst) are dropped.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, Lanes16[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, Lanes16[T]())}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	data := make([]T, Lanes16[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// CmpGt performs a lane-wise greater-than comparison and returns the
// result as a same-width mask vector: all bits of lane i are one when
// a[i] > b[i], otherwise all bits are zero. Signed integers compare
// signed, unsigned integers compare unsigned.
//
// For float32 lanes the comparison is IEEE ordered: if either operand
// is NaN the lane compares false and the result lane is all-bits-zero.
// A true float32 lane holds the all-ones bit pattern 0xFFFFFFFF, which
// is a NaN; combine it bitwise (And, AndNot) rather than arithmetically.
func CmpGt[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	ones := allOnes[T]()
	for i := range n {
		if greaterHelper(a.data[i], b.data[i]) {
			result[i] = ones
		}
		// else: leave as zero
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum under T's native ordering.
//
// For float32 lanes the tie rule is pinned to the SSE backend
// (MINPS): min(a, b) = a < b ? a : b. If either operand is NaN the
// comparison is false and the second operand is returned, so
// Min(NaN, x) = x and Min(x, NaN) = NaN.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		if lessHelper(a.data[i], b.data[i]) {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum under T's native ordering.
//
// For float32 lanes the tie rule is pinned to the SSE backend
// (MAXPS): max(a, b) = a > b ? a : b. If either operand is NaN the
// comparison is false and the second operand is returned.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		if greaterHelper(a.data[i], b.data[i]) {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

func lessHelper[T Lanes](a, b T) bool {
	switch av := any(a).(type) {
	case float32:
		return av < any(b).(float32)
	case int8:
		return av < any(b).(int8)
	case int16:
		return av < any(b).(int16)
	case int32:
		return av < any(b).(int32)
	case uint8:
		return av < any(b).(uint8)
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	default:
		return false
	}
}

func greaterHelper[T Lanes](a, b T) bool {
	switch av := any(a).(type) {
	case float32:
		return av > any(b).(float32)
	case int8:
		return av > any(b).(int8)
	case int16:
		return av > any(b).(int16)
	case int32:
		return av > any(b).(int32)
	case uint8:
		return av > any(b).(uint8)
	case uint16:
		return av > any(b).(uint16)
	case uint32:
		return av > any(b).(uint32)
	default:
		return false
	}
}

// allOnes returns the value of T whose every bit is set. For float32
// that bit pattern is a NaN.
func allOnes[T Lanes]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(any(math.Float32frombits(0xFFFFFFFF)).(float32))
	case int8:
		return T(any(int8(-1)).(int8))
	case int16:
		return T(any(int16(-1)).(int16))
	case int32:
		return T(any(int32(-1)).(int32))
	case uint8:
		return T(any(uint8(0xFF)).(uint8))
	case uint16:
		return T(any(uint16(0xFFFF)).(uint16))
	case uint32:
		return T(any(uint32(0xFFFFFFFF)).(uint32))
	default:
		return T(0)
	}
}

// And performs lane-wise bitwise AND. Float lanes are combined on their
// bit patterns. The usual operands are CmpGt mask vectors.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseAnd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Or performs lane-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseOr(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Xor performs lane-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseXor(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Not performs lane-wise bitwise NOT (ones complement).
func Not[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range v.data {
		result[i] = bitwiseXor(v.data[i], allOnes[T]())
	}
	return Vec[T]{data: result}
}

// AndNot performs lane-wise bitwise AND NOT (^a & b).
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseAnd(bitwiseXor(a.data[i], allOnes[T]()), b.data[i])
	}
	return Vec[T]{data: result}
}

func bitwiseAnd[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) & math.Float32bits(any(b).(float32))
		return T(any(math.Float32frombits(bits)).(float32))
	case int8:
		return T(any(av & any(b).(int8)).(int8))
	case int16:
		return T(any(av & any(b).(int16)).(int16))
	case int32:
		return T(any(av & any(b).(int32)).(int32))
	case uint8:
		return T(any(av & any(b).(uint8)).(uint8))
	case uint16:
		return T(any(av & any(b).(uint16)).(uint16))
	case uint32:
		return T(any(av & any(b).(uint32)).(uint32))
	default:
		return a
	}
}

func bitwiseOr[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) | math.Float32bits(any(b).(float32))
		return T(any(math.Float32frombits(bits)).(float32))
	case int8:
		return T(any(av | any(b).(int8)).(int8))
	case int16:
		return T(any(av | any(b).(int16)).(int16))
	case int32:
		return T(any(av | any(b).(int32)).(int32))
	case uint8:
		return T(any(av | any(b).(uint8)).(uint8))
	case uint16:
		return T(any(av | any(b).(uint16)).(uint16))
	case uint32:
		return T(any(av | any(b).(uint32)).(uint32))
	default:
		return a
	}
}

func bitwiseXor[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) ^ math.Float32bits(any(b).(float32))
		return T(any(math.Float32frombits(bits)).(float32))
	case int8:
		return T(any(av ^ any(b).(int8)).(int8))
	case int16:
		return T(any(av ^ any(b).(int16)).(int16))
	case int32:
		return T(any(av ^ any(b).(int32)).(int32))
	case uint8:
		return T(any(av ^ any(b).(uint8)).(uint8))
	case uint16:
		return T(any(av ^ any(b).(uint16)).(uint16))
	case uint32:
		return T(any(av ^ any(b).(uint32)).(uint32))
	default:
		return a
	}
}
