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

import (
	"math"
	"math/rand"
	"testing"
)

// Randomized lane-wise property checks. Every operation is compared
// against its scalar equivalent over full-range random bit patterns,
// with boundary values (zero, min/max representable, all-ones, NaN)
// injected periodically.

const randTrials = 1000

func randomFill[T Lanes](rng *rand.Rand, buf []T) {
	switch b := any(buf).(type) {
	case []int8:
		for i := range b {
			b[i] = int8(rng.Uint64())
		}
	case []int16:
		for i := range b {
			b[i] = int16(rng.Uint64())
		}
	case []int32:
		for i := range b {
			b[i] = int32(rng.Uint64())
		}
	case []uint8:
		for i := range b {
			b[i] = uint8(rng.Uint64())
		}
	case []uint16:
		for i := range b {
			b[i] = uint16(rng.Uint64())
		}
	case []uint32:
		for i := range b {
			b[i] = uint32(rng.Uint64())
		}
	case []float32:
		for i := range b {
			b[i] = math.Float32frombits(rng.Uint32())
		}
	}
}

func boundaryValues[T Lanes]() []T {
	switch any(T(0)).(type) {
	case int8:
		return any([]int8{0, math.MinInt8, math.MaxInt8, -1}).([]T)
	case int16:
		return any([]int16{0, math.MinInt16, math.MaxInt16, -1}).([]T)
	case int32:
		return any([]int32{0, math.MinInt32, math.MaxInt32, -1}).([]T)
	case uint8:
		return any([]uint8{0, math.MaxUint8, 0x80}).([]T)
	case uint16:
		return any([]uint16{0, math.MaxUint16, 0x8000}).([]T)
	case uint32:
		return any([]uint32{0, math.MaxUint32, 0x80000000}).([]T)
	case float32:
		return any([]float32{
			0,
			float32(math.Copysign(0, -1)),
			float32(math.Inf(1)),
			float32(math.Inf(-1)),
			float32(math.NaN()),
			math.MaxFloat32,
			math.SmallestNonzeroFloat32,
		}).([]T)
	default:
		return nil
	}
}

// injectBoundaries overwrites a few random lanes with boundary values
// on a fraction of trials so the suite exercises the representable
// extremes alongside uniform bit patterns.
func injectBoundaries[T Lanes](rng *rand.Rand, trial int, buf []T) {
	if trial%4 != 0 {
		return
	}
	vals := boundaryValues[T]()
	for range 1 + len(buf)/4 {
		buf[rng.Intn(len(buf))] = vals[rng.Intn(len(vals))]
	}
}

// sameBits reports lane equality on bit patterns, so NaN lanes and
// signed zeros compare exactly.
func sameBits[T Lanes](a, b T) bool {
	if av, ok := any(a).(float32); ok {
		return math.Float32bits(av) == math.Float32bits(any(b).(float32))
	}
	return a == b
}

func checkCmpGtRandom[T Integers](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := Lanes16[T]()
	a := make([]T, n)
	b := make([]T, n)
	r := make([]T, n)

	for trial := 0; trial < randTrials; trial++ {
		randomFill(rng, a)
		randomFill(rng, b)
		injectBoundaries(rng, trial, a)
		injectBoundaries(rng, trial, b)

		Store(CmpGt(Load(a), Load(b)), r)

		for i := 0; i < n; i++ {
			want := T(0)
			if a[i] > b[i] {
				want = allOnes[T]()
			}
			if r[i] != want {
				t.Fatalf("trial %d: CmpGt(%v, %v) lane %d = %v, want %v",
					trial, a[i], b[i], i, r[i], want)
			}
		}
	}
}

func checkMinMaxRandom[T Lanes](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := Lanes16[T]()
	a := make([]T, n)
	b := make([]T, n)
	lo := make([]T, n)
	hi := make([]T, n)

	for trial := 0; trial < randTrials; trial++ {
		randomFill(rng, a)
		randomFill(rng, b)
		injectBoundaries(rng, trial, a)
		injectBoundaries(rng, trial, b)

		Store(Min(Load(a), Load(b)), lo)
		Store(Max(Load(a), Load(b)), hi)

		for i := 0; i < n; i++ {
			wantLo := b[i]
			if a[i] < b[i] {
				wantLo = a[i]
			}
			wantHi := b[i]
			if a[i] > b[i] {
				wantHi = a[i]
			}
			if !sameBits(lo[i], wantLo) {
				t.Fatalf("trial %d: Min(%v, %v) lane %d = %v, want %v",
					trial, a[i], b[i], i, lo[i], wantLo)
			}
			if !sameBits(hi[i], wantHi) {
				t.Fatalf("trial %d: Max(%v, %v) lane %d = %v, want %v",
					trial, a[i], b[i], i, hi[i], wantHi)
			}
		}
	}
}

func checkInterleaveRandom[T Lanes](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := Lanes16[T]()
	a := make([]T, 2*n)
	r := make([]T, 2*n)

	for trial := 0; trial < randTrials; trial++ {
		randomFill(rng, a)
		injectBoundaries(rng, trial, a)

		zipped := Interleave(Vec2[T]{Lo: Load(a[:n]), Hi: Load(a[n:])})
		Store(zipped.Lo, r[:n])
		Store(zipped.Hi, r[n:])

		for i := 0; i < n; i++ {
			if !sameBits(r[2*i], a[i]) {
				t.Fatalf("trial %d: interleaved[%d] = %v, want %v", trial, 2*i, r[2*i], a[i])
			}
			if !sameBits(r[2*i+1], a[n+i]) {
				t.Fatalf("trial %d: interleaved[%d] = %v, want %v", trial, 2*i+1, r[2*i+1], a[n+i])
			}
		}
	}
}

func checkDeinterleaveRandom[T Lanes](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := Lanes16[T]()
	a := make([]T, 2*n)
	r := make([]T, 2*n)

	for trial := 0; trial < randTrials; trial++ {
		randomFill(rng, a)
		injectBoundaries(rng, trial, a)

		planar := Deinterleave(Vec2[T]{Lo: Load(a[:n]), Hi: Load(a[n:])})
		Store(planar.Lo, r[:n])
		Store(planar.Hi, r[n:])

		for i := 0; i < n; i++ {
			if !sameBits(a[2*i], r[i]) {
				t.Fatalf("trial %d: deinterleaved Lo[%d] = %v, want %v", trial, i, r[i], a[2*i])
			}
			if !sameBits(a[2*i+1], r[n+i]) {
				t.Fatalf("trial %d: deinterleaved Hi[%d] = %v, want %v", trial, i, r[n+i], a[2*i+1])
			}
		}

		// Round trip recovers the original pair exactly.
		back := Interleave(Deinterleave(Vec2[T]{Lo: Load(a[:n]), Hi: Load(a[n:])}))
		Store(back.Lo, r[:n])
		Store(back.Hi, r[n:])
		for i := 0; i < 2*n; i++ {
			if !sameBits(r[i], a[i]) {
				t.Fatalf("trial %d: round trip[%d] = %v, want %v", trial, i, r[i], a[i])
			}
		}
	}
}

func TestCmpGtRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	t.Run("int8", func(t *testing.T) { checkCmpGtRandom[int8](t, rng) })
	t.Run("uint8", func(t *testing.T) { checkCmpGtRandom[uint8](t, rng) })
	t.Run("int16", func(t *testing.T) { checkCmpGtRandom[int16](t, rng) })
	t.Run("uint16", func(t *testing.T) { checkCmpGtRandom[uint16](t, rng) })
	t.Run("int32", func(t *testing.T) { checkCmpGtRandom[int32](t, rng) })
	t.Run("uint32", func(t *testing.T) { checkCmpGtRandom[uint32](t, rng) })
}

func TestMinMaxRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	t.Run("int8", func(t *testing.T) { checkMinMaxRandom[int8](t, rng) })
	t.Run("uint8", func(t *testing.T) { checkMinMaxRandom[uint8](t, rng) })
	t.Run("int16", func(t *testing.T) { checkMinMaxRandom[int16](t, rng) })
	t.Run("uint16", func(t *testing.T) { checkMinMaxRandom[uint16](t, rng) })
	t.Run("int32", func(t *testing.T) { checkMinMaxRandom[int32](t, rng) })
	t.Run("uint32", func(t *testing.T) { checkMinMaxRandom[uint32](t, rng) })
	t.Run("float32", func(t *testing.T) { checkMinMaxRandom[float32](t, rng) })
}

func TestInterleaveRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	t.Run("int8", func(t *testing.T) { checkInterleaveRandom[int8](t, rng) })
	t.Run("uint8", func(t *testing.T) { checkInterleaveRandom[uint8](t, rng) })
	t.Run("int16", func(t *testing.T) { checkInterleaveRandom[int16](t, rng) })
	t.Run("uint16", func(t *testing.T) { checkInterleaveRandom[uint16](t, rng) })
	t.Run("int32", func(t *testing.T) { checkInterleaveRandom[int32](t, rng) })
	t.Run("uint32", func(t *testing.T) { checkInterleaveRandom[uint32](t, rng) })
	t.Run("float32", func(t *testing.T) { checkInterleaveRandom[float32](t, rng) })
}

func TestDeinterleaveRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	t.Run("int8", func(t *testing.T) { checkDeinterleaveRandom[int8](t, rng) })
	t.Run("uint8", func(t *testing.T) { checkDeinterleaveRandom[uint8](t, rng) })
	t.Run("int16", func(t *testing.T) { checkDeinterleaveRandom[int16](t, rng) })
	t.Run("uint16", func(t *testing.T) { checkDeinterleaveRandom[uint16](t, rng) })
	t.Run("int32", func(t *testing.T) { checkDeinterleaveRandom[int32](t, rng) })
	t.Run("uint32", func(t *testing.T) { checkDeinterleaveRandom[uint32](t, rng) })
	t.Run("float32", func(t *testing.T) { checkDeinterleaveRandom[float32](t, rng) })
}
