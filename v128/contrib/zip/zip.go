// Copyright 2026 The go-v128 Authors. SPDX-License-Identifier: Apache-2.0

// Package zip provides slice-level interleave and deinterleave
// transforms built on the v128 pair operations: conversions between
// planar (Structure-of-Arrays) and interleaved (Array-of-Structures)
// layouts for arbitrarily long slices, with a vector main loop and a
// scalar tail.
package zip

import (
	"github.com/go-simd/go-v128/v128"
	"github.com/go-simd/go-v128/v128/contrib/workerpool"
)

// Interleave2 zips two planar slices into one interleaved slice:
//
//	dst = [a0, b0, a1, b1, ...]
//
// Processes min(len(a), len(b), len(dst)/2) element pairs.
func Interleave2[T v128.Lanes](dst, a, b []T) {
	n := min(len(a), len(b), len(dst)/2)
	lanes := v128.Lanes16[T]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va := v128.Load(a[i:])
		vb := v128.Load(b[i:])
		v128.StoreInterleaved2(va, vb, dst[2*i:2*i+2*lanes])
	}
	for ; i < n; i++ {
		dst[2*i] = a[i]
		dst[2*i+1] = b[i]
	}
}

// Deinterleave2 unzips one interleaved slice into two planar slices:
//
//	a = [src0, src2, src4, ...]
//	b = [src1, src3, src5, ...]
//
// Processes min(len(a), len(b), len(src)/2) element pairs.
func Deinterleave2[T v128.Lanes](a, b, src []T) {
	n := min(len(a), len(b), len(src)/2)
	lanes := v128.Lanes16[T]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		va, vb := v128.LoadInterleaved2(src[2*i : 2*i+2*lanes])
		v128.Store(va, a[i:])
		v128.Store(vb, b[i:])
	}
	for ; i < n; i++ {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
}

// ParallelInterleave2 is Interleave2 with the element pairs split
// across the pool's workers. Chunk boundaries are aligned to the
// register lane count so workers never share a register pair.
func ParallelInterleave2[T v128.Lanes](pool *workerpool.Pool, dst, a, b []T) {
	n := min(len(a), len(b), len(dst)/2)
	lanes := v128.Lanes16[T]()

	blocks := n / lanes
	pool.ParallelFor(blocks, func(start, end int) {
		lo, hi := start*lanes, end*lanes
		Interleave2(dst[2*lo:2*hi], a[lo:hi], b[lo:hi])
	})

	// Scalar tail past the last full block.
	for i := blocks * lanes; i < n; i++ {
		dst[2*i] = a[i]
		dst[2*i+1] = b[i]
	}
}

// ParallelDeinterleave2 is Deinterleave2 with the element pairs split
// across the pool's workers.
func ParallelDeinterleave2[T v128.Lanes](pool *workerpool.Pool, a, b, src []T) {
	n := min(len(a), len(b), len(src)/2)
	lanes := v128.Lanes16[T]()

	blocks := n / lanes
	pool.ParallelFor(blocks, func(start, end int) {
		lo, hi := start*lanes, end*lanes
		Deinterleave2(a[lo:hi], b[lo:hi], src[2*lo:2*hi])
	})

	for i := blocks * lanes; i < n; i++ {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
}
