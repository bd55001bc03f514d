package algo

import (
	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/ajroetker/go-simdarray/hwy/contrib/workerpool"
	"github.com/ajroetker/go-simdarray/hwy/simdarray"
)

// Sum returns the sum of input. Each chunk accumulates whole blocks into a
// composite vector and reduces it once; chunk results and the tail are then
// added in order. Floating-point results may differ from a sequential loop
// in the last bits because the additions are reassociated.
func Sum[S simdarray.Segments[V], V simdarray.Native[V, T], T hwy.Lanes](pool *workerpool.Pool, input []T) T {
	var probe simdarray.Vector[V, T, S]
	lanes := probe.Lanes()
	blocks := len(input) / lanes

	partials := make([]T, pool.Chunks(blocks))
	pool.ParallelFor(blocks, func(chunk, start, end int) {
		var acc, v simdarray.Vector[V, T, S]
		for b := start; b < end; b++ {
			v.Load(input[b*lanes:], hwy.Unaligned)
			acc.AddAssign(v)
		}
		partials[chunk] = acc.Sum()
	})

	var total T
	for _, p := range partials {
		total += p
	}
	for _, x := range input[blocks*lanes:] {
		total += x
	}
	return total
}

// CountCompare returns how many elements e of input satisfy cmp(e, x), where
// cmp is a native comparison such as wide.Vec8[int32].Greater. Blocks are
// compared against a broadcast of x into a mask chain of matching depth.
func CountCompare[S simdarray.Segments[V], MS simdarray.Segments[M], V simdarray.Native[V, T], T hwy.Lanes, M simdarray.NativeMask[M]](
	pool *workerpool.Pool, input []T, x T, cmp func(a, b V) M,
) int {
	var probe simdarray.Vector[V, T, S]
	lanes := probe.Lanes()
	blocks := len(input) / lanes
	rhs := simdarray.Broadcast[V, T, S](x)

	counts := make([]int, pool.Chunks(blocks))
	pool.ParallelFor(blocks, func(chunk, start, end int) {
		var v simdarray.Vector[V, T, S]
		var m simdarray.Mask[M, MS]
		n := 0
		for b := start; b < end; b++ {
			v.Load(input[b*lanes:], hwy.Unaligned)
			simdarray.Assign(&m, v, rhs, cmp)
			n += m.CountTrue()
		}
		counts[chunk] = n
	})

	total := 0
	for _, c := range counts {
		total += c
	}

	tail := input[blocks*lanes:]
	if len(tail) > 0 {
		var v simdarray.Vector[V, T, S]
		var m simdarray.Mask[M, MS]
		v.Load(padded(tail, lanes), hwy.Unaligned)
		simdarray.Assign(&m, v, rhs, cmp)
		for i := range tail {
			if m.Lane(i) {
				total++
			}
		}
	}
	return total
}
