package algo

import (
	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/ajroetker/go-simdarray/hwy/contrib/workerpool"
	"github.com/ajroetker/go-simdarray/hwy/simdarray"
)

// Transform loads input block by block, runs fn on each block in place and
// stores the result to output. It processes min(len(input), len(output))
// elements.
func Transform[S simdarray.Segments[V], V simdarray.Native[V, T], T hwy.Lanes](
	pool *workerpool.Pool, input, output []T, fn func(v *simdarray.Vector[V, T, S]),
) {
	n := min(len(input), len(output))
	var probe simdarray.Vector[V, T, S]
	lanes := probe.Lanes()

	block := func(offset int) {
		var v simdarray.Vector[V, T, S]
		v.Load(input[offset:], hwy.Unaligned)
		fn(&v)
		v.Store(output[offset:], hwy.Unaligned)
	}
	tail := func(offset, count int) {
		buf := padded(input[offset:offset+count], lanes)
		var v simdarray.Vector[V, T, S]
		v.Load(buf, hwy.Unaligned)
		fn(&v)
		v.Store(buf, hwy.Unaligned)
		copy(output[offset:offset+count], buf)
	}

	if pool.NumWorkers() == 1 {
		hwy.ProcessWithTail(n, lanes, block, tail)
		return
	}

	pool.ParallelFor(n/lanes, func(_, start, end int) {
		for b := start; b < end; b++ {
			block(b * lanes)
		}
	})
	if rem := n % lanes; rem > 0 {
		tail(n-rem, rem)
	}
}

// padded copies src into a new block of lanes elements, repeating the last
// element of src into the unused lanes.
func padded[T hwy.Lanes](src []T, lanes int) []T {
	buf := make([]T, lanes)
	copy(buf, src)
	for i := len(src); i < lanes; i++ {
		buf[i] = src[len(src)-1]
	}
	return buf
}
