package ndarray

import (
	"fmt"

	"arraylab/pkg/errors"
)

// ReduceAxis collapses the given axis by applying reduce to each lane along
// it, returning an array of reduced rank. Axis -1 selects the last axis.
// Rank-1 arrays reduce to a scalar and must use the full-array reductions in
// the stats package instead.
func (a *Array) ReduceAxis(axis int, reduce func(lane []float64) float64) (*Array, error) {
	const op = "ReduceAxis"
	if a.Rank() == 1 {
		return nil, errors.NewValueError(op, "rank-1 arrays reduce to a scalar; use the full-array form")
	}
	if axis == -1 {
		axis = a.Rank() - 1
	}
	if axis < 0 || axis >= a.Rank() {
		return nil, errors.NewAxisError(op, axis,
			fmt.Sprintf("axis is out of bounds for rank %d", a.Rank()))
	}

	laneLen := a.shape[axis]
	outer := prod(a.shape[:axis])
	inner := prod(a.shape[axis+1:])

	out := make([]float64, outer*inner)
	lane := make([]float64, laneLen)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*laneLen*inner + i
			for k := 0; k < laneLen; k++ {
				lane[k] = a.data[base+k*inner]
			}
			out[o*inner+i] = reduce(lane)
		}
	}

	shape := make([]int, 0, a.Rank()-1)
	for d, size := range a.shape {
		if d != axis {
			shape = append(shape, size)
		}
	}
	return fromData(shape, out), nil
}
