package ndarray

import (
	"fmt"

	"arraylab/pkg/errors"
)

// At returns the element at the given coordinates. One index per axis is
// required.
func (a *Array) At(indices ...int) (float64, error) {
	const op = "At"
	if len(indices) != len(a.shape) {
		return 0, errors.NewValueError(op,
			fmt.Sprintf("expected %d indices for shape %s, got %d", len(a.shape), a.ShapeString(), len(indices)))
	}
	offset := 0
	for i, st := range a.strides() {
		if indices[i] < 0 || indices[i] >= a.shape[i] {
			return 0, errors.NewValueError(op,
				fmt.Sprintf("index %d is out of bounds for axis %d with size %d", indices[i], i, a.shape[i]))
		}
		offset += indices[i] * st
	}
	return a.data[offset], nil
}

// Row returns the sub-array at the given index along the first axis: a row
// for rank-2 arrays, a rank-2 layer for rank-3 arrays.
func (a *Array) Row(i int) (*Array, error) {
	const op = "Row"
	if len(a.shape) < 2 {
		return nil, errors.NewValueError(op, "rank-1 arrays have no rows; use At")
	}
	if i < 0 || i >= a.shape[0] {
		return nil, errors.NewValueError(op,
			fmt.Sprintf("row %d is out of bounds for %d rows", i, a.shape[0]))
	}
	sub := prod(a.shape[1:])
	return fromData(a.shape[1:], a.data[i*sub:(i+1)*sub]), nil
}

// SliceRows returns the half-open range [lo, hi) along the first axis.
// Out-of-range bounds are clamped rather than rejected.
func (a *Array) SliceRows(lo, hi int) *Array {
	n := a.shape[0]
	lo, hi = clampRange(lo, hi, n)
	sub := prod(a.shape[1:])
	shape := cloneShape(a.shape)
	shape[0] = hi - lo
	return fromData(shape, a.data[lo*sub:hi*sub])
}

// Slice returns the rectangular sub-array rows [rowLo, rowHi) by columns
// [colLo, colHi) of a rank-2 array. Out-of-range bounds are clamped.
func (a *Array) Slice(rowLo, rowHi, colLo, colHi int) (*Array, error) {
	const op = "Slice"
	if len(a.shape) != 2 {
		return nil, errors.NewValueError(op, "column slicing requires a rank-2 array")
	}
	rows, cols := a.shape[0], a.shape[1]
	rowLo, rowHi = clampRange(rowLo, rowHi, rows)
	colLo, colHi = clampRange(colLo, colHi, cols)

	out := make([]float64, 0, (rowHi-rowLo)*(colHi-colLo))
	for r := rowLo; r < rowHi; r++ {
		out = append(out, a.data[r*cols+colLo:r*cols+colHi]...)
	}
	return fromData([]int{rowHi - rowLo, colHi - colLo}, out), nil
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi < lo {
		hi = lo
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
