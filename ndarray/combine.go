package ndarray

import (
	"fmt"

	"arraylab/pkg/errors"
)

// Concatenate joins a and b along the given axis. Both operands must have the
// same rank, and every dimension except the join axis must match.
func Concatenate(a, b *Array, axis int) (*Array, error) {
	const op = "Concatenate"
	if a.Rank() != b.Rank() {
		return nil, errors.NewShapeMismatchError(op, a.shape, b.shape)
	}
	if axis < 0 || axis >= a.Rank() {
		return nil, errors.NewAxisError(op, axis,
			fmt.Sprintf("axis is out of bounds for rank %d", a.Rank()))
	}
	for d := range a.shape {
		if d != axis && a.shape[d] != b.shape[d] {
			return nil, errors.NewAxisError(op, axis,
				fmt.Sprintf("all dimensions except the join axis must match: %s vs %s",
					a.ShapeString(), b.ShapeString()))
		}
	}

	// Row-major merge: for each prefix of the join axis, a's block is
	// followed by b's block.
	outer := prod(a.shape[:axis])
	aBlock := prod(a.shape[axis:])
	bBlock := prod(b.shape[axis:])

	out := make([]float64, 0, len(a.data)+len(b.data))
	for o := 0; o < outer; o++ {
		out = append(out, a.data[o*aBlock:(o+1)*aBlock]...)
		out = append(out, b.data[o*bBlock:(o+1)*bBlock]...)
	}
	shape := cloneShape(a.shape)
	shape[axis] += b.shape[axis]
	return fromData(shape, out), nil
}

// Split divides the array into n parts along the given axis. When the axis
// length is not evenly divisible, the first len%n parts receive one extra
// element, so the sizes are as equal as possible; this never fails.
func Split(a *Array, n, axis int) ([]*Array, error) {
	const op = "Split"
	if n < 1 {
		return nil, errors.NewValueError(op, "number of sections must be at least 1")
	}
	if axis < 0 || axis >= a.Rank() {
		return nil, errors.NewAxisError(op, axis,
			fmt.Sprintf("axis is out of bounds for rank %d", a.Rank()))
	}

	length := a.shape[axis]
	base, rem := length/n, length%n
	outer := prod(a.shape[:axis])
	inner := prod(a.shape[axis+1:])

	parts := make([]*Array, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		data := make([]float64, 0, outer*size*inner)
		for o := 0; o < outer; o++ {
			start := o*length*inner + offset*inner
			data = append(data, a.data[start:start+size*inner]...)
		}
		shape := cloneShape(a.shape)
		shape[axis] = size
		parts = append(parts, fromData(shape, data))
		offset += size
	}
	return parts, nil
}
