// Package ndarray implements the numeric array model behind arraylab: a
// rank-1 to rank-3 rectangular float64 array with a flat row-major buffer.
// Operations never mutate their receiver; they return fresh arrays.
package ndarray

import (
	"strconv"
	"strings"

	"arraylab/pkg/errors"
)

// Array is a rectangular n-dimensional array of float64 values.
// Invariant: len(data) == product of shape.
type Array struct {
	data  []float64
	shape []int
}

// New builds an array of the given shape from a flat row-major element slice.
// The shape must have rank 1 to 3 with positive dimensions, and the element
// count must equal the product of the dimensions.
func New(shape []int, elems []float64) (*Array, error) {
	const op = "New"
	if len(shape) < 1 || len(shape) > 3 {
		return nil, errors.NewValueError(op, "rank must be 1, 2 or 3")
	}
	for _, d := range shape {
		if d < 1 {
			return nil, errors.NewValueError(op, "dimensions must be positive")
		}
	}
	want := prod(shape)
	if len(elems) != want {
		return nil, errors.NewElementCountError(op, shape, want, len(elems))
	}
	return fromData(shape, elems), nil
}

// New1D builds a rank-1 array; its shape is the element count.
func New1D(elems []float64) (*Array, error) {
	if len(elems) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "New1D")
	}
	return New([]int{len(elems)}, elems)
}

// New2D builds a rows x cols array from a flat element slice.
func New2D(rows, cols int, elems []float64) (*Array, error) {
	return New([]int{rows, cols}, elems)
}

// New3D builds a depth x rows x cols array from a flat element slice.
func New3D(depth, rows, cols int, elems []float64) (*Array, error) {
	return New([]int{depth, rows, cols}, elems)
}

// fromData wraps a shape and buffer without validation. The caller guarantees
// the invariant; zero-length dimensions are allowed here so that slicing and
// splitting can produce empty results the way the operations define them.
func fromData(shape []int, elems []float64) *Array {
	data := make([]float64, len(elems))
	copy(data, elems)
	return &Array{data: data, shape: cloneShape(shape)}
}

// ParseElements parses a whitespace-separated list of numbers.
func ParseElements(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ParseElements")
	}
	elems := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.NewNumericInputError(s, err)
		}
		elems[i] = v
	}
	return elems, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int {
	return cloneShape(a.shape)
}

// Len returns the total element count.
func (a *Array) Len() int {
	return len(a.data)
}

// Flat returns a copy of the elements in row-major order.
func (a *Array) Flat() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// DType names the element type. All arraylab arrays hold float64.
func (a *Array) DType() string {
	return "float64"
}

// ShapeString renders the shape tuple, e.g. "(2, 3)".
func (a *Array) ShapeString() string {
	return errors.FormatShape(a.shape)
}

// SameShape reports whether both arrays have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	return true
}

// String renders the array in nested-bracket form, one row per line and a
// blank line between rank-3 blocks.
func (a *Array) String() string {
	return formatRec(a.data, a.shape, " ")
}

func formatRec(data []float64, shape []int, indent string) string {
	if len(shape) == 1 {
		parts := make([]string, len(data))
		for i, v := range data {
			parts[i] = FormatFloat(v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	sub := prod(shape[1:])
	parts := make([]string, shape[0])
	for i := 0; i < shape[0]; i++ {
		parts[i] = formatRec(data[i*sub:(i+1)*sub], shape[1:], indent+" ")
	}
	sep := strings.Repeat("\n", len(shape)-1) + indent
	return "[" + strings.Join(parts, sep) + "]"
}

// FormatFloat renders a value the way the interactive output does: shortest
// representation that round-trips, no trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func prod(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}

// strides returns the row-major stride of each axis.
func (a *Array) strides() []int {
	st := make([]int, len(a.shape))
	acc := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= a.shape[i]
	}
	return st
}

// unravel converts a flat row-major offset to per-axis coordinates.
func (a *Array) unravel(offset int) []int {
	coords := make([]int, len(a.shape))
	for i, st := range a.strides() {
		coords[i] = offset / st
		offset %= st
	}
	return coords
}
