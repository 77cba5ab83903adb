package ndarray

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"arraylab/pkg/errors"
)

// Op is an element-wise arithmetic operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// ParseOp maps an operation name to its Op. Unrecognized names return an
// UnknownOperationError.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add":
		return OpAdd, nil
	case "subtract":
		return OpSubtract, nil
	case "multiply":
		return OpMultiply, nil
	case "divide":
		return OpDivide, nil
	default:
		return 0, errors.NewUnknownOperationError(name)
	}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Apply performs the element-wise operation between a and b, which must have
// identical shapes. Division follows IEEE semantics, so a zero divisor yields
// an infinity rather than an error.
func (a *Array) Apply(op Op, b *Array) (*Array, error) {
	if !a.SameShape(b) {
		return nil, errors.NewShapeMismatchError(op.String(), a.shape, b.shape)
	}
	dst := make([]float64, len(a.data))
	switch op {
	case OpAdd:
		floats.AddTo(dst, a.data, b.data)
	case OpSubtract:
		floats.SubTo(dst, a.data, b.data)
	case OpMultiply:
		floats.MulTo(dst, a.data, b.data)
	case OpDivide:
		floats.DivTo(dst, a.data, b.data)
	default:
		return nil, errors.NewUnknownOperationError(op.String())
	}
	return &Array{data: dst, shape: cloneShape(a.shape)}, nil
}

// Dot computes the scalar product of two rank-1 arrays.
func Dot(a, b *Array) (float64, error) {
	const op = "Dot"
	if a.Rank() != 1 || b.Rank() != 1 {
		return 0, errors.NewValueError(op, "both operands must be rank-1 arrays")
	}
	if a.Len() != b.Len() {
		return 0, errors.NewDimensionError(op, a.Len(), b.Len())
	}
	return floats.Dot(a.data, b.data), nil
}

// MatMul multiplies a rank-2 array by a rank-2 operand (matrix product) or a
// rank-1 operand (matrix-vector product). The column count of a must equal
// the leading dimension of b.
func MatMul(a, b *Array) (*Array, error) {
	const op = "MatMul"
	if a.Rank() != 2 {
		return nil, errors.NewValueError(op, "left operand must be a rank-2 array")
	}
	rows, cols := a.shape[0], a.shape[1]
	left := mat.NewDense(rows, cols, a.Flat())

	switch b.Rank() {
	case 1:
		if b.Len() != cols {
			return nil, errors.NewDimensionError(op, cols, b.Len())
		}
		right := mat.NewDense(b.Len(), 1, b.Flat())
		var out mat.Dense
		out.Mul(left, right)
		result := make([]float64, rows)
		for i := 0; i < rows; i++ {
			result[i] = out.At(i, 0)
		}
		return fromData([]int{rows}, result), nil
	case 2:
		if b.shape[0] != cols {
			return nil, errors.NewDimensionError(op, cols, b.shape[0])
		}
		right := mat.NewDense(b.shape[0], b.shape[1], b.Flat())
		var out mat.Dense
		out.Mul(left, right)
		result := make([]float64, rows*b.shape[1])
		for i := 0; i < rows; i++ {
			for j := 0; j < b.shape[1]; j++ {
				result[i*b.shape[1]+j] = out.At(i, j)
			}
		}
		return fromData([]int{rows, b.shape[1]}, result), nil
	default:
		return nil, errors.NewValueError(op, "right operand must be a rank-1 or rank-2 array")
	}
}
