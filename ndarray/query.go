package ndarray

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"arraylab/pkg/errors"
)

// Search returns the coordinates of every element equal to value, in
// row-major order. An absent value yields an empty result, not an error.
func (a *Array) Search(value float64) [][]int {
	var coords [][]int
	for i, v := range a.data {
		if v == value {
			coords = append(coords, a.unravel(i))
		}
	}
	return coords
}

// SortAxis returns a new array with elements sorted ascending along the given
// axis. Axis -1 selects the last axis. The receiver is unmodified.
func (a *Array) SortAxis(axis int) (*Array, error) {
	const op = "SortAxis"
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

	out := a.Flat()
	lane := make([]float64, laneLen)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*laneLen*inner + i
			for k := 0; k < laneLen; k++ {
				lane[k] = out[base+k*inner]
			}
			sort.Float64s(lane)
			for k := 0; k < laneLen; k++ {
				out[base+k*inner] = lane[k]
			}
		}
	}
	return fromData(a.shape, out), nil
}

// CompareOp is a comparison operator recognized in filter conditions.
type CompareOp int

const (
	CmpGreaterEqual CompareOp = iota
	CmpLessEqual
	CmpEqual
	CmpNotEqual
	CmpGreater
	CmpLess
)

func (c CompareOp) String() string {
	switch c {
	case CmpGreaterEqual:
		return ">="
	case CmpLessEqual:
		return "<="
	case CmpEqual:
		return "=="
	case CmpNotEqual:
		return "!="
	case CmpGreater:
		return ">"
	case CmpLess:
		return "<"
	default:
		return "?"
	}
}

// Condition is a parsed filter condition: a comparison against a threshold.
type Condition struct {
	Cmp       CompareOp
	Threshold float64
}

func (c Condition) String() string {
	return c.Cmp.String() + FormatFloat(c.Threshold)
}

// Matches reports whether a value satisfies the condition.
func (c Condition) Matches(v float64) bool {
	switch c.Cmp {
	case CmpGreaterEqual:
		return v >= c.Threshold
	case CmpLessEqual:
		return v <= c.Threshold
	case CmpEqual:
		return v == c.Threshold
	case CmpNotEqual:
		return v != c.Threshold
	case CmpGreater:
		return v > c.Threshold
	case CmpLess:
		return v < c.Threshold
	default:
		return false
	}
}

// conditionOps lists the recognized operator prefixes. Two-character
// operators come first so ">=" is not read as ">" followed by "=5".
var conditionOps = []struct {
	prefix string
	cmp    CompareOp
}{
	{">=", CmpGreaterEqual},
	{"<=", CmpLessEqual},
	{"==", CmpEqual},
	{"!=", CmpNotEqual},
	{">", CmpGreater},
	{"<", CmpLess},
}

// ParseCondition parses a condition of the form "<op><number>", e.g. ">5" or
// "<=10".
func ParseCondition(s string) (Condition, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range conditionOps {
		if !strings.HasPrefix(trimmed, c.prefix) {
			continue
		}
		rest := strings.TrimSpace(trimmed[len(c.prefix):])
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Condition{}, errors.NewConditionError(s, "threshold is not a number")
		}
		return Condition{Cmp: c.cmp, Threshold: v}, nil
	}
	return Condition{}, errors.NewConditionError(s, "unrecognized comparison operator")
}

// Filter returns the elements satisfying the condition, preserving row-major
// traversal order.
func (a *Array) Filter(cond Condition) []float64 {
	var out []float64
	for _, v := range a.data {
		if cond.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
