// Package stats provides descriptive statistics over ndarray values: sum,
// mean, median, population standard deviation and variance, min, max, and
// linear-interpolation percentiles, each over the whole array or along one
// axis.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"arraylab/ndarray"
	"arraylab/pkg/errors"
)

// Sum returns the sum of all elements.
func Sum(a *ndarray.Array) (float64, error) {
	if err := check(a, "Sum"); err != nil {
		return 0, err
	}
	return floats.Sum(a.Flat()), nil
}

// Mean returns the arithmetic mean of all elements.
func Mean(a *ndarray.Array) (float64, error) {
	if err := check(a, "Mean"); err != nil {
		return 0, err
	}
	return stat.Mean(a.Flat(), nil), nil
}

// Median returns the middle value: the 50th percentile with linear
// interpolation, so even-length data averages the two central elements.
func Median(a *ndarray.Array) (float64, error) {
	if err := check(a, "Median"); err != nil {
		return 0, err
	}
	return percentileOf(a.Flat(), 50), nil
}

// StdDev returns the population standard deviation (divisor N, not N-1).
func StdDev(a *ndarray.Array) (float64, error) {
	if err := check(a, "StdDev"); err != nil {
		return 0, err
	}
	return stat.PopStdDev(a.Flat(), nil), nil
}

// Variance returns the population variance (divisor N, not N-1).
func Variance(a *ndarray.Array) (float64, error) {
	if err := check(a, "Variance"); err != nil {
		return 0, err
	}
	return stat.PopVariance(a.Flat(), nil), nil
}

// Min returns the smallest element.
func Min(a *ndarray.Array) (float64, error) {
	if err := check(a, "Min"); err != nil {
		return 0, err
	}
	return floats.Min(a.Flat()), nil
}

// Max returns the largest element.
func Max(a *ndarray.Array) (float64, error) {
	if err := check(a, "Max"); err != nil {
		return 0, err
	}
	return floats.Max(a.Flat()), nil
}

// Percentile returns the value below which p percent of the elements fall,
// for p in [0, 100]. When the rank p/100*(n-1) falls between two order
// statistics the result is linearly interpolated between them, so P0 is the
// minimum and P100 the maximum.
func Percentile(a *ndarray.Array, p float64) (float64, error) {
	const op = "Percentile"
	if err := check(a, op); err != nil {
		return 0, err
	}
	if err := checkPercent(p, op); err != nil {
		return 0, err
	}
	return percentileOf(a.Flat(), p), nil
}

// SumAxis reduces along the given axis. See ndarray.ReduceAxis for axis
// conventions; the same applies to the other *Axis reductions.
func SumAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "SumAxis", floats.Sum)
}

// MeanAxis reduces along the given axis with the arithmetic mean.
func MeanAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "MeanAxis", func(lane []float64) float64 {
		return stat.Mean(lane, nil)
	})
}

// MedianAxis reduces along the given axis with the median.
func MedianAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "MedianAxis", func(lane []float64) float64 {
		return percentileOf(lane, 50)
	})
}

// StdDevAxis reduces along the given axis with the population standard
// deviation.
func StdDevAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "StdDevAxis", func(lane []float64) float64 {
		return stat.PopStdDev(lane, nil)
	})
}

// VarianceAxis reduces along the given axis with the population variance.
func VarianceAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "VarianceAxis", func(lane []float64) float64 {
		return stat.PopVariance(lane, nil)
	})
}

// MinAxis reduces along the given axis with the minimum.
func MinAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "MinAxis", floats.Min)
}

// MaxAxis reduces along the given axis with the maximum.
func MaxAxis(a *ndarray.Array, axis int) (*ndarray.Array, error) {
	return reduceAxis(a, axis, "MaxAxis", floats.Max)
}

// PercentileAxis reduces along the given axis with the p-th percentile.
func PercentileAxis(a *ndarray.Array, p float64, axis int) (*ndarray.Array, error) {
	const op = "PercentileAxis"
	if err := check(a, op); err != nil {
		return nil, err
	}
	if err := checkPercent(p, op); err != nil {
		return nil, err
	}
	return a.ReduceAxis(axis, func(lane []float64) float64 {
		return percentileOf(lane, p)
	})
}

func reduceAxis(a *ndarray.Array, axis int, op string, reduce func([]float64) float64) (*ndarray.Array, error) {
	if err := check(a, op); err != nil {
		return nil, err
	}
	return a.ReduceAxis(axis, reduce)
}

func check(a *ndarray.Array, op string) error {
	if a == nil {
		return errors.NewNoArrayError(op)
	}
	if a.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}
	return nil
}

func checkPercent(p float64, op string) error {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return errors.NewValueError(op, "percentile must be between 0 and 100")
	}
	return nil
}

// percentileOf sorts a copy of the data and interpolates at rank
// p/100*(n-1).
func percentileOf(data []float64, p float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
