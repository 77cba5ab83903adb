package ndarray

import "arraylab/pkg/errors"

// Holder owns at most one array at a time. The zero value holds nothing.
type Holder struct {
	arr *Array
}

// Set stores a new array, replacing any previous one. Only a well-formed
// array may be stored; nil is rejected and the holder is left unchanged.
func (h *Holder) Set(a *Array) error {
	if a == nil {
		return errors.NewValueError("Holder.Set", "value must be a numeric array")
	}
	h.arr = a
	return nil
}

// Get returns the held array, or a NoArrayError naming the operation that
// needed it.
func (h *Holder) Get(op string) (*Array, error) {
	if h.arr == nil {
		return nil, errors.NewNoArrayError(op)
	}
	return h.arr, nil
}

// Has reports whether an array is currently held.
func (h *Holder) Has() bool {
	return h.arr != nil
}

// Clear drops the held array.
func (h *Holder) Clear() {
	h.arr = nil
}
