// Package errors provides the structured error types used across arraylab.
// Every constructor attaches a stack trace via cockroachdb/errors, and each
// type implements zerolog.LogObjectMarshaler so errors can be emitted as
// structured log fields.
package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// FormatShape renders a shape tuple the way the interactive output does,
// e.g. (2, 3) for a two-row, three-column array.
func FormatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NoArrayError is returned when an operation requires a held array but the
// session has not created one yet.
type NoArrayError struct {
	Op string
}

func (e *NoArrayError) Error() string {
	return fmt.Sprintf("arraylab: %s: no array created yet", e.Op)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NoArrayError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "NoArrayError")
}

// NewNoArrayError creates a NoArrayError with a stack trace attached.
func NewNoArrayError(op string) error {
	err := &NoArrayError{Op: op}
	return errors.WithStack(err)
}

// ElementCountError is returned when a flat element sequence cannot fill the
// requested shape.
type ElementCountError struct {
	Op    string
	Shape []int
	Want  int
	Got   int
}

func (e *ElementCountError) Error() string {
	return fmt.Sprintf("arraylab: %s: expected %d elements for shape %s, got %d",
		e.Op, e.Want, FormatShape(e.Shape), e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ElementCountError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Ints("shape", e.Shape).
		Int("expected", e.Want).
		Int("got", e.Got).
		Str("type", "ElementCountError")
}

// NewElementCountError creates an ElementCountError with a stack trace attached.
func NewElementCountError(op string, shape []int, want, got int) error {
	err := &ElementCountError{Op: op, Shape: shape, Want: want, Got: got}
	return errors.WithStack(err)
}

// ShapeMismatchError is returned when two operands must share a shape and do
// not, e.g. for element-wise arithmetic.
type ShapeMismatchError struct {
	Op   string
	Want []int
	Got  []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("arraylab: %s: shapes don't match: %s vs %s",
		e.Op, FormatShape(e.Want), FormatShape(e.Got))
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Ints("want", e.Want).
		Ints("got", e.Got).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError creates a ShapeMismatchError with a stack trace attached.
func NewShapeMismatchError(op string, want, got []int) error {
	err := &ShapeMismatchError{Op: op, Want: want, Got: got}
	return errors.WithStack(err)
}

// DimensionError is returned when the inner dimensions of a dot product or
// matrix multiplication disagree.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("arraylab: %s: inner dimensions disagree: expected %d, got %d",
		e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// AxisError is returned when an axis argument is out of range for the
// operand's rank, or when the off-axis dimensions of a concatenation differ.
type AxisError struct {
	Op     string
	Axis   int
	Reason string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("arraylab: %s: axis %d: %s", e.Op, e.Axis, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *AxisError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("axis", e.Axis).
		Str("reason", e.Reason).
		Str("type", "AxisError")
}

// NewAxisError creates an AxisError with a stack trace attached.
func NewAxisError(op string, axis int, reason string) error {
	err := &AxisError{Op: op, Axis: axis, Reason: reason}
	return errors.WithStack(err)
}

// UnknownOperationError is returned when an operation name does not map to a
// supported element-wise operation.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("arraylab: unknown operation: %q", e.Name)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *UnknownOperationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("name", e.Name).
		Str("type", "UnknownOperationError")
}

// NewUnknownOperationError creates an UnknownOperationError with a stack trace attached.
func NewUnknownOperationError(name string) error {
	err := &UnknownOperationError{Name: name}
	return errors.WithStack(err)
}

// ConditionError is returned when a filter condition string does not parse.
type ConditionError struct {
	Condition string
	Reason    string
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("arraylab: invalid condition %q: %s. Use '>5', '<=10', '==0', etc.",
		e.Condition, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ConditionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("condition", e.Condition).
		Str("reason", e.Reason).
		Str("type", "ConditionError")
}

// NewConditionError creates a ConditionError with a stack trace attached.
func NewConditionError(condition, reason string) error {
	err := &ConditionError{Condition: condition, Reason: reason}
	return errors.WithStack(err)
}

// NumericInputError is returned when text that should contain numbers does not.
type NumericInputError struct {
	Input string
	Err   error
}

func (e *NumericInputError) Error() string {
	return fmt.Sprintf("arraylab: invalid input %q: please enter numbers only", e.Input)
}

func (e *NumericInputError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NumericInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("input", e.Input).
		Str("type", "NumericInputError")
}

// NewNumericInputError creates a NumericInputError with a stack trace attached.
func NewNumericInputError(input string, err error) error {
	numErr := &NumericInputError{Input: input, Err: err}
	return errors.WithStack(numErr)
}

// ValueError is returned when an argument value is out of range or otherwise
// unusable for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("arraylab: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error values
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no elements.
	ErrEmptyData = New("empty data")
)
