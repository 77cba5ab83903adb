// Package arraylab is an interactive, menu-driven tutorial over an
// n-dimensional numeric array model.
//
// The binary in cmd/arraylab walks a user through array creation, indexing,
// element-wise arithmetic, matrix multiplication, concatenation and
// splitting, search/sort/filter, and descriptive statistics, delegating the
// numeric work to gonum.
//
// # Packages
//
//   - ndarray: the array model — construction, indexing, arithmetic,
//     combining, searching, sorting, filtering
//   - stats: descriptive statistics and percentiles, whole-array or per-axis
//   - shell: the interactive menu tree
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: JSON logging with stack trace extraction
//
// # Quick start
//
//	go run ./cmd/arraylab
//
// Create an array from the first menu, then explore the other menus; every
// operation prints its result and returns to the menu it came from.
package arraylab
