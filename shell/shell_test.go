package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession feeds a scripted sequence of input lines to a fresh shell and
// returns everything it printed. Blank lines answer the "Press Enter to
// continue" pauses.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, sh.Run())
	return out.String()
}

func TestRunExitsOnChoice(t *testing.T) {
	out := runSession(t, "6")
	assert.Contains(t, out, "A R R A Y L A B")
	assert.Contains(t, out, "Thank you for using arraylab!")
}

func TestRunExitsOnEOF(t *testing.T) {
	var out bytes.Buffer
	sh := New(strings.NewReader(""), &out)
	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Thank you for using arraylab!")
}

func TestInvalidMainChoiceReprompts(t *testing.T) {
	out := runSession(t,
		"9", // invalid
		"",  // pause
		"6", // exit
	)
	assert.Contains(t, out, "Invalid choice. Please enter a number between 1-6.")
	assert.Contains(t, out, "Thank you for using arraylab!")
}

func TestCreate1D(t *testing.T) {
	out := runSession(t,
		"1",         // create menu
		"1",         // 1D
		"1 2 3 4 5", // elements
		"",          // pause
		"6",
	)
	assert.Contains(t, out, "Your 1D Array")
	assert.Contains(t, out, "[1 2 3 4 5]")
	assert.Contains(t, out, "Shape: (5,), Data Type: float64")
}

func TestCreate2D(t *testing.T) {
	out := runSession(t,
		"1", "2",
		"2", // rows
		"3", // cols
		"10 20 30 40 50 60",
		"",
		"6",
	)
	assert.Contains(t, out, "Your 2D Array")
	assert.Contains(t, out, "[[10 20 30]\n [40 50 60]]")
	assert.Contains(t, out, "Shape: (2, 3)")
}

func TestCreate2DCountMismatch(t *testing.T) {
	out := runSession(t,
		"1", "2",
		"2", "3",
		"1 2 3 4 5", // five elements for a 2x3
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "expected 6 elements")
	// A failed create must not leave an array behind.
	assert.NotContains(t, out, "Your 2D Array")
}

func TestCreate3D(t *testing.T) {
	out := runSession(t,
		"1", "3",
		"2", "2", "3",
		"1 2 3 4 5 6 7 8 9 10 11 12",
		"",
		"6",
	)
	assert.Contains(t, out, "Your 3D Array")
	assert.Contains(t, out, "Shape: (2, 2, 3)")
}

func TestArrayRequiredGuidance(t *testing.T) {
	out := runSession(t,
		"2", // math without an array
		"",  // pause after guidance
		"6",
	)
	assert.Contains(t, out, "Please create an array first (option 1 in the main menu).")
}

func TestElementwiseAdd(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3", "", // create [1 2 3]
		"2", "1", // math, addition
		"4 5 6",
		"",
		"6",
	)
	assert.Contains(t, out, "Result of Addition:\n[5 7 9]")
}

func TestElementwiseShapeMismatch(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3", "",
		"2", "1",
		"4 5", // wrong size for the held shape
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.NotContains(t, out, "Result of Addition")
}

func TestDotProductVectors(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3", "",
		"2", "5",
		"4 5 6",
		"",
		"6",
	)
	assert.Contains(t, out, "Dot Product Result: 32")
}

func TestMatrixMultiplication(t *testing.T) {
	out := runSession(t,
		"1", "2", "2", "3", "1 2 3 4 5 6", "", // 2x3
		"2", "5",
		"3", "2", // second matrix dims
		"7 8 9 10 11 12",
		"",
		"6",
	)
	assert.Contains(t, out, "Matrix Multiplication Result:\n[[58 64]\n [139 154]]")
}

func TestMatrixMultiplicationInnerMismatch(t *testing.T) {
	out := runSession(t,
		"1", "2", "2", "3", "1 2 3 4 5 6", "",
		"2", "5",
		"2", "2",
		"1 2 3 4",
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "inner dimensions disagree")
}

func TestCombineVertical(t *testing.T) {
	out := runSession(t,
		"1", "2", "2", "2", "1 2 3 4", "", // 2x2
		"3", "1", // combine menu, concatenate
		"0",       // vertical
		"5 6 7 8", // reshaped to 2x2
		"",
		"6",
	)
	assert.Contains(t, out, "Combined Result:\n[[1 2]\n [3 4]\n [5 6]\n [7 8]]")
}

func TestSplitUneven(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3 4 5 6 7", "",
		"3", "2", // combine menu, split
		"3",
		"",
		"6",
	)
	assert.Contains(t, out, "Split into 3 parts:")
	assert.Contains(t, out, "Part 1:\n[1 2 3]")
	assert.Contains(t, out, "Part 2:\n[4 5]")
	assert.Contains(t, out, "Part 3:\n[6 7]")
}

func TestSearchFoundAndMissing(t *testing.T) {
	out := runSession(t,
		"1", "1", "7 1 7", "",
		"4", "1", // query menu, search
		"7",
		"",
		"4", "1",
		"42",
		"",
		"6",
	)
	assert.Contains(t, out, "Value 7 found at positions: 0, 2")
	assert.Contains(t, out, "Value 42 not found in array")
}

func TestSearch2DCoordinates(t *testing.T) {
	out := runSession(t,
		"1", "2", "2", "2", "9 1 2 9", "",
		"4", "1",
		"9",
		"",
		"6",
	)
	assert.Contains(t, out, "Value 9 found at positions: (0, 0), (1, 1)")
}

func TestSortArray(t *testing.T) {
	out := runSession(t,
		"1", "1", "3 1 4 1 5", "",
		"4", "2",
		"",
		"6",
	)
	assert.Contains(t, out, "Sorted Array:\n[1 1 3 4 5]")
	// The held array is not mutated by sorting.
	assert.Contains(t, out, "Original Array:\n[3 1 4 1 5]")
}

func TestFilter(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 6 3 9 2", "",
		"4", "3",
		">5",
		"",
		"6",
	)
	assert.Contains(t, out, "Filtered Array (>5):\n[6 9]")
	assert.Contains(t, out, "Found 2 elements matching the condition")
}

func TestFilterBadCondition(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3", "",
		"4", "3",
		"bad",
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "invalid condition")
}

func TestStatistics(t *testing.T) {
	out := runSession(t,
		"1", "1", "2 4 4 4 6", "",
		"5", "1", "", // sum
		"5", "2", "", // mean
		"5", "6", "", // min
		"5", "7", "", // max
		"6",
	)
	assert.Contains(t, out, "Sum: 20")
	assert.Contains(t, out, "Mean: 4")
	assert.Contains(t, out, "Minimum: 2")
	assert.Contains(t, out, "Maximum: 6")
}

func TestPercentileFlow(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3 4", "",
		"5", "8",
		"50",
		"",
		"6",
	)
	assert.Contains(t, out, "50th Percentile: 2.5")
}

func TestPercentileOutOfRange(t *testing.T) {
	out := runSession(t,
		"1", "1", "1 2 3", "",
		"5", "8",
		"150",
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "between 0 and 100")
}

func TestInvalidSubMenuChoiceReprompts(t *testing.T) {
	out := runSession(t,
		"1",  // create menu
		"99", // invalid, menu loops
		"4",  // back
		"6",
	)
	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Thank you for using arraylab!")
}

func TestNonNumericDimension(t *testing.T) {
	out := runSession(t,
		"1", "2",
		"two", // rows
		"",
		"6",
	)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "numbers only")
}
