package shell

import (
	"fmt"
	"strconv"
	"strings"

	"arraylab/ndarray"
	"arraylab/pkg/log"
)

func (s *Shell) queryMenu() {
	if _, ok := s.requireArray("search_sort_filter"); !ok {
		return
	}

	for {
		s.printMenuHeader("SEARCH, SORT & FILTER")
		fmt.Fprintln(s.out, "\nChoose an operation:")
		fmt.Fprintln(s.out, "1. Search for Values")
		fmt.Fprintln(s.out, "2. Sort Array")
		fmt.Fprintln(s.out, "3. Filter Array")
		fmt.Fprintln(s.out, "4. Back to Main Menu")

		choice, ok := s.readLine("\nEnter your choice (1-4): ")
		if !ok {
			return
		}
		s.logger.Debug("menu choice", log.MenuKey, "query", log.ChoiceKey, choice)

		switch choice {
		case "1":
			s.searchValues()
			return
		case "2":
			s.sortArray()
			return
		case "3":
			s.filterArray()
			return
		case "4":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) searchValues() {
	const flow = "search"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Searching Array ---")
	s.displayArray("Your Current Array", arr)

	value, err := s.readFloat("Enter value to search for: ")
	if err != nil {
		s.fail(flow, err)
		return
	}

	coords := arr.Search(value)
	if len(coords) == 0 {
		fmt.Fprintf(s.out, "\nValue %s not found in array\n", ndarray.FormatFloat(value))
	} else {
		fmt.Fprintf(s.out, "\nValue %s found at positions: %s\n",
			ndarray.FormatFloat(value), formatCoords(coords))
	}
	s.pause()
}

// formatCoords renders match positions: bare indices for rank-1 arrays,
// coordinate tuples otherwise.
func formatCoords(coords [][]int) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		if len(c) == 1 {
			parts[i] = strconv.Itoa(c[0])
			continue
		}
		inner := make([]string, len(c))
		for j, v := range c {
			inner[j] = strconv.Itoa(v)
		}
		parts[i] = "(" + strings.Join(inner, ", ") + ")"
	}
	return strings.Join(parts, ", ")
}

func (s *Shell) sortArray() {
	const flow = "sort"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Sorting Array ---")
	fmt.Fprintln(s.out, "Sorting rearranges elements in ascending order along the last axis.")
	s.displayArray("Original Array", arr)

	sorted, err := arr.SortAxis(-1)
	if err != nil {
		s.fail(flow, err)
		return
	}
	fmt.Fprintf(s.out, "\nSorted Array:\n%s\n", sorted)
	s.pause()
}

func (s *Shell) filterArray() {
	const flow = "filter"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Filtering Array ---")
	fmt.Fprintln(s.out, "Examples of conditions:")
	fmt.Fprintln(s.out, "'>5'   - keep values greater than 5")
	fmt.Fprintln(s.out, "'<=10' - keep values less than or equal to 10")
	fmt.Fprintln(s.out, "'==0'  - keep values equal to 0")
	s.displayArray("Your Current Array", arr)

	line, ok := s.readLine("Enter condition (e.g., '>5', '<=10', '==0'): ")
	if !ok {
		return
	}
	cond, err := ndarray.ParseCondition(line)
	if err != nil {
		s.fail(flow, err)
		return
	}

	matches := arr.Filter(cond)
	fmt.Fprintf(s.out, "\nFiltered Array (%s):\n%s\n", cond, formatValues(matches))
	fmt.Fprintf(s.out, "Found %d elements matching the condition\n", len(matches))
	s.pause()
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = ndarray.FormatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
