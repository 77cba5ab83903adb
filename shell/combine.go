package shell

import (
	"fmt"

	"arraylab/ndarray"
	"arraylab/pkg/log"
)

func (s *Shell) combineMenu() {
	if _, ok := s.requireArray("combine_split"); !ok {
		return
	}

	for {
		s.printMenuHeader("COMBINE & SPLIT ARRAYS")
		fmt.Fprintln(s.out, "\nChoose an operation:")
		fmt.Fprintln(s.out, "1. Combine (Concatenate) Arrays")
		fmt.Fprintln(s.out, "2. Split Array into Parts")
		fmt.Fprintln(s.out, "3. Back to Main Menu")

		choice, ok := s.readLine("\nEnter your choice (1-3): ")
		if !ok {
			return
		}
		s.logger.Debug("menu choice", log.MenuKey, "combine", log.ChoiceKey, choice)

		switch choice {
		case "1":
			s.combineArrays()
			return
		case "2":
			s.splitArray()
			return
		case "3":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) combineArrays() {
	const flow = "concatenate"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Combining Arrays ---")
	fmt.Fprintln(s.out, "Your current array will be joined with a new one.")
	s.displayArray("Your Current Array", arr)

	axis, err := s.readInt("Combine vertically (0) or horizontally (1)?: ")
	if err != nil {
		s.fail(flow, err)
		return
	}
	elems, err := s.readElements("Enter numbers for the second array: ")
	if err != nil {
		s.fail(flow, err)
		return
	}

	// Prefer the current array's shape for the second operand; fall back to
	// a flat 1D array when the element count does not fit.
	second, err := ndarray.New(arr.Shape(), elems)
	if err != nil {
		second, err = ndarray.New1D(elems)
		if err != nil {
			s.fail(flow, err)
			return
		}
	}

	result, err := ndarray.Concatenate(arr, second, axis)
	if err != nil {
		s.fail(flow, err)
		return
	}
	s.logger.Debug("arrays combined",
		log.OperationKey, flow,
		log.AxisKey, axis,
		log.ShapeKey, result.ShapeString(),
	)

	fmt.Fprintf(s.out, "\nSecond Array:\n%s\n", second)
	fmt.Fprintf(s.out, "\nCombined Result:\n%s\n", result)
	s.pause()
}

func (s *Shell) splitArray() {
	const flow = "split"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Splitting Array ---")
	s.displayArray("Your Current Array", arr)

	n, err := s.readInt("How many parts to split into?: ")
	if err != nil {
		s.fail(flow, err)
		return
	}
	parts, err := ndarray.Split(arr, n, 0)
	if err != nil {
		s.fail(flow, err)
		return
	}

	fmt.Fprintf(s.out, "\nSplit into %d parts:\n", n)
	for i, part := range parts {
		fmt.Fprintf(s.out, "Part %d:\n%s\n\n", i+1, part)
	}
	s.pause()
}
