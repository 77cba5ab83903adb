package shell

import (
	"fmt"

	"arraylab/ndarray"
	"arraylab/pkg/errors"
	"arraylab/pkg/log"
)

func (s *Shell) mathMenu() {
	if _, ok := s.requireArray("math"); !ok {
		return
	}

	for {
		s.printMenuHeader("MATHEMATICAL OPERATIONS")
		fmt.Fprintln(s.out, "\nChoose an operation:")
		fmt.Fprintln(s.out, "1. Addition")
		fmt.Fprintln(s.out, "2. Subtraction")
		fmt.Fprintln(s.out, "3. Multiplication")
		fmt.Fprintln(s.out, "4. Division")
		fmt.Fprintln(s.out, "5. Dot Product (Matrix Multiplication)")
		fmt.Fprintln(s.out, "6. Back to Main Menu")

		choice, ok := s.readLine("\nEnter your choice (1-6): ")
		if !ok {
			return
		}
		s.logger.Debug("menu choice", log.MenuKey, "math", log.ChoiceKey, choice)

		switch choice {
		case "1":
			s.elementwise(ndarray.OpAdd)
			return
		case "2":
			s.elementwise(ndarray.OpSubtract)
			return
		case "3":
			s.elementwise(ndarray.OpMultiply)
			return
		case "4":
			s.elementwise(ndarray.OpDivide)
			return
		case "5":
			s.dotProduct()
			return
		case "6":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func opTitle(op ndarray.Op) string {
	switch op {
	case ndarray.OpAdd:
		return "Addition"
	case ndarray.OpSubtract:
		return "Subtraction"
	case ndarray.OpMultiply:
		return "Multiplication"
	case ndarray.OpDivide:
		return "Division"
	default:
		return "Unknown"
	}
}

func (s *Shell) elementwise(op ndarray.Op) {
	flow := "elementwise_" + op.String()
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintf(s.out, "\n--- %s Operation ---\n", opTitle(op))
	fmt.Fprintln(s.out, "Element-wise means the operation applies to each corresponding element.")
	fmt.Fprintln(s.out, "Example: [1 2 3] add [4 5 6] = [5 7 9]")
	s.displayArray("Your Current Array", arr)

	elems, err := s.readElements("\nEnter numbers for the second array (same size): ")
	if err != nil {
		s.fail(flow, err)
		return
	}
	second, err := ndarray.New(arr.Shape(), elems)
	if err != nil {
		s.fail(flow, err)
		return
	}
	result, err := arr.Apply(op, second)
	if err != nil {
		s.fail(flow, err)
		return
	}

	fmt.Fprintf(s.out, "\nSecond Array:\n%s\n", second)
	fmt.Fprintf(s.out, "\nResult of %s:\n%s\n", opTitle(op), result)
	s.pause()
}

func (s *Shell) dotProduct() {
	const flow = "dot_product"
	arr, ok := s.requireArray(flow)
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "\n--- Dot Product / Matrix Multiplication ---")
	fmt.Fprintln(s.out, "Different from element-wise operations!")
	fmt.Fprintln(s.out, "For matrices, the column count of the first must equal the row count of the second.")
	s.displayArray("Your Current Array", arr)

	switch arr.Rank() {
	case 1:
		elems, err := s.readElements("Enter numbers for the second array (same size): ")
		if err != nil {
			s.fail(flow, err)
			return
		}
		second, err := ndarray.New1D(elems)
		if err != nil {
			s.fail(flow, err)
			return
		}
		result, err := ndarray.Dot(arr, second)
		if err != nil {
			s.fail(flow, err)
			return
		}
		fmt.Fprintf(s.out, "\nSecond Array: %s\n", second)
		fmt.Fprintf(s.out, "\nDot Product Result: %s\n", ndarray.FormatFloat(result))

	case 2:
		cols := arr.Shape()[1]
		rows2, err := s.readInt(fmt.Sprintf("Enter rows for the second matrix (must match current columns %d): ", cols))
		if err != nil {
			s.fail(flow, err)
			return
		}
		cols2, err := s.readInt("Enter columns for the second matrix: ")
		if err != nil {
			s.fail(flow, err)
			return
		}
		elems, err := s.readElements(fmt.Sprintf("Enter %d numbers: ", rows2*cols2))
		if err != nil {
			s.fail(flow, err)
			return
		}
		second, err := ndarray.New2D(rows2, cols2, elems)
		if err != nil {
			s.fail(flow, err)
			return
		}
		result, err := ndarray.MatMul(arr, second)
		if err != nil {
			s.fail(flow, err)
			return
		}
		fmt.Fprintf(s.out, "\nSecond Array:\n%s\n", second)
		fmt.Fprintf(s.out, "\nMatrix Multiplication Result:\n%s\n", result)

	default:
		s.fail(flow, errors.NewValueError(flow, "dot product supports rank-1 and rank-2 arrays"))
		return
	}
	s.pause()
}
