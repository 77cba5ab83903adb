package shell

import (
	"fmt"

	"arraylab/ndarray"
	"arraylab/pkg/log"
)

func (s *Shell) createMenu() {
	for {
		s.printMenuHeader("ARRAY CREATION")
		fmt.Fprintln(s.out, "\nWhat type of array would you like to create?")
		fmt.Fprintln(s.out, "1. 1D Array (like a simple list)")
		fmt.Fprintln(s.out, "2. 2D Array (like a table or spreadsheet)")
		fmt.Fprintln(s.out, "3. 3D Array (like a stack of tables)")
		fmt.Fprintln(s.out, "4. Back to Main Menu")

		choice, ok := s.readLine("\nEnter your choice (1-4): ")
		if !ok {
			return
		}
		s.logger.Debug("menu choice", log.MenuKey, "create", log.ChoiceKey, choice)

		switch choice {
		case "1":
			s.create1D()
			return
		case "2":
			s.create2D()
			return
		case "3":
			s.create3D()
			return
		case "4":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) create1D() {
	const op = "create_1d"
	fmt.Fprintln(s.out, "\n--- Creating 1D Array ---")
	fmt.Fprintln(s.out, "Example: enter '1 2 3 4 5' for the array [1 2 3 4 5]")

	elems, err := s.readElements("Enter numbers separated by spaces: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	arr, err := ndarray.New1D(elems)
	if err != nil {
		s.fail(op, err)
		return
	}
	s.store(op, arr, "Your 1D Array")
}

func (s *Shell) create2D() {
	const op = "create_2d"
	fmt.Fprintln(s.out, "\n--- Creating 2D Array ---")
	fmt.Fprintln(s.out, "Example: 2 rows, 3 columns, elements '10 20 30 40 50 60'")
	fmt.Fprintln(s.out, "creates [[10 20 30], [40 50 60]]")

	rows, err := s.readInt("Enter number of rows: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	cols, err := s.readInt("Enter number of columns: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	elems, err := s.readElements(fmt.Sprintf("Enter %d numbers separated by spaces: ", rows*cols))
	if err != nil {
		s.fail(op, err)
		return
	}
	arr, err := ndarray.New2D(rows, cols, elems)
	if err != nil {
		s.fail(op, err)
		return
	}
	s.store(op, arr, "Your 2D Array")
}

func (s *Shell) create3D() {
	const op = "create_3d"
	fmt.Fprintln(s.out, "\n--- Creating 3D Array ---")
	fmt.Fprintln(s.out, "Example: 2 layers, 2 rows, 3 columns,")
	fmt.Fprintln(s.out, "elements '1 2 3 4 5 6 7 8 9 10 11 12'")

	depth, err := s.readInt("Enter number of layers: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	rows, err := s.readInt("Enter number of rows per layer: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	cols, err := s.readInt("Enter number of columns per layer: ")
	if err != nil {
		s.fail(op, err)
		return
	}
	elems, err := s.readElements(fmt.Sprintf("Enter %d numbers separated by spaces: ", depth*rows*cols))
	if err != nil {
		s.fail(op, err)
		return
	}
	arr, err := ndarray.New3D(depth, rows, cols, elems)
	if err != nil {
		s.fail(op, err)
		return
	}
	s.store(op, arr, "Your 3D Array")
}

// store replaces the session array and shows it. The holder is untouched on
// any earlier failure, so a bad create keeps the previous array.
func (s *Shell) store(op string, arr *ndarray.Array, title string) {
	if err := s.holder.Set(arr); err != nil {
		s.fail(op, err)
		return
	}
	s.logger.Debug("array created",
		log.OperationKey, op,
		log.ShapeKey, arr.ShapeString(),
		log.ElementsKey, arr.Len(),
	)
	s.displayArray(title, arr)
	s.pause()
}
