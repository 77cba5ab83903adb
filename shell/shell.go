// Package shell implements the interactive menu tree of arraylab: a main
// menu dispatching to create, math, combine/split, search/sort/filter and
// statistics sub-menus, all driving a single array session.
//
// Menus re-prompt with an explicit loop on invalid input, every flow catches
// its operation's error and renders it as one line, and control always
// returns to the parent menu afterwards.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"arraylab/ndarray"
	"arraylab/pkg/log"
)

const (
	headerRule = "============================================================"
	menuRule   = "========================================"
)

// Shell drives the menu tree over one array session.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	holder ndarray.Holder
	logger *slog.Logger
}

// New builds a shell reading choices from in and printing to out.
func New(in io.Reader, out io.Writer) *Shell {
	sc := bufio.NewScanner(in)
	// Element lists can be long; the default scanner limit is too small.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Shell{in: sc, out: out, logger: slog.Default()}
}

// Run executes the main menu loop until the user exits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Starting arraylab...")
	fmt.Fprintln(s.out, "An interactive tour of array creation, math and statistics.")

	for {
		s.printMainMenu()
		choice, ok := s.readLine("\nEnter your choice (1-6): ")
		if !ok {
			// EOF behaves like exit.
			s.farewell()
			return nil
		}
		s.logger.Debug("menu choice", log.MenuKey, "main", log.ChoiceKey, choice)

		switch choice {
		case "1":
			s.createMenu()
		case "2":
			s.mathMenu()
		case "3":
			s.combineMenu()
		case "4":
			s.queryMenu()
		case "5":
			s.statsMenu()
		case "6":
			s.farewell()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1-6.")
			s.pause()
		}
	}
}

func (s *Shell) printMainMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, headerRule)
	fmt.Fprintln(s.out, "                    A R R A Y L A B")
	fmt.Fprintln(s.out, headerRule)
	fmt.Fprintln(s.out, "\nWhat would you like to do?")
	fmt.Fprintln(s.out, "1. Create a New Array")
	fmt.Fprintln(s.out, "2. Mathematical Operations")
	fmt.Fprintln(s.out, "3. Combine or Split Arrays")
	fmt.Fprintln(s.out, "4. Search, Sort, or Filter")
	fmt.Fprintln(s.out, "5. Statistics & Analysis")
	fmt.Fprintln(s.out, "6. Exit")
}

func (s *Shell) printMenuHeader(title string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, menuRule)
	fmt.Fprintln(s.out, "          "+title)
	fmt.Fprintln(s.out, menuRule)
}

func (s *Shell) farewell() {
	fmt.Fprintln(s.out, "\nThank you for using arraylab!")
	fmt.Fprintln(s.out, "Keep practicing and happy computing.")
}

// requireArray fetches the held array for a flow, printing guidance and
// returning to the caller's parent menu when none exists.
func (s *Shell) requireArray(op string) (*ndarray.Array, bool) {
	arr, err := s.holder.Get(op)
	if err != nil {
		fmt.Fprintln(s.out, "Please create an array first (option 1 in the main menu).")
		s.logger.Debug("array required", log.OperationKey, op, log.ErrAttr(err))
		s.pause()
		return nil, false
	}
	return arr, true
}

func (s *Shell) displayArray(title string, arr *ndarray.Array) {
	fmt.Fprintf(s.out, "\n%s:\n%s\n", title, arr)
	fmt.Fprintf(s.out, "Shape: %s, Data Type: %s\n", arr.ShapeString(), arr.DType())
}
