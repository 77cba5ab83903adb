package shell

import (
	"fmt"

	"arraylab/ndarray"
	"arraylab/pkg/log"
	"arraylab/stats"
)

func (s *Shell) statsMenu() {
	arr, ok := s.requireArray("statistics")
	if !ok {
		return
	}

	for {
		s.printMenuHeader("STATISTICS & ANALYSIS")
		fmt.Fprintln(s.out, "\nChoose a statistical operation:")
		fmt.Fprintln(s.out, "1. Sum")
		fmt.Fprintln(s.out, "2. Mean (Average)")
		fmt.Fprintln(s.out, "3. Median (Middle Value)")
		fmt.Fprintln(s.out, "4. Standard Deviation")
		fmt.Fprintln(s.out, "5. Variance")
		fmt.Fprintln(s.out, "6. Minimum Value")
		fmt.Fprintln(s.out, "7. Maximum Value")
		fmt.Fprintln(s.out, "8. Percentile")
		fmt.Fprintln(s.out, "9. Back to Main Menu")

		choice, ok := s.readLine("\nEnter your choice (1-9): ")
		if !ok {
			return
		}
		s.logger.Debug("menu choice", log.MenuKey, "statistics", log.ChoiceKey, choice)

		var (
			name   string
			reduce func(*ndarray.Array) (float64, error)
		)
		switch choice {
		case "1":
			name, reduce = "Sum", stats.Sum
		case "2":
			name, reduce = "Mean", stats.Mean
		case "3":
			name, reduce = "Median", stats.Median
		case "4":
			name, reduce = "Standard Deviation", stats.StdDev
		case "5":
			name, reduce = "Variance", stats.Variance
		case "6":
			name, reduce = "Minimum", stats.Min
		case "7":
			name, reduce = "Maximum", stats.Max
		case "8":
			s.percentile(arr)
			return
		case "9":
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		s.displayArray("Your Array", arr)
		value, err := reduce(arr)
		if err != nil {
			s.fail("statistics", err)
			return
		}
		fmt.Fprintf(s.out, "\n%s: %s\n", name, ndarray.FormatFloat(value))
		s.pause()
		return
	}
}

func (s *Shell) percentile(arr *ndarray.Array) {
	const flow = "percentile"
	fmt.Fprintln(s.out, "\n--- Calculating Percentile ---")
	fmt.Fprintln(s.out, "Example: the 75th percentile means 75% of values are below this number.")

	p, err := s.readFloat("Enter percentile (0-100): ")
	if err != nil {
		s.fail(flow, err)
		return
	}
	value, err := stats.Percentile(arr, p)
	if err != nil {
		s.fail(flow, err)
		return
	}
	fmt.Fprintf(s.out, "\n%sth Percentile: %s\n", ndarray.FormatFloat(p), ndarray.FormatFloat(value))
	s.pause()
}
