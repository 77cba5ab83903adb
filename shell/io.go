package shell

import (
	"fmt"
	"strconv"
	"strings"

	"arraylab/ndarray"
	"arraylab/pkg/errors"
	"arraylab/pkg/log"
)

// readLine prints a prompt and reads one trimmed line. ok is false when
// input has ended.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) readInt(prompt string) (int, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, errors.New("input ended")
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, errors.NewNumericInputError(line, err)
	}
	return v, nil
}

func (s *Shell) readFloat(prompt string) (float64, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, errors.New("input ended")
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, errors.NewNumericInputError(line, err)
	}
	return v, nil
}

func (s *Shell) readElements(prompt string) ([]float64, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return nil, errors.New("input ended")
	}
	return ndarray.ParseElements(line)
}

func (s *Shell) pause() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	s.in.Scan()
	fmt.Fprintln(s.out)
}

// fail renders a flow error as a single line and pauses. Control then
// returns to the parent menu.
func (s *Shell) fail(op string, err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
	s.logger.Warn("operation failed", log.OperationKey, op, log.ErrAttr(err))
	s.pause()
}
