// Package worksheet evaluates files holding one expression per line.
// Blank lines and lines starting with '#' are skipped.
package worksheet

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dhamidi/minilab/calc"
)

// Result is the outcome of evaluating one worksheet line.
type Result struct {
	Line  int // 1-based
	Text  string
	Value float64
	Err   error
}

// Column returns the 0-based byte column of the failure within the line, or
// -1 when the line evaluated successfully.
func (r Result) Column() int {
	var calcErr *calc.Error
	if errors.As(r.Err, &calcErr) {
		return calcErr.Offset
	}
	return -1
}

func isSkipped(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Evaluate evaluates every expression line of content.
func Evaluate(content []byte, opts ...calc.Option) []Result {
	var results []Result

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 4096), len(content)+1)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if isSkipped(text) {
			continue
		}
		v, err := calc.Calculate(text, opts...)
		results = append(results, Result{Line: line, Text: text, Value: v, Err: err})
	}
	return results
}

// EvaluateFile reads path and evaluates it.
func EvaluateFile(path string, opts ...calc.Option) ([]Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	return Evaluate(content, opts...), nil
}

// Failed reports whether any result carries an error.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Write prints one line per result:
//
//	3: 2 * (3 + 4) = 14
//	4: 10 / 0 ! division by zero at offset 3
func Write(w io.Writer, results []Result, digits int) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%d: %s ! %v\n", r.Line, strings.TrimSpace(r.Text), r.Err)
		} else {
			_, err = fmt.Fprintf(w, "%d: %s = %s\n", r.Line, strings.TrimSpace(r.Text), strconv.FormatFloat(r.Value, 'g', digits, 64))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
