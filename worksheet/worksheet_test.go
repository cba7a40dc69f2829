package worksheet

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/minilab/calc"
)

const sheet = `# totals
2 + 3

2 * (3 + 4)
  # indented comment
10 / 0
sin(90)
sin(1 2)
`

func TestEvaluate(t *testing.T) {
	results := Evaluate([]byte(sheet))

	tests := []struct {
		line   int
		value  float64
		err    error
		column int
	}{
		{2, 5, nil, -1},
		{4, 14, nil, -1},
		{6, 0, calc.ErrDivisionByZero, 3},
		{7, 1, nil, -1},
		{8, 2, nil, -1},
	}

	if len(results) != len(tests) {
		t.Fatalf("got %d results, want %d", len(results), len(tests))
	}
	for i, tt := range tests {
		r := results[i]
		if r.Line != tt.line {
			t.Errorf("result %d: Line = %d, want %d", i, r.Line, tt.line)
		}
		if tt.err != nil {
			if !errors.Is(r.Err, tt.err) {
				t.Errorf("line %d: error = %v, want %v", r.Line, r.Err, tt.err)
			}
		} else {
			if r.Err != nil {
				t.Errorf("line %d: unexpected error %v", r.Line, r.Err)
			}
			if math.Abs(r.Value-tt.value) > 1e-9 {
				t.Errorf("line %d: Value = %v, want %v", r.Line, r.Value, tt.value)
			}
		}
		if got := r.Column(); got != tt.column {
			t.Errorf("line %d: Column() = %d, want %d", r.Line, got, tt.column)
		}
	}

	if !Failed(results) {
		t.Error("Failed = false, want true")
	}
}

func TestEvaluateStrict(t *testing.T) {
	results := Evaluate([]byte("sin(1 2)\n"), calc.Strict())
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !errors.Is(results[0].Err, calc.ErrMismatchedParen) {
		t.Errorf("error = %v, want mismatched parentheses", results[0].Err)
	}
}

func TestEvaluateCRLF(t *testing.T) {
	results := Evaluate([]byte("1+1\r\n2+2\r\n"), calc.Strict())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Text != "1+1" {
		t.Errorf("Text = %q, want %q", results[0].Text, "1+1")
	}
	if Failed(results) {
		t.Error("Failed = true, want false")
	}
}

func TestEvaluateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.calc")
	if err := os.WriteFile(path, []byte(sheet), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := EvaluateFile(path)
	if err != nil {
		t.Fatalf("EvaluateFile: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("got %d results, want 5", len(results))
	}

	if _, err := EvaluateFile(filepath.Join(t.TempDir(), "missing.calc")); err == nil {
		t.Error("EvaluateFile of a missing file succeeded")
	}
}

func TestWrite(t *testing.T) {
	var out strings.Builder
	if err := Write(&out, Evaluate([]byte("2 * (3 + 4)\n10 / 0\n")), 6); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "1: 2 * (3 + 4) = 14\n2: 10 / 0 ! division by zero at offset 3\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.calc")
	if err := os.WriteFile(path, []byte("1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep writing until it
	// notices.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
wait:
	for {
		select {
		case <-changed:
			break wait
		case <-ticker.C:
			if err := os.WriteFile(path, []byte("2\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change observed")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
