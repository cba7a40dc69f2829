package repl

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func runPlain(t *testing.T, config Config, input string) string {
	t.Helper()
	var out strings.Builder
	if err := RunPlain(config, strings.NewReader(input), &out); err != nil {
		t.Fatalf("RunPlain: %v", err)
	}
	return out.String()
}

func noPrompt() Config {
	config := DefaultConfig()
	config.Prompt = ""
	return config
}

func TestSessionEvaluatesLines(t *testing.T) {
	out := runPlain(t, noPrompt(), "2+3\n10/0\nsin(90)\nexit\n")

	want := Greeting + "\n" +
		"ans:\n" +
		"         5\n" +
		ErrorMessage + "\n" +
		"ans:\n" +
		"         1\n" +
		Farewell + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSessionPrintsPrompt(t *testing.T) {
	// One prompt per read, including the one that hits the end of input.
	out := runPlain(t, DefaultConfig(), "1\n")
	if got := strings.Count(out, "> "); got != 2 {
		t.Errorf("prompt count = %d, want 2", got)
	}
}

func TestSessionStops(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		answers int
	}{
		{"exit line", "exit now\n2+2\n", 0},
		{"exit after answer", "1\nexit\n2\n", 1},
		{"end of input", "3*3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runPlain(t, noPrompt(), tt.input)
			if got := strings.Count(out, "ans:"); got != tt.answers {
				t.Errorf("answers = %d, want %d", got, tt.answers)
			}
			if !strings.HasSuffix(out, Farewell+"\n") {
				t.Errorf("output %q does not end with the farewell", out)
			}
		})
	}
}

func TestSessionStrict(t *testing.T) {
	config := noPrompt()
	config.Strict = true

	if out := runPlain(t, config, "2 3\n"); !strings.Contains(out, ErrorMessage) {
		t.Errorf("output = %q, want an error line", out)
	}
}

func TestSessionRejectsLongLines(t *testing.T) {
	line := strings.Repeat("1", MaxLineLength+1) + "\n"

	var out strings.Builder
	err := RunPlain(DefaultConfig(), strings.NewReader(line), &out)
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("error = %v, want bufio.ErrTooLong", err)
	}
}

func TestIsExit(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"exit", true},
		{"exit\n", true},
		{"exitus", true},
		{" exit", false},
		{"EXIT", false},
		{"exi", false},
	}

	for _, tt := range tests {
		if got := IsExit(tt.line); got != tt.want {
			t.Errorf("IsExit(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v      float64
		width  int
		digits int
		want   string
	}{
		{5, 10, 6, "         5"},
		{0.1 + 0.2, 10, 6, "       0.3"},
		{1.0 / 3, 10, 6, "  0.333333"},
		{1234567, 10, 6, "1.23457e+06"},
		{1e-7, 10, 6, "     1e-07"},
		{-2.5, 0, 6, "-2.5"},
		{3.14159265, 0, 3, "3.14"},
	}

	for _, tt := range tests {
		if got := Format(tt.v, tt.width, tt.digits); got != tt.want {
			t.Errorf("Format(%v, %d, %d) = %q, want %q", tt.v, tt.width, tt.digits, got, tt.want)
		}
	}
}
