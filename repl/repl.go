// Package repl implements the interactive loop around the calculator: it
// reads one line at a time, evaluates it, and prints the answer or a generic
// error message.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhamidi/minilab/calc"
	"github.com/tliron/commonlog"
)

const (
	Greeting     = "Welcome to the enhanced miniLab. Enter your math problem: "
	Farewell     = "Goodbye!"
	ErrorMessage = "Error: Invalid input or operation."
	ExitCommand  = "exit"
)

// MaxLineLength bounds a single line of input.
const MaxLineLength = 4096

var log = commonlog.GetLogger("minilab.repl")

// LineReader yields input one line at a time, without the line terminator.
// *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

type Config struct {
	Prompt string
	Width  int // minimum width of the printed answer
	Digits int // significant digits of the printed answer
	Strict bool
	Styled bool
}

func DefaultConfig() Config {
	return Config{
		Prompt: "> ",
		Width:  10,
		Digits: 6,
	}
}

type Session struct {
	config Config
	in     LineReader
	out    io.Writer

	errorStyle  lipgloss.Style
	answerStyle lipgloss.Style
}

func NewSession(config Config, in LineReader, out io.Writer) *Session {
	return &Session{
		config:      config,
		in:          in,
		out:         out,
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		answerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Run reads and evaluates lines until the exit command or the end of input.
// Reaching the end of input is not an error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, Greeting)

	for {
		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if IsExit(line) {
			break
		}

		s.evaluate(line)
	}

	fmt.Fprintln(s.out, Farewell)
	return nil
}

func (s *Session) evaluate(line string) {
	var opts []calc.Option
	if s.config.Strict {
		opts = append(opts, calc.Strict())
	}

	v, err := calc.Calculate(line, opts...)
	if err != nil {
		log.Debugf("evaluate %q: %v", line, err)
		fmt.Fprintln(s.out, s.render(s.errorStyle, ErrorMessage))
		return
	}

	log.Debugf("evaluate %q = %v", line, v)
	fmt.Fprintln(s.out, s.render(s.answerStyle, "ans:"))
	fmt.Fprintln(s.out, Format(v, s.config.Width, s.config.Digits))
}

func (s *Session) render(style lipgloss.Style, text string) string {
	if !s.config.Styled {
		return text
	}
	return style.Render(text)
}

// IsExit reports whether line asks the loop to stop: its first four
// characters are "exit".
func IsExit(line string) bool {
	return strings.HasPrefix(line, ExitCommand)
}

// Format renders v in %g style with the given number of significant digits,
// right-aligned to width.
func Format(v float64, width, digits int) string {
	return fmt.Sprintf("%*s", width, strconv.FormatFloat(v, 'g', digits, 64))
}

type scannerReader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
	text    string
}

// NewScannerReader reads lines from r, writing prompt to w before each one.
// A nil w disables the prompt. Lines longer than MaxLineLength fail with
// bufio.ErrTooLong.
func NewScannerReader(r io.Reader, w io.Writer, prompt string) LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), MaxLineLength)
	return &scannerReader{scanner: scanner, prompt: w, text: prompt}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.prompt != nil {
		fmt.Fprint(r.prompt, r.text)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
