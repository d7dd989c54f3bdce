package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ErrInputClosed is returned when the input stream ends before a valid value
// was read.
var ErrInputClosed = errors.New("input closed")

// LineReader supplies one line of user input at a time.
type LineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps an io.Reader as a LineReader.
func NewLineReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Prompter asks for values until valid ones are entered.
type Prompter struct {
	reader LineReader
	out    io.Writer
	logger *zap.Logger
}

// New creates a Prompter reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Prompter {
	return NewWithReader(NewLineReader(in), out, logger)
}

// NewWithReader creates a Prompter from an existing LineReader.
func NewWithReader(reader LineReader, out io.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{reader: reader, out: out, logger: logger}
}

// Int prompts for a whole number within [min, max].
func (p *Prompter) Int(label string, min, max int) (int, error) {
	return ask(p, label, func(line string) (int, error) {
		return ParseInt(line, min, max)
	})
}

// Float prompts for a real number within [min, max].
func (p *Prompter) Float(label string, min, max float64) (float64, error) {
	return ask(p, label, func(line string) (float64, error) {
		return ParseFloat(line, min, max)
	})
}

// Confirm asks a yes/no question. Any answer starting with "y" or "Y" is a yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		if !IsRetry(err) {
			var zero T
			return zero, err
		}

		p.logger.Debug(fmt.Sprintf("rejected input %q for %s", line, label),
			zap.String("op", "prompt.ask"),
			zap.Error(err),
		)
		fmt.Fprintln(p.out, err.Error())
	}
}
