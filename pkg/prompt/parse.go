// Package prompt reads validated numeric input from an interactive console.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// Reason classifies why an input line was rejected.
type Reason int

const (
	// NotNumeric means the line could not be parsed as a number.
	NotNumeric Reason = iota
	// OutOfRange means the number fell outside the accepted bounds.
	OutOfRange
)

// RetryError signals that the caller should ask for the value again.
type RetryError struct {
	Reason Reason
	Input  string
	Min    string
	Max    string
}

func (e *RetryError) Error() string {
	if e.Reason == OutOfRange {
		return fmt.Sprintf("Enter a value between %s and %s", e.Min, e.Max)
	}
	return "Invalid input. Please enter a number."
}

// IsRetry reports whether err asks for the input to be read again.
func IsRetry(err error) bool {
	var retry *RetryError
	return errors.As(err, &retry)
}

// ParseInt parses a whole number within [min, max].
func ParseInt(text string, min, max int) (int, error) {
	field := firstField(text)
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, &RetryError{Reason: NotNumeric, Input: text}
	}
	if value < min || value > max {
		return 0, &RetryError{
			Reason: OutOfRange,
			Input:  text,
			Min:    strconv.Itoa(min),
			Max:    strconv.Itoa(max),
		}
	}
	return value, nil
}

// ParseFloat parses a real number within [min, max].
func ParseFloat(text string, min, max float64) (float64, error) {
	field := firstField(text)
	value, err := strconv.ParseFloat(field, 64)
	// NaN and infinities parse cleanly but are not usable amounts.
	if err != nil || !mathutil.IsFinite(value) {
		return 0, &RetryError{Reason: NotNumeric, Input: text}
	}
	if value < min || value > max {
		return 0, &RetryError{
			Reason: OutOfRange,
			Input:  text,
			Min:    fmt.Sprintf("%.2f", min),
			Max:    fmt.Sprintf("%.2f", max),
		}
	}
	return value, nil
}

// firstField returns the first whitespace separated token of a line.
func firstField(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
