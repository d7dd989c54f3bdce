package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		reason   Reason
		wantErr  bool
	}{
		{"Valid", "200000", 200000, 0, false},
		{"Surrounding whitespace", "  5000 \t", 5000, 0, false},
		{"Lower bound", "1000", 1000, 0, false},
		{"Upper bound", "1000000", 1000000, 0, false},
		{"Below range", "999", 0, OutOfRange, true},
		{"Above range", "1000001", 0, OutOfRange, true},
		{"Letters", "abc", 0, NotNumeric, true},
		{"Decimal", "1500.50", 0, NotNumeric, true},
		{"Empty", "", 0, NotNumeric, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseInt(tt.input, 1000, 1000000)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr {
				if result != tt.expected {
					t.Errorf("ParseInt(%q) = %d, expected %d", tt.input, result, tt.expected)
				}
				return
			}
			var retry *RetryError
			if !errors.As(err, &retry) {
				t.Fatalf("expected *RetryError, got %T", err)
			}
			if retry.Reason != tt.reason {
				t.Errorf("Reason = %v, expected %v", retry.Reason, tt.reason)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		reason   Reason
		wantErr  bool
	}{
		{"Valid", "6.5", 6.5, 0, false},
		{"Whole number", "30", 30, 0, false},
		{"Below range", "0.5", 0, OutOfRange, true},
		{"Above range", "30.01", 0, OutOfRange, true},
		{"NaN", "NaN", 0, NotNumeric, true},
		{"Infinity", "+Inf", 0, NotNumeric, true},
		{"Garbage", "six", 0, NotNumeric, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseFloat(tt.input, 1, 30)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFloat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr {
				if result != tt.expected {
					t.Errorf("ParseFloat(%q) = %v, expected %v", tt.input, result, tt.expected)
				}
				return
			}
			var retry *RetryError
			if !errors.As(err, &retry) || retry.Reason != tt.reason {
				t.Errorf("ParseFloat(%q) error = %v, expected reason %v", tt.input, err, tt.reason)
			}
		})
	}
}

func TestRetryErrorMessages(t *testing.T) {
	_, err := ParseInt("5", 1000, 1000000)
	if err.Error() != "Enter a value between 1000 and 1000000" {
		t.Errorf("unexpected out of range message %q", err.Error())
	}

	_, err = ParseFloat("45", 1, 30)
	if err.Error() != "Enter a value between 1.00 and 30.00" {
		t.Errorf("unexpected out of range message %q", err.Error())
	}

	_, err = ParseInt("x", 1, 30)
	if err.Error() != "Invalid input. Please enter a number." {
		t.Errorf("unexpected non-numeric message %q", err.Error())
	}

	if IsRetry(errors.New("other")) {
		t.Errorf("plain errors should not be retry signals")
	}
}

func TestPrompterRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n500\n250000\n")
	var out bytes.Buffer
	p := New(in, &out, nil)

	value, err := p.Int("Principal", 1000, 1000000)
	if err != nil {
		t.Fatalf("Int() error = %v", err)
	}
	if value != 250000 {
		t.Errorf("Int() = %d, expected 250000", value)
	}

	expected := "Principal: Invalid input. Please enter a number.\n" +
		"Principal: Enter a value between 1000 and 1000000\n" +
		"Principal: "
	if out.String() != expected {
		t.Errorf("unexpected prompt output:\n%q\nexpected:\n%q", out.String(), expected)
	}
}

func TestPrompterFloat(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("45\n6.25\n"), &out, nil)

	value, err := p.Float("Annual Interest Rate", 1, 30)
	if err != nil {
		t.Fatalf("Float() error = %v", err)
	}
	if value != 6.25 {
		t.Errorf("Float() = %v, expected 6.25", value)
	}
	if !strings.Contains(out.String(), "Enter a value between 1.00 and 30.00") {
		t.Errorf("expected range message, got %q", out.String())
	}
}

func TestPrompterInputClosed(t *testing.T) {
	p := New(strings.NewReader("abc\n"), &bytes.Buffer{}, nil)

	_, err := p.Int("Period (Years)", 1, 30)
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Int() error = %v, expected ErrInputClosed", err)
	}

	if _, err := p.Confirm("Again?"); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Confirm() error = %v, expected ErrInputClosed", err)
	}
}

type failingReader struct{}

func (failingReader) ReadLine() (string, error) {
	return "", errors.New("terminal detached")
}

func TestPrompterReadError(t *testing.T) {
	p := NewWithReader(failingReader{}, &bytes.Buffer{}, nil)

	_, err := p.Float("Annual Interest Rate", 1, 30)
	if err == nil || errors.Is(err, ErrInputClosed) {
		t.Fatalf("Float() error = %v, expected a read failure", err)
	}
	if !strings.Contains(err.Error(), "terminal detached") {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"  YEAH", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.answer+"\n"), &out, nil)
			result, err := p.Confirm("Generate Amortization Schedule?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("Confirm(%q) = %v, expected %v", tt.answer, result, tt.expected)
			}
			if out.String() != "Generate Amortization Schedule? (y/n): " {
				t.Errorf("unexpected question output %q", out.String())
			}
		})
	}
}
