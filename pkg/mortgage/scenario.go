// Package mortgage provides fixed-rate mortgage payment and amortization
// calculations.
package mortgage

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// ErrInvalidScenario is returned when a scenario cannot be amortized, e.g. a
// zero term or a zero interest rate.
var ErrInvalidScenario = errors.New("invalid loan scenario")

// Scenario holds the inputs of a single fixed-rate loan. It is immutable once
// constructed with NewScenario.
type Scenario struct {
	principal         int
	annualRatePercent float64
	termYears         int
}

// NewScenario validates and returns a loan scenario. Only arithmetic validity
// is checked here; input policy bounds are enforced by the prompt layer.
func NewScenario(principal int, annualRatePercent float64, termYears int) (Scenario, error) {
	s := Scenario{
		principal:         principal,
		annualRatePercent: annualRatePercent,
		termYears:         termYears,
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// MustScenario is like NewScenario but panics on error. It is intended for
// tests and literals known to be valid.
func MustScenario(principal int, annualRatePercent float64, termYears int) Scenario {
	s, err := NewScenario(principal, annualRatePercent, termYears)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Scenario) validate() error {
	if s.principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %d", ErrInvalidScenario, s.principal)
	}
	if !mathutil.IsFinite(s.annualRatePercent) || s.annualRatePercent <= 0 {
		return fmt.Errorf("%w: annual interest rate must be positive, got %v", ErrInvalidScenario, s.annualRatePercent)
	}
	if s.termYears <= 0 {
		return fmt.Errorf("%w: term must be at least one year, got %d", ErrInvalidScenario, s.termYears)
	}
	if s.termYears > constants.MaxPayments/constants.MonthsPerYear {
		return fmt.Errorf("%w: term must be at most %d years, got %d",
			ErrInvalidScenario, constants.MaxPayments/constants.MonthsPerYear, s.termYears)
	}
	if s.MonthlyRate()*float64(s.Payments()) < constants.MinRateTermProduct {
		return fmt.Errorf("%w: annual interest rate %v is too small to amortize over %d years",
			ErrInvalidScenario, s.annualRatePercent, s.termYears)
	}
	return nil
}

// Principal returns the amount borrowed.
func (s Scenario) Principal() int { return s.principal }

// AnnualRatePercent returns the nominal annual rate, e.g. 6.0 for 6%.
func (s Scenario) AnnualRatePercent() float64 { return s.annualRatePercent }

// TermYears returns the loan term in years.
func (s Scenario) TermYears() int { return s.termYears }

// MonthlyRate returns the periodic rate applied each month.
func (s Scenario) MonthlyRate() float64 {
	return mathutil.MonthlyRate(s.annualRatePercent)
}

// Payments returns the number of monthly payments over the term.
func (s Scenario) Payments() int {
	return s.termYears * constants.MonthsPerYear
}

// String renders the scenario the way comparison reports echo it back.
func (s Scenario) String() string {
	return fmt.Sprintf("Principal: $%d, Rate: %.2f%%, Term: %d years",
		s.principal, s.annualRatePercent, s.termYears)
}
