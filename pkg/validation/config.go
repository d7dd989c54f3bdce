package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Bounds holds the input policy limits for loan scenarios.
type Bounds struct {
	MinPrincipal int
	MaxPrincipal int
	MinRate      float64
	MaxRate      float64
	MinTerm      int
	MaxTerm      int
}

// ValidateBounds checks that every lower bound is positive and does not
// exceed its upper bound, and that the term limit stays within what the
// engine can amortize.
func ValidateBounds(b Bounds) error {
	if b.MinPrincipal <= 0 || b.MinPrincipal > b.MaxPrincipal {
		return fmt.Errorf("invalid principal limits [%d, %d]", b.MinPrincipal, b.MaxPrincipal)
	}
	if b.MinRate <= 0 || b.MinRate > b.MaxRate {
		return fmt.Errorf("invalid rate limits [%.2f, %.2f]", b.MinRate, b.MaxRate)
	}
	if b.MinTerm <= 0 || b.MinTerm > b.MaxTerm {
		return fmt.Errorf("invalid term limits [%d, %d]", b.MinTerm, b.MaxTerm)
	}
	if b.MaxTerm > constants.MaxPayments/constants.MonthsPerYear {
		return fmt.Errorf("invalid term limits [%d, %d]: terms over %d years cannot be amortized",
			b.MinTerm, b.MaxTerm, constants.MaxPayments/constants.MonthsPerYear)
	}
	return nil
}

// ValidateScenarioBounds returns a warning for every value of a scenario
// that falls outside the policy bounds. Such scenarios are still computed.
func ValidateScenarioBounds(index, principal int, rate float64, term int, b Bounds) []string {
	var warnings []string

	if principal < b.MinPrincipal || principal > b.MaxPrincipal {
		warnings = append(warnings, fmt.Sprintf("Scenario %d principal %d is outside [%d, %d]",
			index, principal, b.MinPrincipal, b.MaxPrincipal))
	}
	if rate < b.MinRate || rate > b.MaxRate {
		warnings = append(warnings, fmt.Sprintf("Scenario %d rate %.2f is outside [%.2f, %.2f]",
			index, rate, b.MinRate, b.MaxRate))
	}
	if term < b.MinTerm || term > b.MaxTerm {
		warnings = append(warnings, fmt.Sprintf("Scenario %d term %d is outside [%d, %d]",
			index, term, b.MinTerm, b.MaxTerm))
	}

	return warnings
}
