package mortgage

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// Entry holds the breakdown of a single monthly payment.
type Entry struct {
	Period           int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// String renders the entry as a single schedule line.
func (e Entry) String() string {
	return fmt.Sprintf("Month %d: Payment: $%.2f, Principal: $%.2f, Interest: $%.2f, Remaining: $%.2f",
		e.Period, e.Payment, e.Principal, e.Interest, e.RemainingBalance)
}

// FinalPeriodPolicy decides how floating-point drift is absorbed on the last
// payment of a schedule.
type FinalPeriodPolicy int

const (
	// ClampFinalBalance keeps the level principal component on the last
	// period and forces the remaining balance to zero.
	ClampFinalBalance FinalPeriodPolicy = iota

	// SettleFinalBalance pays exactly the outstanding balance as the last
	// principal component.
	SettleFinalBalance
)

// ParseFinalPeriodPolicy converts a configuration value into a policy.
func ParseFinalPeriodPolicy(value string) (FinalPeriodPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", constants.FinalPeriodClamp:
		return ClampFinalBalance, nil
	case constants.FinalPeriodSettle:
		return SettleFinalBalance, nil
	default:
		return ClampFinalBalance, fmt.Errorf("expected final period policy of %s or %s, got %s",
			constants.FinalPeriodClamp, constants.FinalPeriodSettle, value)
	}
}

func (p FinalPeriodPolicy) String() string {
	if p == SettleFinalBalance {
		return constants.FinalPeriodSettle
	}
	return constants.FinalPeriodClamp
}
