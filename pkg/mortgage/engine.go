package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// Summary holds the headline figures for one scenario.
type Summary struct {
	Scenario       Scenario
	MonthlyPayment float64
	TotalInterest  float64
	TotalPaid      float64
}

// Engine computes payments and amortization schedules. All methods are pure
// functions of their Scenario argument; an Engine is safe to reuse.
type Engine struct {
	logger *zap.Logger
	policy FinalPeriodPolicy
}

// NewEngine creates a new engine instance.
func NewEngine(logger *zap.Logger, policy FinalPeriodPolicy) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, policy: policy}
}

var defaultEngine = NewEngine(nil, ClampFinalBalance)

// CalculateMonthlyPayment calculates the level monthly payment using the default engine.
func CalculateMonthlyPayment(s Scenario) (float64, error) {
	return defaultEngine.MonthlyPayment(s)
}

// CalculateTotalInterest calculates the interest paid over the term using the default engine.
func CalculateTotalInterest(s Scenario) (float64, error) {
	return defaultEngine.TotalInterest(s)
}

// GenerateSchedule builds the full amortization schedule using the default engine.
func GenerateSchedule(s Scenario) ([]Entry, error) {
	return defaultEngine.GenerateSchedule(s)
}

// Policy returns the final-period policy the engine applies to schedules.
func (e *Engine) Policy() FinalPeriodPolicy {
	return e.policy
}

// MonthlyPayment calculates the monthly payment for a loan using the standard
// annuity formula P*r*(1+r)^n / ((1+r)^n - 1).
func (e *Engine) MonthlyPayment(s Scenario) (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	// (1+r)^n and (1+r)^n - 1 via log1p/expm1 so small rates do not cancel.
	r := s.MonthlyRate()
	exponent := float64(s.Payments()) * math.Log1p(r)
	power := math.Exp(exponent)
	growth := math.Expm1(exponent)
	payment := float64(s.principal) * r * power / growth

	if !mathutil.IsFinite(payment) || payment <= 0 {
		return 0, fmt.Errorf("%w: no finite monthly payment for %s", ErrInvalidScenario, s)
	}
	return payment, nil
}

// TotalInterest returns the monthly payment times the number of payments,
// less the principal.
func (e *Engine) TotalInterest(s Scenario) (float64, error) {
	payment, err := e.MonthlyPayment(s)
	if err != nil {
		return 0, err
	}
	return payment*float64(s.Payments()) - float64(s.principal), nil
}

// Summarize computes the headline figures for a scenario.
func (e *Engine) Summarize(s Scenario) (Summary, error) {
	payment, err := e.MonthlyPayment(s)
	if err != nil {
		return Summary{}, err
	}
	totalPaid := payment * float64(s.Payments())
	return Summary{
		Scenario:       s,
		MonthlyPayment: payment,
		TotalInterest:  totalPaid - float64(s.principal),
		TotalPaid:      totalPaid,
	}, nil
}

// GenerateSchedule creates the complete month-by-month amortization schedule.
// The returned slice has exactly Payments() entries and the final entry
// always carries a zero remaining balance.
func (e *Engine) GenerateSchedule(s Scenario) ([]Entry, error) {
	payment, err := e.MonthlyPayment(s)
	if err != nil {
		return nil, err
	}

	r := s.MonthlyRate()
	n := s.Payments()
	schedule := make([]Entry, 0, n)
	balance := float64(s.principal)

	for period := 1; period <= n; period++ {
		interest := balance * r
		principal := payment - interest

		if period == n {
			if e.policy == SettleFinalBalance {
				principal = balance
			}
			drift := balance - principal
			if !mathutil.IsZero(drift) {
				e.logger.Warn(fmt.Sprintf("final period drift of %.4f exceeds one cent for %s", drift, s),
					zap.String("op", "mortgage.GenerateSchedule"),
				)
			}
			// We will get machine error otherwise so just set to 0.
			balance = 0
		} else {
			balance = mathutil.Max(0, balance-principal)
		}

		schedule = append(schedule, Entry{
			Period:           period,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	e.logger.Debug(fmt.Sprintf("generated %d payment schedule for %s", len(schedule), s),
		zap.String("op", "mortgage.GenerateSchedule"),
		zap.Stringer("finalPeriod", e.policy),
	)
	return schedule, nil
}
