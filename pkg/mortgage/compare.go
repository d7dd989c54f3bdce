package mortgage

import (
	"fmt"
	"strings"
)

// CurrencyFormatter renders an amount as display currency, e.g. "$1,234.56".
type CurrencyFormatter interface {
	Format(amount float64) string
}

type plainFormatter struct{}

func (plainFormatter) Format(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

const comparisonHeader = "Loan Scenario Comparison:\n"

// CompareScenarios produces a comparison report using the default engine.
func CompareScenarios(scenarios []Scenario, f CurrencyFormatter) (string, error) {
	return defaultEngine.CompareScenarios(scenarios, f)
}

// SummarizeAll summarizes each scenario, preserving input order.
func (e *Engine) SummarizeAll(scenarios []Scenario) ([]Summary, error) {
	summaries := make([]Summary, 0, len(scenarios))
	for i, s := range scenarios {
		summary, err := e.Summarize(s)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// CompareScenarios restates the payment and total interest of every scenario
// as a text report. An empty list produces only the header.
func (e *Engine) CompareScenarios(scenarios []Scenario, f CurrencyFormatter) (string, error) {
	summaries, err := e.SummarizeAll(scenarios)
	if err != nil {
		return "", err
	}
	return FormatComparison(summaries, f), nil
}

// FormatComparison renders already computed summaries, numbered from 1.
func FormatComparison(summaries []Summary, f CurrencyFormatter) string {
	if f == nil {
		f = plainFormatter{}
	}

	var b strings.Builder
	b.WriteString(comparisonHeader)
	for i, summary := range summaries {
		fmt.Fprintf(&b, "Scenario %d: %s\n   Monthly Payment: %s\n   Total Interest Paid: %s\n\n",
			i+1,
			summary.Scenario,
			f.Format(summary.MonthlyPayment),
			f.Format(summary.TotalInterest),
		)
	}
	return b.String()
}
