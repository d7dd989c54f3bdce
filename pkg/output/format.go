// Package output provides utilities for formatting and displaying mortgage results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"gopkg.in/yaml.v3"
)

// PrettySummary outputs the headline payment figures for one scenario.
func PrettySummary(w io.Writer, summary mortgage.Summary, f mortgage.CurrencyFormatter) {
	fmt.Fprintf(w, "\n--- Mortgage Calculation Results ---\n")
	fmt.Fprintf(w, "Monthly Payment: %s\n", f.Format(summary.MonthlyPayment))
	fmt.Fprintf(w, "Total Interest Paid: %s\n", f.Format(summary.TotalInterest))
}

// PrettySchedule outputs one line per schedule entry. A limit of zero or
// less prints every entry.
func PrettySchedule(w io.Writer, schedule []mortgage.Entry, limit int) {
	if limit <= 0 || limit > len(schedule) {
		limit = len(schedule)
	}
	for _, entry := range schedule[:limit] {
		fmt.Fprintln(w, entry.String())
	}
}

// CsvSchedule outputs the schedule in comma-separated value format.
func CsvSchedule(w io.Writer, schedule []mortgage.Entry) {
	fmt.Fprintf(w, `"month","payment","principal","interest","remaining"`+"\n")
	for _, entry := range schedule {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f"`+"\n",
			entry.Period, entry.Payment, entry.Principal, entry.Interest, entry.RemainingBalance)
	}
}

// CsvSummaries outputs scenario summaries in comma-separated value format.
func CsvSummaries(w io.Writer, summaries []mortgage.Summary) {
	fmt.Fprintf(w, `"scenario","principal","rate","term","monthly payment","total interest"`+"\n")
	for i, summary := range summaries {
		fmt.Fprintf(w, `"%d","%d","%.2f","%d","%.2f","%.2f"`+"\n",
			i+1,
			summary.Scenario.Principal(),
			summary.Scenario.AnnualRatePercent(),
			summary.Scenario.TermYears(),
			summary.MonthlyPayment,
			summary.TotalInterest,
		)
	}
}

type entryDocument struct {
	Month     int     `yaml:"month"`
	Payment   float64 `yaml:"payment"`
	Principal float64 `yaml:"principal"`
	Interest  float64 `yaml:"interest"`
	Remaining float64 `yaml:"remaining"`
}

// YAMLSchedule outputs the schedule as a YAML sequence with amounts rounded
// to cents.
func YAMLSchedule(w io.Writer, schedule []mortgage.Entry) error {
	doc := make([]entryDocument, 0, len(schedule))
	for _, entry := range schedule {
		doc = append(doc, entryDocument{
			Month:     entry.Period,
			Payment:   mathutil.Round(entry.Payment),
			Principal: mathutil.Round(entry.Principal),
			Interest:  mathutil.Round(entry.Interest),
			Remaining: mathutil.Round(entry.RemainingBalance),
		})
	}
	return encodeYAML(w, doc)
}

type summaryDocument struct {
	Scenario       int     `yaml:"scenario"`
	Principal      int     `yaml:"principal"`
	Rate           float64 `yaml:"rate"`
	Term           int     `yaml:"term"`
	MonthlyPayment float64 `yaml:"monthlyPayment"`
	TotalInterest  float64 `yaml:"totalInterest"`
	TotalPaid      float64 `yaml:"totalPaid"`
}

type comparisonDocument struct {
	Scenarios []summaryDocument `yaml:"scenarios"`
}

// YAMLSummaries outputs scenario summaries as a YAML document with amounts
// rounded to cents.
func YAMLSummaries(w io.Writer, summaries []mortgage.Summary) error {
	doc := comparisonDocument{Scenarios: make([]summaryDocument, 0, len(summaries))}
	for i, summary := range summaries {
		doc.Scenarios = append(doc.Scenarios, summaryDocument{
			Scenario:       i + 1,
			Principal:      summary.Scenario.Principal(),
			Rate:           summary.Scenario.AnnualRatePercent(),
			Term:           summary.Scenario.TermYears(),
			MonthlyPayment: mathutil.Round(summary.MonthlyPayment),
			TotalInterest:  mathutil.Round(summary.TotalInterest),
			TotalPaid:      mathutil.Round(summary.TotalPaid),
		})
	}

	return encodeYAML(w, doc)
}

func encodeYAML(w io.Writer, doc interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}
