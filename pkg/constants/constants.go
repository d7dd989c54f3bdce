// Package constants provides shared constants for the mortgage-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Input policy bounds. These are a UX concern enforced by the prompt layer;
// the amortization engine works outside of them.
const (
	MinPrincipal = 1000
	MaxPrincipal = 1_000_000

	MinAnnualRate = 1.0
	MaxAnnualRate = 30.0

	MinTermYears = 1
	MaxTermYears = 30
)

// Arithmetic limits of the amortization engine, independent of input policy.
const (
	// MaxPayments caps the schedule length at 100 years of monthly payments.
	MaxPayments = 1200

	// MinRateTermProduct is the smallest monthly rate times payment count the
	// annuity formula is evaluated for; below it the loan is effectively
	// interest free and the formula loses precision.
	MinRateTermProduct = 1e-6
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format, used for scenario comparisons
	OutputFormatYAML = "yaml"

	// DefaultPreviewMonths is how many schedule entries the interactive
	// session prints when asked for an amortization schedule
	DefaultPreviewMonths = 5
)

// Final-period policies for the amortization schedule.
const (
	// FinalPeriodClamp zeroes out the remaining balance on the last period.
	FinalPeriodClamp = "clamp"

	// FinalPeriodSettle pays off the remaining balance as the last principal component.
	FinalPeriodSettle = "settle"
)

// Display defaults
const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "mortgage.yaml"

	// EnvPrefix is the prefix for environment overrides, e.g. MORTGAGE_DISPLAY_LOCALE
	EnvPrefix = "MORTGAGE"
)
