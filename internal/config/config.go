// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Logging   LoggingConfig    `mapstructure:"logging"`
	Output    OutputConfig     `mapstructure:"output"`
	Display   DisplayConfig    `mapstructure:"display"`
	Schedule  ScheduleConfig   `mapstructure:"schedule"`
	Limits    LimitsConfig     `mapstructure:"limits"`
	Scenarios []ScenarioConfig `mapstructure:"scenarios"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format        string `mapstructure:"format"` // pretty, csv, yaml
	PreviewMonths int    `mapstructure:"previewMonths"`
}

// DisplayConfig controls how currency amounts are rendered.
type DisplayConfig struct {
	Locale   string `mapstructure:"locale"`   // BCP 47, e.g. en-US
	Currency string `mapstructure:"currency"` // ISO 4217, e.g. USD
	Symbol   string `mapstructure:"symbol"`   // optional override of the locale symbol
}

// ScheduleConfig controls amortization schedule generation.
type ScheduleConfig struct {
	FinalPeriod string `mapstructure:"finalPeriod"` // clamp, settle
}

// LimitsConfig holds the input policy bounds used by the interactive prompts.
type LimitsConfig struct {
	MinPrincipal int     `mapstructure:"minPrincipal"`
	MaxPrincipal int     `mapstructure:"maxPrincipal"`
	MinRate      float64 `mapstructure:"minRate"`
	MaxRate      float64 `mapstructure:"maxRate"`
	MinTerm      int     `mapstructure:"minTerm"`
	MaxTerm      int     `mapstructure:"maxTerm"`
}

// ScenarioConfig describes one loan to compare.
type ScenarioConfig struct {
	Principal int     `mapstructure:"principal"`
	Rate      float64 `mapstructure:"rate"`
	Term      int     `mapstructure:"term"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.previewMonths", constants.DefaultPreviewMonths)
	v.SetDefault("display.locale", constants.DefaultLocale)
	v.SetDefault("display.currency", constants.DefaultCurrency)
	v.SetDefault("display.symbol", "")
	v.SetDefault("schedule.finalPeriod", constants.FinalPeriodClamp)
	v.SetDefault("limits.minPrincipal", constants.MinPrincipal)
	v.SetDefault("limits.maxPrincipal", constants.MaxPrincipal)
	v.SetDefault("limits.minRate", constants.MinAnnualRate)
	v.SetDefault("limits.maxRate", constants.MaxAnnualRate)
	v.SetDefault("limits.minTerm", constants.MinTermYears)
	v.SetDefault("limits.maxTerm", constants.MaxTermYears)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults. Environment
// variables such as MORTGAGE_DISPLAY_LOCALE override both.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// Fall through to the defaults.
		default:
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// Bounds returns the policy limits in the form the validators expect.
func (c *Configuration) Bounds() validation.Bounds {
	return validation.Bounds{
		MinPrincipal: c.Limits.MinPrincipal,
		MaxPrincipal: c.Limits.MaxPrincipal,
		MinRate:      c.Limits.MinRate,
		MaxRate:      c.Limits.MaxRate,
		MinTerm:      c.Limits.MinTerm,
		MaxTerm:      c.Limits.MaxTerm,
	}
}

// Validate returns an error for settings the calculator cannot run with.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := mortgage.ParseFinalPeriodPolicy(c.Schedule.FinalPeriod); err != nil {
		return err
	}
	if _, err := c.Formatter(); err != nil {
		return err
	}
	return validation.ValidateBounds(c.Bounds())
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Output.PreviewMonths <= 0 {
		warnings = append(warnings, fmt.Sprintf("output.previewMonths is %d - the full schedule will be printed",
			c.Output.PreviewMonths))
	}

	bounds := c.Bounds()
	for i, scenario := range c.Scenarios {
		warnings = append(warnings, validation.ValidateScenarioBounds(i+1,
			scenario.Principal, scenario.Rate, scenario.Term, bounds)...)
	}

	return warnings
}

// Formatter builds the currency formatter described by the display settings.
func (c *Configuration) Formatter() (*format.Formatter, error) {
	f, err := format.NewFormatter(c.Display.Locale, c.Display.Currency)
	if err != nil {
		return nil, err
	}
	return f.WithSymbol(c.Display.Symbol), nil
}

// Engine builds an amortization engine honoring the schedule settings.
func (c *Configuration) Engine(logger *zap.Logger) (*mortgage.Engine, error) {
	policy, err := mortgage.ParseFinalPeriodPolicy(c.Schedule.FinalPeriod)
	if err != nil {
		return nil, err
	}
	return mortgage.NewEngine(logger, policy), nil
}

// LoanScenarios converts the configured scenarios, failing on the first one
// that cannot be amortized.
func (c *Configuration) LoanScenarios() ([]mortgage.Scenario, error) {
	scenarios := make([]mortgage.Scenario, 0, len(c.Scenarios))
	for i, sc := range c.Scenarios {
		s, err := mortgage.NewScenario(sc.Principal, sc.Rate, sc.Term)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
