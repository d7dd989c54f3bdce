package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/testutil"
)

func TestLoadConfigurationDefaultsWhenMissing(t *testing.T) {
	conf, err := LoadConfiguration(testutil.MissingConfig(t))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Output.Format != "pretty" || conf.Output.PreviewMonths != 5 {
		t.Errorf("unexpected output defaults %+v", conf.Output)
	}
	if conf.Display.Locale != "en-US" || conf.Display.Currency != "USD" {
		t.Errorf("unexpected display defaults %+v", conf.Display)
	}
	if conf.Logging.Level != "info" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging defaults %+v", conf.Logging)
	}
	if conf.Limits.MinPrincipal != 1000 || conf.Limits.MaxPrincipal != 1000000 ||
		conf.Limits.MinRate != 1 || conf.Limits.MaxRate != 30 ||
		conf.Limits.MinTerm != 1 || conf.Limits.MaxTerm != 30 {
		t.Errorf("unexpected limit defaults %+v", conf.Limits)
	}
	if len(conf.Scenarios) != 0 {
		t.Errorf("expected no default scenarios, got %d", len(conf.Scenarios))
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadConfigurationEmptyPath(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Schedule.FinalPeriod != "clamp" {
		t.Errorf("expected clamp final period by default, got %q", conf.Schedule.FinalPeriod)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := testutil.WriteConfig(t, `logging:
  level: debug
  format: json
  outputFile: /tmp/mortgage.log
output:
  format: csv
  previewMonths: 12
display:
  locale: de-DE
  currency: EUR
schedule:
  finalPeriod: settle
limits:
  maxPrincipal: 2000000
scenarios:
  - principal: 200000
    rate: 6
    term: 30
  - principal: 100000
    rate: 5.5
    term: 15
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "json" || conf.Logging.OutputFile != "/tmp/mortgage.log" {
		t.Errorf("unexpected logging %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" || conf.Output.PreviewMonths != 12 {
		t.Errorf("unexpected output %+v", conf.Output)
	}
	if conf.Display.Locale != "de-DE" || conf.Display.Currency != "EUR" {
		t.Errorf("unexpected display %+v", conf.Display)
	}
	if conf.Limits.MaxPrincipal != 2000000 || conf.Limits.MinPrincipal != 1000 {
		t.Errorf("expected partial limits override, got %+v", conf.Limits)
	}
	if len(conf.Scenarios) != 2 || conf.Scenarios[0].Rate != 6 || conf.Scenarios[1].Term != 15 {
		t.Fatalf("unexpected scenarios %+v", conf.Scenarios)
	}

	engine, err := conf.Engine(nil)
	if err != nil {
		t.Fatalf("Engine() error = %v", err)
	}
	if engine.Policy() != mortgage.SettleFinalBalance {
		t.Errorf("expected settle policy, got %v", engine.Policy())
	}

	scenarios, err := conf.LoanScenarios()
	if err != nil {
		t.Fatalf("LoanScenarios() error = %v", err)
	}
	if scenarios[1].AnnualRatePercent() != 5.5 {
		t.Errorf("unexpected second scenario %s", scenarios[1])
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("MORTGAGE_DISPLAY_CURRENCY", "GBP")
	t.Setenv("MORTGAGE_OUTPUT_FORMAT", "yaml")

	conf, err := LoadConfiguration(testutil.WriteConfig(t, "display:\n  currency: EUR\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Display.Currency != "GBP" {
		t.Errorf("expected environment to override currency, got %s", conf.Display.Currency)
	}
	if conf.Output.Format != "yaml" {
		t.Errorf("expected environment to override output format, got %s", conf.Output.Format)
	}
}

func TestLoadConfigurationInvalidYAML(t *testing.T) {
	_, err := LoadConfiguration(testutil.WriteConfig(t, "output: [unclosed\n"))
	if err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "error reading config file") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Configuration)
		wantErr bool
	}{
		{"Defaults", func(c *Configuration) {}, false},
		{"Unknown output format", func(c *Configuration) { c.Output.Format = "xml" }, true},
		{"Unknown final period", func(c *Configuration) { c.Schedule.FinalPeriod = "round" }, true},
		{"Bad locale", func(c *Configuration) { c.Display.Locale = "not a locale!" }, true},
		{"Bad currency", func(c *Configuration) { c.Display.Currency = "DOLLARS" }, true},
		{"Inverted limits", func(c *Configuration) { c.Limits.MinTerm = 50 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfiguration("")
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			tt.modify(conf)
			if err := conf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	conf.Output.PreviewMonths = 0
	conf.Scenarios = []ScenarioConfig{
		{Principal: 200000, Rate: 6, Term: 30},
		{Principal: 500, Rate: 6, Term: 40},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "previewMonths") {
		t.Errorf("unexpected first warning %q", warnings[0])
	}
	for _, warning := range warnings[1:] {
		if !strings.HasPrefix(warning, "Scenario 2 ") {
			t.Errorf("expected warning for scenario 2, got %q", warning)
		}
	}
}

func TestLoanScenariosInvalid(t *testing.T) {
	conf := &Configuration{Scenarios: []ScenarioConfig{
		{Principal: 200000, Rate: 6, Term: 30},
		{Principal: 200000, Rate: 0, Term: 30},
	}}

	_, err := conf.LoanScenarios()
	if !errors.Is(err, mortgage.ErrInvalidScenario) {
		t.Fatalf("LoanScenarios() error = %v, expected ErrInvalidScenario", err)
	}
	if !strings.HasPrefix(err.Error(), "scenario 2: ") {
		t.Errorf("error should name the scenario, got %v", err)
	}
}

func TestFormatterSymbolOverride(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	conf.Display.Symbol = "$"

	f, err := conf.Formatter()
	if err != nil {
		t.Fatalf("Formatter() error = %v", err)
	}
	if got := f.Format(1199.10105); got != "$1,199.10" {
		t.Errorf("Format() = %q, expected $1,199.10", got)
	}
}

func TestExampleConfiguration(t *testing.T) {
	conf, err := LoadConfiguration("../../mortgage.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("example configuration should validate, got %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example configuration should not warn, got %v", warnings)
	}
	if _, err := conf.LoanScenarios(); err != nil {
		t.Errorf("example scenarios should be valid, got %v", err)
	}
}
