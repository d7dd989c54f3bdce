package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func addLoanFlags(cmd *cobra.Command) {
	cmd.Flags().Int("principal", 0, "loan principal")
	cmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	cmd.Flags().Int("term", 0, "loan term in years")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("term")
}

// scenarioFromFlags builds the scenario described by --principal, --rate and
// --term. Values outside the policy bounds are logged and still computed.
func (a *app) scenarioFromFlags(cmd *cobra.Command) (mortgage.Scenario, error) {
	principal, _ := cmd.Flags().GetInt("principal")
	rate, _ := cmd.Flags().GetFloat64("rate")
	term, _ := cmd.Flags().GetInt("term")

	a.warnOutOfBounds(1, principal, rate, term)
	return mortgage.NewScenario(principal, rate, term)
}

func (a *app) warnOutOfBounds(index, principal int, rate float64, term int) {
	for _, warning := range validation.ValidateScenarioBounds(index, principal, rate, term, a.conf.Bounds()) {
		a.logger.Warn(warning,
			zap.String("op", "main"),
		)
	}
}

// parseScenario parses a PRINCIPAL:RATE:TERM argument such as 200000:6.5:30.
func parseScenario(arg string) (mortgage.Scenario, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return mortgage.Scenario{}, fmt.Errorf("expected PRINCIPAL:RATE:TERM, got %q", arg)
	}

	principal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return mortgage.Scenario{}, fmt.Errorf("invalid principal in %q: %w", arg, err)
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mortgage.Scenario{}, fmt.Errorf("invalid rate in %q: %w", arg, err)
	}
	term, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return mortgage.Scenario{}, fmt.Errorf("invalid term in %q: %w", arg, err)
	}

	return mortgage.NewScenario(principal, rate, term)
}

func newPaymentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Print the monthly payment and total interest of one loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := a.scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			summary, err := a.engine.Summarize(scenario)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.conf.Output.Format {
			case constants.OutputFormatCSV:
				output.CsvSummaries(out, []mortgage.Summary{summary})
			case constants.OutputFormatYAML:
				return output.YAMLSummaries(out, []mortgage.Summary{summary})
			default:
				output.PrettySummary(out, summary, a.formatter)
			}
			return nil
		},
	}
	addLoanFlags(cmd)
	return cmd
}

func newScheduleCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule of one loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := a.scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			schedule, err := a.engine.GenerateSchedule(scenario)
			if err != nil {
				return err
			}

			months, _ := cmd.Flags().GetInt("months")
			if months > 0 && months < len(schedule) {
				schedule = schedule[:months]
			}

			out := cmd.OutOrStdout()
			switch a.conf.Output.Format {
			case constants.OutputFormatCSV:
				output.CsvSchedule(out, schedule)
			case constants.OutputFormatYAML:
				return output.YAMLSchedule(out, schedule)
			default:
				output.PrettySchedule(out, schedule, 0)
			}
			return nil
		},
	}
	addLoanFlags(cmd)
	cmd.Flags().Int("months", 0, "print only the first N months (0 prints all)")
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [PRINCIPAL:RATE:TERM ...]",
		Short: "Compare the payments of several loans",
		Long: "Compare the monthly payment and total interest of several loans given as\n" +
			"PRINCIPAL:RATE:TERM arguments, or of the scenarios in the config file when\n" +
			"no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarios []mortgage.Scenario
			if len(args) == 0 {
				var err error
				scenarios, err = a.conf.LoanScenarios()
				if err != nil {
					return err
				}
			}
			for i, arg := range args {
				scenario, err := parseScenario(arg)
				if err != nil {
					return fmt.Errorf("scenario %d: %w", i+1, err)
				}
				a.warnOutOfBounds(i+1, scenario.Principal(), scenario.AnnualRatePercent(), scenario.TermYears())
				scenarios = append(scenarios, scenario)
			}

			summaries, err := a.engine.SummarizeAll(scenarios)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.conf.Output.Format {
			case constants.OutputFormatCSV:
				output.CsvSummaries(out, summaries)
			case constants.OutputFormatYAML:
				return output.YAMLSummaries(out, summaries)
			default:
				fmt.Fprint(out, mortgage.FormatComparison(summaries, a.formatter))
			}
			return nil
		},
	}
}
