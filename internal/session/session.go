// Package session runs the interactive mortgage calculation on a console.
package session

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/prompt"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Settings holds the policy applied to one interactive session.
type Settings struct {
	Bounds        validation.Bounds
	PreviewMonths int
}

// Session asks for a loan, prints its payment figures and optionally the
// start of its amortization schedule.
type Session struct {
	prompter  *prompt.Prompter
	out       io.Writer
	engine    *mortgage.Engine
	formatter mortgage.CurrencyFormatter
	settings  Settings
	logger    *zap.Logger
}

// New creates a session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, engine *mortgage.Engine, formatter mortgage.CurrencyFormatter,
	settings Settings, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		prompter:  prompt.New(in, out, logger),
		out:       out,
		engine:    engine,
		formatter: formatter,
		settings:  settings,
		logger:    logger,
	}
}

// ReadScenario prompts until a principal, rate and term within the policy
// bounds have been entered.
func (s *Session) ReadScenario() (mortgage.Scenario, error) {
	b := s.settings.Bounds

	principal, err := s.prompter.Int("Principal", b.MinPrincipal, b.MaxPrincipal)
	if err != nil {
		return mortgage.Scenario{}, err
	}
	rate, err := s.prompter.Float("Annual Interest Rate", b.MinRate, b.MaxRate)
	if err != nil {
		return mortgage.Scenario{}, err
	}
	term, err := s.prompter.Int("Period (Years)", b.MinTerm, b.MaxTerm)
	if err != nil {
		return mortgage.Scenario{}, err
	}

	return mortgage.NewScenario(principal, rate, term)
}

// Run executes one full prompt, calculate and print cycle.
func (s *Session) Run() error {
	scenario, err := s.ReadScenario()
	if err != nil {
		return err
	}
	s.logger.Debug(fmt.Sprintf("calculating %s", scenario),
		zap.String("op", "session.Run"),
	)

	summary, err := s.engine.Summarize(scenario)
	if err != nil {
		return err
	}
	output.PrettySummary(s.out, summary, s.formatter)

	fmt.Fprint(s.out, "\n")
	wanted, err := s.prompter.Confirm("Generate Amortization Schedule?")
	if err != nil {
		return err
	}
	if !wanted {
		return nil
	}

	schedule, err := s.engine.GenerateSchedule(scenario)
	if err != nil {
		return err
	}

	limit := s.settings.PreviewMonths
	if limit > 0 && limit < len(schedule) {
		fmt.Fprintf(s.out, "\nFirst %d Months Amortization Schedule:\n", limit)
	} else {
		fmt.Fprintf(s.out, "\nAmortization Schedule:\n")
	}
	output.PrettySchedule(s.out, schedule, limit)
	return nil
}
