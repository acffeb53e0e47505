package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// ScenarioEngine runs the cash-flow engine once per candidate
// settlement date and ranks the outcomes by final balance. Runs are
// independent: each scenario gets its own schedule and accumulator,
// sharing only the starting balance.
type ScenarioEngine struct {
	CashFlow *CashFlowEngine
	Logger   Logger
}

// NewScenarioEngine creates a scenario engine with a no-op logger.
func NewScenarioEngine() *ScenarioEngine {
	return &ScenarioEngine{
		CashFlow: NewCashFlowEngine(),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger on the aggregator and its cash-flow engine.
func (e *ScenarioEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.CashFlow.SetLogger(l)
}

// CompareScenarios simulates every settlement date and returns the
// comparison: scenarios ordered by settlement date ascending for
// presentation, best and worst selected by final balance with the
// first occurrence winning ties, and an overall viability flag.
func (e *ScenarioEngine) CompareScenarios(startingBalance decimal.Decimal, dates []domain.SettlementDate, rules domain.MovePlanRules) (*domain.ScenarioComparison, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no settlement dates supplied", domain.ErrInvalidDate)
	}

	results := make([]*domain.MovePlanResult, len(dates))
	for i, d := range dates {
		e.Logger.Infof("scenario %d/%d: settlement %s", i+1, len(dates), dateutil.FormatDMY(d.Date))
		result, err := e.CashFlow.Simulate(startingBalance, d.Date, rules)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", dateutil.FormatDMY(d.Date), err)
		}
		result.Summary.UsedFallbackDate = d.UsedFallback
		results[i] = result
	}

	// Best/worst selection runs over the input order so that equal
	// final balances resolve to the first occurrence.
	best, worst := results[0].Summary, results[0].Summary
	allViable := true
	for _, r := range results {
		if r.Summary.FinalBalance.GreaterThan(best.FinalBalance) {
			best = r.Summary
		}
		if r.Summary.FinalBalance.LessThan(worst.FinalBalance) {
			worst = r.Summary
		}
		if !r.Summary.Viable {
			allViable = false
		}
	}

	ordered := append([]*domain.MovePlanResult(nil), results...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Summary.SettlementDate.Before(ordered[j].Summary.SettlementDate)
	})

	summaries := make([]domain.MovePlanSummary, len(ordered))
	for i, r := range ordered {
		summaries[i] = r.Summary
	}

	return &domain.ScenarioComparison{
		StartingBalance: startingBalance,
		Scenarios:       summaries,
		Results:         ordered,
		Best:            best,
		Worst:           worst,
		AllViable:       allViable,
	}, nil
}
