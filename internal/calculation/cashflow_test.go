package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

func mustParseDMY(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := dateutil.ParseDMY(s)
	require.NoError(t, err)
	return date
}

func runDefaultScenario(t *testing.T, settlement string) *domain.MovePlanResult {
	t.Helper()
	engine := NewCashFlowEngine()
	result, err := engine.Simulate(decimal.NewFromInt(93000), mustParseDMY(t, settlement), domain.DefaultMovePlanRules())
	require.NoError(t, err)
	return result
}

func TestSimulateCashFlowValidation(t *testing.T) {
	engine := NewCashFlowEngine()
	settlement := mustParseDMY(t, "01/08/2025")

	rules := domain.DefaultMovePlanRules()
	rules.AnchorDate = domain.Date{}
	_, err := engine.Simulate(decimal.NewFromInt(93000), settlement, rules)
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))

	rules = domain.DefaultMovePlanRules()
	rules.Mortgage.IntervalDays = 0
	_, err = engine.Simulate(decimal.NewFromInt(93000), settlement, rules)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestSimulateCashFlowDerivedDates(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")
	assert.Equal(t, "09/08/2025", dateutil.FormatDMY(result.MoveOutDate))
	assert.Equal(t, "01/10/2025", dateutil.FormatDMY(result.WindowEnd))
	assert.Equal(t, "01/10/2025", dateutil.FormatDMY(result.Summary.WindowEnd))
}

func TestSimulateCashFlowSummaryTotals(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")
	summary := result.Summary

	// Income: 7400 on the anchor day plus two post-settlement months of 8261.
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(23922)), "income: %s", summary.TotalIncome)
	// Expenses: 52046 settlement + 22900 repairs/rent + 4200 moving + 4 mortgage payments.
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(88786)), "expenses: %s", summary.TotalExpenses)
	assert.True(t, summary.NetChange.Equal(decimal.NewFromInt(-64864)), "net: %s", summary.NetChange)
	assert.True(t, summary.FinalBalance.Equal(decimal.NewFromInt(28136)), "final: %s", summary.FinalBalance)
	assert.True(t, summary.Viable)
	assert.Equal(t, `Settlement "Fri 01/08"`, summary.PlanName)

	assert.True(t, summary.CategoryTotals[domain.CategorySettlement].Equal(decimal.NewFromInt(-52046)))
	assert.True(t, summary.CategoryTotals[domain.CategoryPostSettlement].Equal(decimal.NewFromInt(-22900)))
	assert.True(t, summary.CategoryTotals[domain.CategoryMoving].Equal(decimal.NewFromInt(-4200)))
	assert.True(t, summary.CategoryTotals[domain.CategoryMortgage].Equal(decimal.NewFromInt(-9640)))
	assert.True(t, summary.CategoryTotals[domain.CategoryInitial].Equal(decimal.NewFromInt(93000)))
}

func TestSimulateCashFlowWindowIsContiguous(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")
	records := result.Records
	require.NotEmpty(t, records)

	// Window runs from the day before the anchor through the window end.
	assert.Equal(t, "31/07/2025", dateutil.FormatDMY(records[0].Date))
	assert.Equal(t, "01/10/2025", dateutil.FormatDMY(records[len(records)-1].Date))

	expected := records[0].Date
	for _, r := range records {
		if r.Date.After(expected) {
			expected = expected.AddDate(0, 0, 1)
		}
		assert.True(t, dateutil.SameDay(r.Date, expected), "gap at %s", dateutil.FormatDMY(r.Date))
		assert.Equal(t, r.Date.Weekday().String(), r.DayOfWeek)
	}
}

func TestSimulateCashFlowInitialSeedsBalance(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")
	first := result.Records[0]
	assert.Equal(t, domain.CategoryInitial, first.Category)
	assert.Equal(t, "Starting Balance", first.Description)
	assert.True(t, first.RunningBalance.Equal(decimal.NewFromInt(93000)))
}

func TestSimulateCashFlowSameDayOrdering(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")

	var anchorDay []domain.DailyBalanceRecord
	for _, r := range result.Records {
		if dateutil.FormatDMY(r.Date) == "01/08/2025" {
			anchorDay = append(anchorDay, r)
		}
	}
	require.Len(t, anchorDay, 3)
	assert.Equal(t, "Additional Savings #1", anchorDay[0].Description)
	assert.Equal(t, "Additional Savings #2", anchorDay[1].Description)
	assert.Equal(t, "Additional Savings #3", anchorDay[2].Description)
	for i, r := range anchorDay {
		assert.Equal(t, i+1, r.EventIndex)
		assert.Equal(t, 3, r.EventCount)
	}
	// 93000 + 5700 + 1200 + 500
	assert.True(t, anchorDay[2].RunningBalance.Equal(decimal.NewFromInt(100400)))
}

func TestSimulateCashFlowQuietDays(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")

	var quiet *domain.DailyBalanceRecord
	for i, r := range result.Records {
		if dateutil.FormatDMY(r.Date) == "31/08/2025" {
			quiet = &result.Records[i]
			break
		}
	}
	require.NotNil(t, quiet)
	assert.Equal(t, domain.NoTransactions, quiet.Description)
	assert.True(t, quiet.Amount.IsZero())
	assert.Zero(t, quiet.EventCount)
}

func TestSimulateCashFlowRunningBalanceIsConsistent(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")

	balance := decimal.Zero
	for _, r := range result.Records {
		if r.Category == domain.CategoryInitial {
			balance = r.Amount
		} else {
			balance = balance.Add(r.Amount)
		}
		assert.True(t, r.RunningBalance.Equal(balance),
			"%s %q: got %s want %s", dateutil.FormatDMY(r.Date), r.Description, r.RunningBalance, balance)
	}
}

func TestSimulateCashFlowMortgagePayments(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")

	var payments []domain.DailyBalanceRecord
	for _, r := range result.Records {
		if r.Category == domain.CategoryMortgage {
			payments = append(payments, r)
		}
	}
	require.Len(t, payments, 4)
	wantDates := []string{"15/08/2025", "29/08/2025", "12/09/2025", "26/09/2025"}
	wantNames := []string{"Mortgage Payment #1", "Mortgage Payment #2", "Mortgage Payment #3", "Mortgage Payment #4"}
	for i, p := range payments {
		assert.Equal(t, wantDates[i], dateutil.FormatDMY(p.Date))
		assert.Equal(t, wantNames[i], p.Description)
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(-2410)))
	}
}

func TestSimulateCashFlowMilestonesDoNotMoveMoney(t *testing.T) {
	result := runDefaultScenario(t, "01/08/2025")

	found := 0
	for _, r := range result.Records {
		if r.Category.IsMilestone() {
			found++
			assert.True(t, r.Amount.IsZero(), "milestone %q", r.Description)
		}
	}
	// HYKO x2, inspection, insurance, packing, unpacking. The walkthrough
	// and pre-settlement meeting land before the window opens for an
	// August 1 settlement and are not walked.
	assert.Equal(t, 6, found)
}

func TestSimulateCashFlowPreSettlementIncome(t *testing.T) {
	// A September settlement leaves the 1st of September pre-settlement:
	// the two recurring amounts apply but the August-only extra does not.
	result := runDefaultScenario(t, "02/09/2025")

	var sepFirst []domain.DailyBalanceRecord
	for _, r := range result.Records {
		if dateutil.FormatDMY(r.Date) == "01/09/2025" {
			sepFirst = append(sepFirst, r)
		}
	}
	require.Len(t, sepFirst, 2)
	assert.Equal(t, domain.CategoryPreSettlementIncome, sepFirst[0].Category)
	total := sepFirst[0].Amount.Add(sepFirst[1].Amount)
	assert.True(t, total.Equal(decimal.NewFromInt(6200)))

	assert.True(t, result.Summary.TotalIncome.Equal(decimal.NewFromInt(30122)), "income: %s", result.Summary.TotalIncome)
	assert.True(t, result.Summary.FinalBalance.Equal(decimal.NewFromInt(34336)), "final: %s", result.Summary.FinalBalance)
}

func TestSimulateCashFlowNotViableWhenBalanceGoesNegative(t *testing.T) {
	engine := NewCashFlowEngine()
	result, err := engine.Simulate(decimal.Zero, mustParseDMY(t, "01/08/2025"), domain.DefaultMovePlanRules())
	require.NoError(t, err)
	assert.False(t, result.Summary.Viable)
	assert.True(t, result.Summary.FinalBalance.IsNegative())
}

func TestSimulateCashFlowDeterministic(t *testing.T) {
	a := runDefaultScenario(t, "01/08/2025")
	b := runDefaultScenario(t, "01/08/2025")
	assert.Equal(t, a.Summary, b.Summary)
	assert.Equal(t, a.Records, b.Records)
}
