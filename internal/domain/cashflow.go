package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category tags a cash-flow event for later aggregation.
type Category string

const (
	CategoryInitial             Category = "INITIAL"
	CategoryIncome              Category = "INCOME"
	CategorySettlement          Category = "SETTLEMENT"
	CategoryPostSettlement      Category = "POST-SETTLEMENT"
	CategoryMoving              Category = "MOVING"
	CategoryPreSettlementIncome Category = "PRE-SETTLEMENT INCOME"
	CategoryMonthlyIncome       Category = "MONTHLY INCOME"
	CategoryMortgage            Category = "MORTGAGE"

	// Zero-amount milestone tags.
	CategoryHyko        Category = "HYKO"
	CategoryInspection  Category = "INSPECTION"
	CategoryInsurance   Category = "INSURANCE"
	CategoryWalkthrough Category = "WALKTHROUGH"
	CategoryMeeting     Category = "MEETING"
	CategoryPacking     Category = "PACKING"
	CategoryUnpacking   Category = "UNPACKING"
)

// IsIncome reports whether the category counts toward total income.
// The INITIAL seed is a starting balance, not income.
func (c Category) IsIncome() bool {
	switch c {
	case CategoryIncome, CategoryPreSettlementIncome, CategoryMonthlyIncome:
		return true
	}
	return false
}

// IsExpense reports whether the category counts toward total expenses.
func (c Category) IsExpense() bool {
	switch c {
	case CategorySettlement, CategoryPostSettlement, CategoryMoving, CategoryMortgage:
		return true
	}
	return false
}

// IsMilestone reports whether the category is a zero-amount marker.
func (c Category) IsMilestone() bool {
	switch c {
	case CategoryHyko, CategoryInspection, CategoryInsurance,
		CategoryWalkthrough, CategoryMeeting, CategoryPacking, CategoryUnpacking:
		return true
	}
	return false
}

// CashFlowEvent is a single scheduled movement (or zero-amount
// milestone) on a calendar date. Events sharing a date are applied in
// the order they were scheduled.
type CashFlowEvent struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
}

// NoTransactions is the description carried by records for days with
// no scheduled events.
const NoTransactions = "No transactions"

// DailyBalanceRecord is one row of the daily cash-flow projection.
// Days with several events emit one record per event; EventIndex and
// EventCount let a renderer label them "(1/3)" without re-grouping.
type DailyBalanceRecord struct {
	Date           time.Time       `json:"date"`
	DayOfWeek      string          `json:"day_of_week"`
	Category       Category        `json:"category,omitempty"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	EventIndex     int             `json:"event_index,omitempty"`
	EventCount     int             `json:"event_count,omitempty"`
}

// MovePlanSummary aggregates one scenario's cash-flow run.
type MovePlanSummary struct {
	PlanName         string                       `json:"plan_name"`
	SettlementDate   time.Time                    `json:"settlement_date"`
	MoveOutDate      time.Time                    `json:"move_out_date"`
	WindowEnd        time.Time                    `json:"window_end"`
	FinalBalance     decimal.Decimal              `json:"final_balance"`
	CategoryTotals   map[Category]decimal.Decimal `json:"category_totals"`
	TotalIncome      decimal.Decimal              `json:"total_income"`
	TotalExpenses    decimal.Decimal              `json:"total_expenses"`
	NetChange        decimal.Decimal              `json:"net_change"`
	Viable           bool                         `json:"viable"`
	UsedFallbackDate bool                         `json:"used_fallback_date,omitempty"`
}

// MovePlanResult is the full output of one cash-flow simulation.
type MovePlanResult struct {
	Records     []DailyBalanceRecord `json:"records"`
	MoveOutDate time.Time            `json:"move_out_date"`
	WindowEnd   time.Time            `json:"window_end"`
	Summary     MovePlanSummary      `json:"summary"`
}

// SettlementDate is a resolved candidate settlement date. UsedFallback
// marks scenarios whose configured date failed to parse and were
// substituted with a documented default.
type SettlementDate struct {
	Date         time.Time
	UsedFallback bool
}

// ScenarioComparison ranks the cash-flow scenarios. Scenarios and
// Results are ordered by settlement date ascending for presentation;
// Best and Worst are selected by final balance with first-occurrence
// tie-breaking over the input order.
type ScenarioComparison struct {
	StartingBalance decimal.Decimal   `json:"starting_balance"`
	Scenarios       []MovePlanSummary `json:"scenarios"`
	Results         []*MovePlanResult `json:"results,omitempty"`
	Best            MovePlanSummary   `json:"best"`
	Worst           MovePlanSummary   `json:"worst"`
	AllViable       bool              `json:"all_viable"`
}

// ViableCount returns how many scenarios finished with a non-negative
// balance.
func (sc *ScenarioComparison) ViableCount() int {
	n := 0
	for _, s := range sc.Scenarios {
		if s.Viable {
			n++
		}
	}
	return n
}

// PlanName derives a scenario label from its settlement date, e.g.
// `Settlement "Fri 01/08"`.
func PlanName(settlement time.Time) string {
	return fmt.Sprintf("Settlement %q", settlement.Format("Mon 02/01"))
}

// Report is the envelope handed to output formatters. Either section
// may be nil; formatters render whatever is present.
type Report struct {
	Loan       *LoanConfig           `json:"loan,omitempty"`
	Schedule   *AmortizationSchedule `json:"schedule,omitempty"`
	Comparison *ScenarioComparison   `json:"comparison,omitempty"`
}
