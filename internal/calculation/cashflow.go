package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// CashFlowEngine projects a daily running balance across the
// settlement analysis window, driven by a declarative event rule
// table.
type CashFlowEngine struct {
	Logger Logger
}

// NewCashFlowEngine creates an engine with a no-op logger.
func NewCashFlowEngine() *CashFlowEngine {
	return &CashFlowEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger resets to no-op.
func (e *CashFlowEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// eventSchedule indexes scheduled events by day, preserving insertion
// order within each day. That order is the contract: it fixes the
// visible running-balance sequence for days with concurrent events.
type eventSchedule struct {
	byDay map[time.Time][]domain.CashFlowEvent
}

func newEventSchedule() *eventSchedule {
	return &eventSchedule{byDay: make(map[time.Time][]domain.CashFlowEvent)}
}

func (s *eventSchedule) add(ev domain.CashFlowEvent) {
	key := dateutil.DayKey(ev.Date)
	s.byDay[key] = append(s.byDay[key], ev)
}

func (s *eventSchedule) on(day time.Time) []domain.CashFlowEvent {
	return s.byDay[dateutil.DayKey(day)]
}

// Simulate runs one scenario: it derives the move-out date and window
// end from the settlement date, expands the rule table into a schedule,
// then walks the window day by day emitting one record per event (and a
// carry-forward record for quiet days).
func (e *CashFlowEngine) Simulate(startingBalance decimal.Decimal, settlement time.Time, rules domain.MovePlanRules) (*domain.MovePlanResult, error) {
	if rules.AnchorDate.IsZero() {
		return nil, fmt.Errorf("%w: move plan anchor date is required", domain.ErrInvalidDate)
	}
	if rules.Mortgage.IntervalDays <= 0 {
		return nil, fmt.Errorf("%w: mortgage payment interval must be positive", domain.ErrInvalidAmount)
	}

	anchor := rules.AnchorDate.Time
	moveOut := dateutil.MoveOutDate(settlement)
	windowEnd := dateutil.SettlementWindowEnd(settlement)
	windowStart := anchor.AddDate(0, 0, -1)

	e.Logger.Debugf("cash flow: settlement=%s move_out=%s window_end=%s",
		dateutil.FormatDMY(settlement), dateutil.FormatDMY(moveOut), dateutil.FormatDMY(windowEnd))

	sched := newEventSchedule()

	// The starting balance re-seeds the running balance rather than
	// adding to it; it sits one day before the anchor so every other
	// event lands on an already-seeded balance.
	sched.add(domain.CashFlowEvent{
		Date:        windowStart,
		Description: "Starting Balance",
		Amount:      startingBalance,
		Category:    domain.CategoryInitial,
	})

	for _, rule := range rules.OneOff {
		sched.add(domain.CashFlowEvent{
			Date:        rule.ResolveDate(anchor, settlement, moveOut),
			Description: rule.Description,
			Amount:      rule.Amount,
			Category:    rule.Category,
		})
	}

	e.scheduleMonthlyIncome(sched, anchor, settlement, windowEnd, rules.Monthly)
	e.scheduleMortgagePayments(sched, settlement, windowEnd, rules.Mortgage)

	records := e.walkWindow(sched, windowStart, windowEnd)
	summary := summarize(records, settlement, moveOut, windowEnd)

	return &domain.MovePlanResult{
		Records:     records,
		MoveOutDate: moveOut,
		WindowEnd:   windowEnd,
		Summary:     summary,
	}, nil
}

// scheduleMonthlyIncome adds the recurring first-of-month income from
// the anchor month through the window end. The anchor date itself is
// skipped: its one-off income rules already cover it. Months before
// settlement use the pre-settlement amounts (plus the anchor-month
// extra); months on or after settlement use the combined post-
// settlement amount.
func (e *CashFlowEngine) scheduleMonthlyIncome(sched *eventSchedule, anchor, settlement, windowEnd time.Time, rule domain.MonthlyIncomeRule) {
	for month := dateutil.MonthStart(anchor); !month.After(windowEnd); month = dateutil.NextMonthStart(month) {
		if dateutil.SameDay(month, anchor) {
			continue
		}
		if month.Before(settlement) {
			for _, amt := range rule.PreSettlement {
				sched.add(domain.CashFlowEvent{
					Date:        month,
					Description: amt.Description,
					Amount:      amt.Amount,
					Category:    domain.CategoryPreSettlementIncome,
				})
			}
			if rule.AnchorMonthExtra != nil &&
				month.Month() == anchor.Month() && month.Year() == anchor.Year() {
				sched.add(domain.CashFlowEvent{
					Date:        month,
					Description: rule.AnchorMonthExtra.Description,
					Amount:      rule.AnchorMonthExtra.Amount,
					Category:    domain.CategoryPreSettlementIncome,
				})
			}
		} else {
			sched.add(domain.CashFlowEvent{
				Date:        month,
				Description: rule.PostSettlement.Description,
				Amount:      rule.PostSettlement.Amount,
				Category:    domain.CategoryMonthlyIncome,
			})
		}
	}
}

// scheduleMortgagePayments adds the numbered periodic payments from
// settlement+StartOffsetDays through the window end.
func (e *CashFlowEngine) scheduleMortgagePayments(sched *eventSchedule, settlement, windowEnd time.Time, rule domain.PeriodicPaymentRule) {
	number := 1
	for date := settlement.AddDate(0, 0, rule.StartOffsetDays); !date.After(windowEnd); date = date.AddDate(0, 0, rule.IntervalDays) {
		sched.add(domain.CashFlowEvent{
			Date:        date,
			Description: fmt.Sprintf("%s #%d", rule.Description, number),
			Amount:      rule.Amount,
			Category:    rule.Category,
		})
		number++
	}
}

// walkWindow emits records for every day of the inclusive window with
// no gaps. The INITIAL event re-seeds the balance; every other event
// accumulates in schedule-insertion order.
func (e *CashFlowEngine) walkWindow(sched *eventSchedule, windowStart, windowEnd time.Time) []domain.DailyBalanceRecord {
	var records []domain.DailyBalanceRecord
	balance := decimal.Zero

	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		events := sched.on(day)
		if len(events) == 0 {
			records = append(records, domain.DailyBalanceRecord{
				Date:           day,
				DayOfWeek:      day.Weekday().String(),
				Description:    domain.NoTransactions,
				Amount:         decimal.Zero,
				RunningBalance: balance,
			})
			continue
		}
		for i, ev := range events {
			if ev.Category == domain.CategoryInitial {
				balance = ev.Amount
			} else {
				balance = balance.Add(ev.Amount)
			}
			records = append(records, domain.DailyBalanceRecord{
				Date:           day,
				DayOfWeek:      day.Weekday().String(),
				Category:       ev.Category,
				Description:    ev.Description,
				Amount:         ev.Amount,
				RunningBalance: balance,
				EventIndex:     i + 1,
				EventCount:     len(events),
			})
		}
	}
	return records
}

// summarize aggregates event amounts by category across the window and
// derives the scenario totals. Total income excludes the INITIAL seed.
func summarize(records []domain.DailyBalanceRecord, settlement, moveOut, windowEnd time.Time) domain.MovePlanSummary {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, r := range records {
		if r.Category == "" {
			continue
		}
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for category, total := range totals {
		switch {
		case category.IsIncome():
			income = income.Add(total)
		case category.IsExpense():
			expenses = expenses.Add(total.Abs())
		}
	}

	finalBalance := decimal.Zero
	if len(records) > 0 {
		finalBalance = records[len(records)-1].RunningBalance
	}

	return domain.MovePlanSummary{
		PlanName:       domain.PlanName(settlement),
		SettlementDate: settlement,
		MoveOutDate:    moveOut,
		WindowEnd:      windowEnd,
		FinalBalance:   finalBalance,
		CategoryTotals: totals,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetChange:      income.Sub(expenses),
		Viable:         !finalBalance.IsNegative(),
	}
}
