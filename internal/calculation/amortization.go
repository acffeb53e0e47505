package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// AmortizationEngine simulates mortgage repayment with an offset
// account, period by period, until payoff or the safety cap.
type AmortizationEngine struct {
	Logger Logger
}

// NewAmortizationEngine creates an engine with a no-op logger.
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger resets to no-op.
func (e *AmortizationEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// PeriodicRate converts a nominal annual rate to the
// compounding-equivalent per-period rate: (1+annual)^(1/n) - 1.
// This is the effective-rate identity, not a simple division.
func PeriodicRate(annual decimal.Decimal, periodsPerYear int) decimal.Decimal {
	root := math.Pow(decimal.NewFromInt(1).Add(annual).InexactFloat64(), 1/float64(periodsPerYear))
	return decimal.NewFromFloat(root - 1)
}

// paymentDate computes the date of payment n (1-based) from the loan
// start date. Weekly and fortnightly payments use exact day strides.
// Monthly payments use a fixed 365.25/12-day stride, which drifts
// against real calendar months over long terms.
// TODO: calendar-month stepping with day-of-month clamping would track
// real statements; existing reports depend on the fixed stride.
func paymentDate(start time.Time, freq domain.PaymentFrequency, period int) time.Time {
	n := period - 1
	switch freq {
	case domain.Weekly:
		return start.AddDate(0, 0, 7*n)
	case domain.Fortnightly:
		return start.AddDate(0, 0, 14*n)
	default: // Monthly
		hours := float64(n) * 365.25 / 12 * 24
		return start.Add(time.Duration(hours * float64(time.Hour)))
	}
}

// remainingTerm expresses a period count as whole years plus rounded
// months, carrying a 12-month round into the year count.
func remainingTerm(remainingPeriods, periodsPerYear int) (years, months int) {
	years = remainingPeriods / periodsPerYear
	fraction := float64(remainingPeriods%periodsPerYear) / float64(periodsPerYear) * 12
	months = int(math.Round(fraction))
	if months == 12 {
		years++
		months = 0
	}
	return years, months
}

// Simulate runs the amortization loop. It is a pure function of its
// inputs: it emits the full ordered schedule plus a terminal reason
// distinguishing payoff from safety-cap exhaustion. Hitting the cap is
// a valid result (the loan did not amortize within twice its stated
// term), not an error.
func (e *AmortizationEngine) Simulate(terms domain.LoanTerms, offset domain.OffsetAccount) (*domain.AmortizationSchedule, error) {
	if !terms.Frequency.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFrequency, terms.Frequency)
	}
	if terms.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidAmount)
	}
	if terms.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrInvalidAmount)
	}
	if terms.DurationYears <= 0 {
		return nil, fmt.Errorf("%w: loan duration must be at least one year", domain.ErrInvalidAmount)
	}
	if terms.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: loan start date is required", domain.ErrInvalidDate)
	}

	periodsPerYear := terms.Frequency.PeriodsPerYear()
	periodicRate := PeriodicRate(terms.AnnualInterestRate, periodsPerYear)
	growthPerPeriod := offset.GrowthPerPeriod(periodsPerYear)
	maxPeriods := terms.MaxPeriods()
	start := terms.StartDate.Time

	e.Logger.Debugf("amortization: %s periods/year=%d periodic_rate=%s cap=%d",
		terms.Frequency, periodsPerYear, periodicRate.StringFixed(8), maxPeriods)

	balance := terms.Principal
	offsetBalance := offset.StartingBalance
	periodsInLoanYear := make(map[int]int)
	records := make([]domain.PaymentPeriodRecord, 0, maxPeriods/2)
	terminal := domain.TerminalSafetyCap

	for period := 1; period <= maxPeriods; period++ {
		date := paymentDate(start, terms.Frequency, period)
		loanYear := dateutil.LoanYear(start, date)
		periodsInLoanYear[loanYear]++

		startingBalance := balance
		effective := balance.Sub(offsetBalance)
		if effective.IsNegative() {
			effective = decimal.Zero
		}
		interest := effective.Mul(periodicRate)
		principal := terms.PaymentAmount.Sub(interest)
		actualPayment := terms.PaymentAmount

		if balance.Sub(principal).IsNegative() {
			// Final period: never pay down more than the remaining balance.
			principal = balance
			actualPayment = principal.Add(interest)
			balance = decimal.Zero
		} else {
			balance = balance.Sub(principal)
		}

		records = append(records, domain.PaymentPeriodRecord{
			Period:           period,
			LoanYear:         loanYear,
			PeriodInLoanYear: periodsInLoanYear[loanYear],
			PaymentDate:      date,
			DayOfWeek:        date.Weekday().String(),
			StartingBalance:  startingBalance,
			OffsetBalance:    offsetBalance,
			EffectiveBalance: effective,
			InterestPaid:     interest,
			PrincipalPaid:    principal,
			ActualPayment:    actualPayment,
			EndingBalance:    balance,
		})

		if balance.IsZero() {
			terminal = domain.TerminalPaidOff
			break
		}

		// Offset growth lands after this period's interest, so it only
		// reduces the next period's effective balance.
		offsetBalance = offsetBalance.Add(growthPerPeriod)
	}

	totalPeriods := len(records)
	for i := range records {
		years, months := remainingTerm(totalPeriods-(i+1), periodsPerYear)
		records[i].RemainingYears = years
		records[i].RemainingMonths = months
	}

	if terminal == domain.TerminalSafetyCap {
		e.Logger.Warnf("amortization: balance %s remains after %d periods (safety cap)",
			balance.StringFixed(2), totalPeriods)
	} else {
		e.Logger.Infof("amortization: paid off in %d periods", totalPeriods)
	}

	return &domain.AmortizationSchedule{
		Records:      records,
		Terminal:     terminal,
		TotalPeriods: totalPeriods,
	}, nil
}
