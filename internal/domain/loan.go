package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFrequency is the repayment cadence of the loan.
type PaymentFrequency string

const (
	Weekly      PaymentFrequency = "Weekly"
	Fortnightly PaymentFrequency = "Fortnightly"
	Monthly     PaymentFrequency = "Monthly"
)

// ParsePaymentFrequency normalizes a user-supplied frequency string.
// Matching is case-insensitive; anything outside the three supported
// cadences is rejected before any simulation starts.
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly":
		return Weekly, nil
	case "fortnightly":
		return Fortnightly, nil
	case "monthly":
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q (choose Weekly, Fortnightly, or Monthly)", ErrUnknownFrequency, s)
	}
}

// PeriodsPerYear returns the number of payment periods per year.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f {
	case Weekly:
		return 52
	case Fortnightly:
		return 26
	case Monthly:
		return 12
	default:
		return 0
	}
}

// Valid reports whether the frequency is one of the supported cadences.
func (f PaymentFrequency) Valid() bool {
	return f.PeriodsPerYear() > 0
}

// LoanTerms describes the mortgage being simulated. Immutable once a
// simulation starts.
type LoanTerms struct {
	Principal          decimal.Decimal  `yaml:"amount" json:"amount"`
	Frequency          PaymentFrequency `yaml:"payment_frequency" json:"payment_frequency"`
	PaymentAmount      decimal.Decimal  `yaml:"payment_amount" json:"payment_amount"`
	DurationYears      int              `yaml:"duration_years" json:"duration_years"`
	AnnualInterestRate decimal.Decimal  `yaml:"annual_interest_rate" json:"annual_interest_rate"` // fraction, e.g. 0.0624
	StartDate          Date             `yaml:"start_date" json:"start_date"`
}

// MaxPeriods is the simulation safety cap: double the stated term.
// Hitting it without zeroing the balance is a distinct terminal state,
// not an error.
func (lt LoanTerms) MaxPeriods() int {
	return lt.DurationYears * lt.Frequency.PeriodsPerYear() * 2
}

// OffsetAccount is a savings balance netted against the loan principal
// for interest calculation only. Growth is a linear accrual added once
// per period and never resets; it may exceed the loan balance, in which
// case the effective interest-bearing balance clamps to zero.
type OffsetAccount struct {
	StartingBalance decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	MonthlyGrowth   decimal.Decimal `yaml:"monthly_growth" json:"monthly_growth"`
}

// GrowthPerPeriod converts the monthly growth amount to a per-period
// increment: monthly growth x 12 / periods per year.
func (oa OffsetAccount) GrowthPerPeriod(periodsPerYear int) decimal.Decimal {
	if periodsPerYear <= 0 {
		return decimal.Zero
	}
	return oa.MonthlyGrowth.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(int64(periodsPerYear)))
}

// PaymentPeriodRecord is one emitted row of the amortization schedule.
// All amounts are raw decimals; currency formatting belongs to the
// report renderer.
type PaymentPeriodRecord struct {
	Period           int             `json:"period"`
	LoanYear         int             `json:"loan_year"`
	PeriodInLoanYear int             `json:"period_in_loan_year"`
	PaymentDate      time.Time       `json:"payment_date"`
	DayOfWeek        string          `json:"day_of_week"`
	StartingBalance  decimal.Decimal `json:"starting_balance"`
	OffsetBalance    decimal.Decimal `json:"offset_balance"`
	EffectiveBalance decimal.Decimal `json:"effective_balance"`
	InterestPaid     decimal.Decimal `json:"interest_paid"`
	PrincipalPaid    decimal.Decimal `json:"principal_paid"`
	ActualPayment    decimal.Decimal `json:"actual_payment"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
	RemainingYears   int             `json:"remaining_years"`
	RemainingMonths  int             `json:"remaining_months"`
}

// TerminalReason distinguishes a paid-off loan from a simulation that
// exhausted the safety cap without converging.
type TerminalReason string

const (
	TerminalPaidOff   TerminalReason = "paid_off"
	TerminalSafetyCap TerminalReason = "safety_cap_reached"
)

// AmortizationSchedule is the full ordered output of one simulation.
type AmortizationSchedule struct {
	Records      []PaymentPeriodRecord `json:"records"`
	Terminal     TerminalReason        `json:"terminal"`
	TotalPeriods int                   `json:"total_periods"`
}

// PaidOff reports whether the loan balance reached zero.
func (s *AmortizationSchedule) PaidOff() bool {
	return s.Terminal == TerminalPaidOff
}

// TotalAmountPaid sums the actual payments across all periods.
func (s *AmortizationSchedule) TotalAmountPaid() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Records {
		total = total.Add(r.ActualPayment)
	}
	return total
}

// TotalInterestPaid sums the interest accrued across all periods.
func (s *AmortizationSchedule) TotalInterestPaid() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Records {
		total = total.Add(r.InterestPaid)
	}
	return total
}

// TotalPrincipalPaid sums the principal repaid across all periods. For
// a paid-off loan this equals the original principal.
func (s *AmortizationSchedule) TotalPrincipalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Records {
		total = total.Add(r.PrincipalPaid)
	}
	return total
}
