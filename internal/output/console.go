package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// ConsoleFormatter renders the detailed text report via the pluggable
// interface. It prints whichever sections the report carries.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	if report.Loan != nil && report.Schedule != nil {
		writeLoanReport(&buf, report.Loan, report.Schedule)
	}
	if report.Comparison != nil {
		writeComparisonReport(&buf, report.Comparison)
	}
	if buf.Len() == 0 {
		fmt.Fprintln(&buf, "Nothing to report: no loan or move plan sections present.")
	}

	return buf.Bytes(), nil
}

func writeLoanReport(buf *bytes.Buffer, loan *domain.LoanConfig, schedule *domain.AmortizationSchedule) {
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintln(buf, "MORTGAGE REPAYMENT ANALYSIS (WITH OFFSET ACCOUNT)")
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "LOAN PARAMETERS:")
	fmt.Fprintf(buf, "  Loan Amount:           %s\n", FormatCurrency(loan.Terms.Principal))
	fmt.Fprintf(buf, "  Payment:               %s %s\n", FormatCurrency(loan.Terms.PaymentAmount), loan.Terms.Frequency)
	fmt.Fprintf(buf, "  Stated Term:           %d years\n", loan.Terms.DurationYears)
	fmt.Fprintf(buf, "  Annual Interest Rate:  %s\n", FormatPercentage(loan.Terms.AnnualInterestRate))
	fmt.Fprintf(buf, "  Start Date:            %s\n", dateutil.FormatDMY(loan.Terms.StartDate.Time))
	fmt.Fprintf(buf, "  Offset Balance:        %s (+%s/month)\n",
		FormatCurrency(loan.Offset.StartingBalance), FormatCurrency(loan.Offset.MonthlyGrowth))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "RESULTS:")
	if schedule.PaidOff() {
		last := schedule.Records[len(schedule.Records)-1]
		years, months := payoffTermFromPeriods(schedule.TotalPeriods, loan.Terms.Frequency.PeriodsPerYear())
		fmt.Fprintf(buf, "  Loan paid off on %s (%s) after %d payments.\n",
			dateutil.FormatDMY(last.PaymentDate), last.DayOfWeek, schedule.TotalPeriods)
		fmt.Fprintf(buf, "  Effective Term:        %d years %d months\n", years, months)
	} else {
		last := schedule.Records[len(schedule.Records)-1]
		fmt.Fprintf(buf, "  NOT PAID OFF within %d payments; %s still owing.\n",
			schedule.TotalPeriods, FormatCurrency(last.EndingBalance))
		fmt.Fprintln(buf, "  The payment amount may not cover interest at this rate.")
	}
	fmt.Fprintf(buf, "  Total Amount Paid:     %s\n", FormatCurrency(schedule.TotalAmountPaid()))
	fmt.Fprintf(buf, "  Total Interest Paid:   %s\n", FormatCurrency(schedule.TotalInterestPaid()))
	fmt.Fprintf(buf, "  Total Principal Paid:  %s\n", FormatCurrency(schedule.TotalPrincipalPaid()))
	fmt.Fprintln(buf)

	writeLoanYearBreakdown(buf, schedule)
	fmt.Fprintln(buf)
}

// writeLoanYearBreakdown prints per-loan-year subtotals rather than the
// full period-by-period table; the schedule CSV carries every row.
func writeLoanYearBreakdown(buf *bytes.Buffer, schedule *domain.AmortizationSchedule) {
	fmt.Fprintln(buf, "YEAR-BY-YEAR BREAKDOWN:")
	fmt.Fprintf(buf, "  %-5s %-10s %15s %15s %18s\n", "YEAR", "PAYMENTS", "INTEREST", "PRINCIPAL", "ENDING BALANCE")
	fmt.Fprintf(buf, "  %s\n", strings.Repeat("-", 67))

	year := 0
	payments := 0
	interest := decimal.Zero
	principal := decimal.Zero
	ending := decimal.Zero
	flush := func() {
		if payments == 0 {
			return
		}
		fmt.Fprintf(buf, "  %-5d %-10d %15s %15s %18s\n",
			year, payments, FormatCurrency(interest), FormatCurrency(principal), FormatCurrency(ending))
	}
	for _, r := range schedule.Records {
		if r.LoanYear != year {
			flush()
			year = r.LoanYear
			payments = 0
			interest = decimal.Zero
			principal = decimal.Zero
		}
		payments++
		interest = interest.Add(r.InterestPaid)
		principal = principal.Add(r.PrincipalPaid)
		ending = r.EndingBalance
	}
	flush()
}

func writeComparisonReport(buf *bytes.Buffer, comparison *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintln(buf, "SETTLEMENT DATE COMPARISON")
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintf(buf, "Starting Balance: %s\n", FormatCurrency(comparison.StartingBalance))
	fmt.Fprintf(buf, "Scenarios:        %d (%d viable)\n", len(comparison.Scenarios), comparison.ViableCount())
	fmt.Fprintln(buf)

	for i, sc := range comparison.Scenarios {
		fmt.Fprintf(buf, "SCENARIO %d: %s\n", i+1, sc.PlanName)
		fmt.Fprintln(buf, strings.Repeat("=", 50))
		fmt.Fprintf(buf, "  Settlement Date:  %s (%s)\n", dateutil.FormatDMY(sc.SettlementDate), sc.SettlementDate.Weekday())
		fmt.Fprintf(buf, "  Move-Out Date:    %s (%s)\n", dateutil.FormatDMY(sc.MoveOutDate), sc.MoveOutDate.Weekday())
		fmt.Fprintf(buf, "  Window Ends:      %s\n", dateutil.FormatDMY(sc.WindowEnd))
		if sc.UsedFallbackDate {
			fmt.Fprintln(buf, "  NOTE: configured date was invalid; default date substituted.")
		}
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "  CATEGORY TOTALS:")
		for _, category := range orderedCategories(sc.CategoryTotals) {
			total := sc.CategoryTotals[category]
			if category.IsMilestone() || category == domain.CategoryInitial {
				continue
			}
			fmt.Fprintf(buf, "    %-25s %15s\n", category, FormatSignedCurrency(total))
		}
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "  Total Income:     %s\n", FormatCurrency(sc.TotalIncome))
		fmt.Fprintf(buf, "  Total Expenses:   %s\n", FormatCurrency(sc.TotalExpenses))
		fmt.Fprintf(buf, "  Net Change:       %s\n", FormatSignedCurrency(sc.NetChange))
		fmt.Fprintf(buf, "  FINAL BALANCE:    %s\n", FormatCurrency(sc.FinalBalance))
		if sc.Viable {
			fmt.Fprintln(buf, "  STATUS:           VIABLE")
		} else {
			fmt.Fprintln(buf, "  STATUS:           NOT VIABLE (balance goes negative)")
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "SUMMARY & RECOMMENDATIONS")
	fmt.Fprintln(buf, "=========================")
	fmt.Fprintf(buf, "Best scenario:  %s (final balance %s)\n",
		comparison.Best.PlanName, FormatCurrency(comparison.Best.FinalBalance))
	fmt.Fprintf(buf, "Worst scenario: %s (final balance %s)\n",
		comparison.Worst.PlanName, FormatCurrency(comparison.Worst.FinalBalance))
	spread := comparison.Best.FinalBalance.Sub(comparison.Worst.FinalBalance)
	fmt.Fprintf(buf, "Spread:         %s\n", FormatCurrency(spread))
	if comparison.AllViable {
		fmt.Fprintln(buf, "All scenarios stay in the black for the full window.")
	} else {
		fmt.Fprintln(buf, "WARNING: at least one scenario runs a negative balance.")
	}
}

// orderedCategories returns map keys in a stable, report-friendly order:
// income categories first, then expenses, then everything else by name.
func orderedCategories(totals map[domain.Category]decimal.Decimal) []domain.Category {
	categories := make([]domain.Category, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	rank := func(c domain.Category) int {
		switch {
		case c.IsIncome():
			return 0
		case c.IsExpense():
			return 1
		default:
			return 2
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})
	return categories
}

func payoffTermFromPeriods(totalPeriods, periodsPerYear int) (years, months int) {
	years = totalPeriods / periodsPerYear
	months = (totalPeriods % periodsPerYear) * 12 / periodsPerYear
	return years, months
}
