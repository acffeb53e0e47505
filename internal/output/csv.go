package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// CSVSummaryFormatter implements the summary CSV output (one row per scenario).
type CSVSummaryFormatter struct{}

func (c CSVSummaryFormatter) Name() string { return "csv" }

func (c CSVSummaryFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "SettlementDate", "MoveOutDate", "WindowEnd", "TotalIncome", "TotalExpenses", "NetChange", "FinalBalance", "Viable"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if report.Comparison != nil {
		for _, sc := range report.Comparison.Scenarios {
			row := []string{
				sc.PlanName,
				dateutil.FormatDMY(sc.SettlementDate),
				dateutil.FormatDMY(sc.MoveOutDate),
				dateutil.FormatDMY(sc.WindowEnd),
				sc.TotalIncome.StringFixed(2),
				sc.TotalExpenses.StringFixed(2),
				sc.NetChange.StringFixed(2),
				sc.FinalBalance.StringFixed(2),
				strconv.FormatBool(sc.Viable),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVScheduleFormatter exports the full amortization schedule, one row
// per payment period.
type CSVScheduleFormatter struct{}

func (c CSVScheduleFormatter) Name() string { return "schedule-csv" }

func (c CSVScheduleFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "LoanYear", "PeriodInLoanYear", "PaymentDate", "DayOfWeek", "StartingBalance", "OffsetBalance", "EffectiveBalance", "InterestPaid", "PrincipalPaid", "ActualPayment", "EndingBalance", "RemainingYears", "RemainingMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if report.Schedule != nil {
		for _, r := range report.Schedule.Records {
			row := []string{
				strconv.Itoa(r.Period),
				strconv.Itoa(r.LoanYear),
				strconv.Itoa(r.PeriodInLoanYear),
				dateutil.FormatDMY(r.PaymentDate),
				r.DayOfWeek,
				r.StartingBalance.StringFixed(2),
				r.OffsetBalance.StringFixed(2),
				r.EffectiveBalance.StringFixed(2),
				r.InterestPaid.StringFixed(2),
				r.PrincipalPaid.StringFixed(2),
				r.ActualPayment.StringFixed(2),
				r.EndingBalance.StringFixed(2),
				strconv.Itoa(r.RemainingYears),
				strconv.Itoa(r.RemainingMonths),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDailyFormatter exports every scenario's daily balance records. Days
// with several events get an "(i/n)" suffix on the description so the
// rows group visibly without extra columns.
type CSVDailyFormatter struct{}

func (c CSVDailyFormatter) Name() string { return "daily-csv" }

func (c CSVDailyFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Date", "DayOfWeek", "Category", "Description", "Amount", "RunningBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if report.Comparison != nil {
		for _, result := range report.Comparison.Results {
			for _, r := range result.Records {
				description := r.Description
				if r.EventCount > 1 {
					description = fmt.Sprintf("%s (%d/%d)", r.Description, r.EventIndex, r.EventCount)
				}
				row := []string{
					result.Summary.PlanName,
					dateutil.FormatDMY(r.Date),
					r.DayOfWeek,
					string(r.Category),
					description,
					r.Amount.StringFixed(2),
					r.RunningBalance.StringFixed(2),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
