package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeplan/homeplan/pkg/dateutil"
)

// Date is a calendar date carried in DD/MM/YYYY form in configuration
// files and reports. It implements encoding.TextUnmarshaler so it
// decodes directly from YAML scalars.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalText parses a DD/MM/YYYY date string.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := dateutil.ParseDMY(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q (want DD/MM/YYYY)", ErrInvalidDate, string(text))
	}
	d.Time = t
	return nil
}

// MarshalText renders the date as DD/MM/YYYY.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(dateutil.FormatDMY(d.Time)), nil
}

func (d Date) String() string {
	return dateutil.FormatDMY(d.Time)
}

// LoanConfig groups the amortization inputs.
type LoanConfig struct {
	Terms  LoanTerms     `yaml:"terms" json:"terms"`
	Offset OffsetAccount `yaml:"offset" json:"offset"`
}

// MovePlanConfig groups the moving / settlement analysis inputs.
// Settlement dates stay as raw strings here: an individual date that
// fails to parse falls back to a documented default instead of
// aborting the whole batch.
type MovePlanConfig struct {
	StartingBalance decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	SettlementDates []string        `yaml:"settlement_dates" json:"settlement_dates"`
	Rules           *MovePlanRules  `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Configuration is the complete input document. Either section may be
// omitted when only one analysis is requested.
type Configuration struct {
	Loan     *LoanConfig     `yaml:"loan,omitempty" json:"loan,omitempty"`
	MovePlan *MovePlanConfig `yaml:"move_plan,omitempty" json:"move_plan,omitempty"`
}
