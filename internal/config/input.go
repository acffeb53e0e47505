package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/homeplan/homeplan/internal/domain"
	"github.com/homeplan/homeplan/pkg/dateutil"
)

// DefaultSettlementDates are substituted positionally for settlement
// date strings that fail to parse, so one bad scenario never aborts
// the batch.
var DefaultSettlementDates = []string{
	"01/08/2025",
	"08/08/2025",
	"15/08/2025",
	"22/08/2025",
	"02/09/2025",
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML configuration file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration rejects invalid input before any simulation
// starts. It also normalizes the payment frequency spelling.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Loan == nil && config.MovePlan == nil {
		return fmt.Errorf("configuration needs a loan section, a move_plan section, or both")
	}

	if config.Loan != nil {
		if err := ip.validateLoan(config.Loan); err != nil {
			return fmt.Errorf("loan validation failed: %w", err)
		}
	}

	if config.MovePlan != nil {
		if err := ip.validateMovePlan(config.MovePlan); err != nil {
			return fmt.Errorf("move plan validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateLoan(loan *domain.LoanConfig) error {
	frequency, err := domain.ParsePaymentFrequency(string(loan.Terms.Frequency))
	if err != nil {
		return err
	}
	loan.Terms.Frequency = frequency

	if loan.Terms.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidAmount)
	}
	if loan.Terms.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: payment amount must be positive", domain.ErrInvalidAmount)
	}
	if loan.Terms.DurationYears <= 0 {
		return fmt.Errorf("%w: loan duration must be at least one year", domain.ErrInvalidAmount)
	}
	if loan.Terms.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("%w: annual interest rate cannot be negative", domain.ErrInvalidAmount)
	}
	if loan.Terms.StartDate.IsZero() {
		return fmt.Errorf("%w: loan start date is required", domain.ErrInvalidDate)
	}
	if loan.Offset.StartingBalance.IsNegative() {
		return fmt.Errorf("%w: offset starting balance cannot be negative", domain.ErrInvalidAmount)
	}
	if loan.Offset.MonthlyGrowth.IsNegative() {
		return fmt.Errorf("%w: offset monthly growth cannot be negative", domain.ErrInvalidAmount)
	}
	return nil
}

func (ip *InputParser) validateMovePlan(plan *domain.MovePlanConfig) error {
	if plan.StartingBalance.IsNegative() {
		return fmt.Errorf("%w: starting balance cannot be negative", domain.ErrInvalidAmount)
	}
	if len(plan.SettlementDates) == 0 {
		return fmt.Errorf("%w: at least one settlement date is required", domain.ErrInvalidDate)
	}
	if plan.Rules != nil {
		if plan.Rules.AnchorDate.IsZero() {
			return fmt.Errorf("%w: rules anchor date is required", domain.ErrInvalidDate)
		}
		if plan.Rules.Mortgage.IntervalDays <= 0 {
			return fmt.Errorf("%w: mortgage payment interval must be positive", domain.ErrInvalidAmount)
		}
	}
	return nil
}

// ResolveSettlementDates parses the configured settlement date strings.
// A date that fails to parse is substituted with the positional default
// (first default when the list runs out) and flagged, so callers can
// report which scenarios used fallback values.
func (ip *InputParser) ResolveSettlementDates(plan *domain.MovePlanConfig) []domain.SettlementDate {
	resolved := make([]domain.SettlementDate, 0, len(plan.SettlementDates))
	for i, raw := range plan.SettlementDates {
		date, err := dateutil.ParseDMY(raw)
		if err != nil {
			fallback := DefaultSettlementDates[0]
			if i < len(DefaultSettlementDates) {
				fallback = DefaultSettlementDates[i]
			}
			date, _ = dateutil.ParseDMY(fallback)
			resolved = append(resolved, domain.SettlementDate{Date: date, UsedFallback: true})
			continue
		}
		resolved = append(resolved, domain.SettlementDate{Date: date})
	}
	return resolved
}

// MovePlanRules returns the configured rule table, or the default
// table when the configuration omits one.
func (ip *InputParser) MovePlanRules(plan *domain.MovePlanConfig) domain.MovePlanRules {
	if plan.Rules != nil {
		return *plan.Rules
	}
	return domain.DefaultMovePlanRules()
}

// CreateExampleConfiguration builds a configuration carrying the
// standard defaults for both analyses.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Loan: &domain.LoanConfig{
			Terms: domain.LoanTerms{
				Principal:          decimal.NewFromFloat(759476.79),
				Frequency:          domain.Fortnightly,
				PaymentAmount:      decimal.NewFromInt(2410),
				DurationYears:      30,
				AnnualInterestRate: decimal.NewFromFloat(0.0624),
				StartDate:          domain.NewDate(2025, 8, 29),
			},
			Offset: domain.OffsetAccount{
				StartingBalance: decimal.NewFromInt(20000),
				MonthlyGrowth:   decimal.NewFromInt(3000),
			},
		},
		MovePlan: &domain.MovePlanConfig{
			StartingBalance: decimal.NewFromInt(93000),
			SettlementDates: append([]string(nil), DefaultSettlementDates...),
		},
	}
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
