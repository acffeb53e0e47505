package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentFrequency(t *testing.T) {
	tests := []struct {
		input string
		want  PaymentFrequency
	}{
		{"weekly", Weekly},
		{"Weekly", Weekly},
		{"FORTNIGHTLY", Fortnightly},
		{" fortnightly ", Fortnightly},
		{"Monthly", Monthly},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePaymentFrequency(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePaymentFrequency("quarterly")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFrequency))
}

func TestPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 52, Weekly.PeriodsPerYear())
	assert.Equal(t, 26, Fortnightly.PeriodsPerYear())
	assert.Equal(t, 12, Monthly.PeriodsPerYear())
	assert.Equal(t, 0, PaymentFrequency("quarterly").PeriodsPerYear())
	assert.False(t, PaymentFrequency("quarterly").Valid())
}

func TestMaxPeriods(t *testing.T) {
	terms := LoanTerms{DurationYears: 30, Frequency: Fortnightly}
	assert.Equal(t, 1560, terms.MaxPeriods())
}

func TestOffsetGrowthPerPeriod(t *testing.T) {
	offset := OffsetAccount{MonthlyGrowth: decimal.NewFromInt(3000)}
	// 3000 x 12 / 26
	want := decimal.NewFromInt(36000).Div(decimal.NewFromInt(26))
	assert.True(t, offset.GrowthPerPeriod(26).Equal(want))
	assert.True(t, offset.GrowthPerPeriod(0).IsZero())
}

func TestScheduleTotals(t *testing.T) {
	schedule := &AmortizationSchedule{
		Records: []PaymentPeriodRecord{
			{InterestPaid: decimal.NewFromInt(10), PrincipalPaid: decimal.NewFromInt(90), ActualPayment: decimal.NewFromInt(100)},
			{InterestPaid: decimal.NewFromInt(5), PrincipalPaid: decimal.NewFromInt(95), ActualPayment: decimal.NewFromInt(100)},
		},
		Terminal:     TerminalPaidOff,
		TotalPeriods: 2,
	}
	assert.True(t, schedule.PaidOff())
	assert.True(t, schedule.TotalInterestPaid().Equal(decimal.NewFromInt(15)))
	assert.True(t, schedule.TotalPrincipalPaid().Equal(decimal.NewFromInt(185)))
	assert.True(t, schedule.TotalAmountPaid().Equal(decimal.NewFromInt(200)))
}
