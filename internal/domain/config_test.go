package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateUnmarshalYAML(t *testing.T) {
	var doc struct {
		Start Date `yaml:"start_date"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("start_date: 29/08/2025\n"), &doc))
	assert.Equal(t, 2025, doc.Start.Year())
	assert.Equal(t, time.August, doc.Start.Month())
	assert.Equal(t, 29, doc.Start.Day())
}

func TestDateUnmarshalRejectsISO(t *testing.T) {
	var d Date
	err := d.UnmarshalText([]byte("2025-08-29"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	var doc struct {
		Start Date `yaml:"start_date"`
	}
	err = yaml.Unmarshal([]byte("start_date: \"2025-08-29\"\n"), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestDateMarshalRoundTrip(t *testing.T) {
	d := NewDate(2025, time.August, 1)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "01/08/2025", string(text))
	assert.Equal(t, "01/08/2025", d.String())

	var parsed Date
	require.NoError(t, parsed.UnmarshalText(text))
	assert.True(t, parsed.Equal(d.Time))
}

func TestConfigurationUnmarshal(t *testing.T) {
	doc := `
loan:
  terms:
    amount: 759476.79
    payment_frequency: Fortnightly
    payment_amount: 2410
    duration_years: 30
    annual_interest_rate: 0.0624
    start_date: 29/08/2025
  offset:
    starting_balance: 20000
    monthly_growth: 3000
move_plan:
  starting_balance: 93000
  settlement_dates:
    - 01/08/2025
    - 08/08/2025
`
	var config Configuration
	require.NoError(t, yaml.Unmarshal([]byte(doc), &config))
	require.NotNil(t, config.Loan)
	require.NotNil(t, config.MovePlan)
	assert.Equal(t, "759476.79", config.Loan.Terms.Principal.String())
	assert.Equal(t, Fortnightly, config.Loan.Terms.Frequency)
	assert.Equal(t, 30, config.Loan.Terms.DurationYears)
	assert.Equal(t, "01/08/2025", config.MovePlan.SettlementDates[0])
	assert.Nil(t, config.MovePlan.Rules)
}
