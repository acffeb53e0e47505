package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOffRuleResolveDate(t *testing.T) {
	anchor := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	settlement := time.Date(2025, time.August, 8, 0, 0, 0, 0, time.UTC)
	moveOut := time.Date(2025, time.August, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule OneOffRule
		want time.Time
	}{
		{"absolute", OneOffRule{Anchor: AnchorAbsolute, Date: NewDate(2025, time.August, 26)}, time.Date(2025, time.August, 26, 0, 0, 0, 0, time.UTC)},
		{"anchor offset", OneOffRule{Anchor: AnchorStart, OffsetDays: 2}, anchor.AddDate(0, 0, 2)},
		{"settlement offset", OneOffRule{Anchor: AnchorSettlement, OffsetDays: 3}, settlement.AddDate(0, 0, 3)},
		{"settlement negative offset", OneOffRule{Anchor: AnchorSettlement, OffsetDays: -7}, settlement.AddDate(0, 0, -7)},
		{"move-out offset", OneOffRule{Anchor: AnchorMoveOut, OffsetDays: 1}, moveOut.AddDate(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.ResolveDate(anchor, settlement, moveOut))
		})
	}
}

func TestCategoryClassification(t *testing.T) {
	assert.True(t, CategoryIncome.IsIncome())
	assert.True(t, CategoryPreSettlementIncome.IsIncome())
	assert.True(t, CategoryMonthlyIncome.IsIncome())
	assert.False(t, CategoryInitial.IsIncome())

	assert.True(t, CategorySettlement.IsExpense())
	assert.True(t, CategoryPostSettlement.IsExpense())
	assert.True(t, CategoryMoving.IsExpense())
	assert.True(t, CategoryMortgage.IsExpense())
	assert.False(t, CategoryIncome.IsExpense())

	assert.True(t, CategoryHyko.IsMilestone())
	assert.True(t, CategoryPacking.IsMilestone())
	assert.False(t, CategorySettlement.IsMilestone())
}

func TestDefaultMovePlanRules(t *testing.T) {
	rules := DefaultMovePlanRules()

	assert.Equal(t, "01/08/2025", rules.AnchorDate.String())
	assert.Equal(t, 14, rules.Mortgage.IntervalDays)
	assert.Equal(t, 14, rules.Mortgage.StartOffsetDays)
	assert.True(t, rules.Mortgage.Amount.Equal(decimal.NewFromInt(-2410)))

	// Milestones carry no money.
	for _, rule := range rules.OneOff {
		if rule.Category.IsMilestone() {
			assert.True(t, rule.Amount.IsZero(), "milestone %q should be zero-amount", rule.Description)
		}
	}

	// Same-day ordering is fixed by the table: the three anchor-day
	// deposits come first and in sequence.
	require.GreaterOrEqual(t, len(rules.OneOff), 3)
	assert.Equal(t, "Additional Savings #1", rules.OneOff[0].Description)
	assert.Equal(t, "Additional Savings #2", rules.OneOff[1].Description)
	assert.Equal(t, "Additional Savings #3", rules.OneOff[2].Description)

	require.NotNil(t, rules.Monthly.AnchorMonthExtra)
	assert.True(t, rules.Monthly.AnchorMonthExtra.Amount.Equal(decimal.NewFromInt(1200)))
}

func TestPlanName(t *testing.T) {
	settlement := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, `Settlement "Fri 01/08"`, PlanName(settlement))
}
