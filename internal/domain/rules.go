package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventAnchor says what a one-off rule's date is measured from.
type EventAnchor string

const (
	AnchorAbsolute   EventAnchor = "absolute"   // fixed calendar date
	AnchorStart      EventAnchor = "anchor"     // the plan's anchor date
	AnchorSettlement EventAnchor = "settlement" // the scenario's settlement date
	AnchorMoveOut    EventAnchor = "move_out"   // the derived move-out Saturday
)

// OneOffRule schedules a single event at a fixed date or at a day
// offset from one of the plan's anchor points. Zero-amount rules mark
// milestones.
type OneOffRule struct {
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Category    Category        `yaml:"category" json:"category"`
	Anchor      EventAnchor     `yaml:"anchor" json:"anchor"`
	OffsetDays  int             `yaml:"offset_days,omitempty" json:"offset_days,omitempty"`
	Date        Date            `yaml:"date,omitempty" json:"date,omitempty"` // absolute anchor only
}

// ResolveDate turns the rule into a concrete calendar date for one
// scenario.
func (r OneOffRule) ResolveDate(anchor, settlement, moveOut time.Time) time.Time {
	switch r.Anchor {
	case AnchorSettlement:
		return settlement.AddDate(0, 0, r.OffsetDays)
	case AnchorMoveOut:
		return moveOut.AddDate(0, 0, r.OffsetDays)
	case AnchorStart:
		return anchor.AddDate(0, 0, r.OffsetDays)
	default:
		return r.Date.Time
	}
}

// LabeledAmount pairs a recurring amount with its row description.
type LabeledAmount struct {
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
}

// MonthlyIncomeRule adds income on the first of each month from the
// anchor month through the window end. The amounts branch on whether
// the month precedes the settlement date; the anchor date itself is
// skipped because its one-off income rules already cover it. The extra
// amount applies only in the anchor month.
type MonthlyIncomeRule struct {
	PreSettlement    []LabeledAmount `yaml:"pre_settlement" json:"pre_settlement"`
	AnchorMonthExtra *LabeledAmount  `yaml:"anchor_month_extra,omitempty" json:"anchor_month_extra,omitempty"`
	PostSettlement   LabeledAmount   `yaml:"post_settlement" json:"post_settlement"`
}

// PeriodicPaymentRule schedules a numbered payment every IntervalDays,
// starting StartOffsetDays after settlement, through the window end.
type PeriodicPaymentRule struct {
	Description     string          `yaml:"description" json:"description"` // numbered "#n" per occurrence
	Amount          decimal.Decimal `yaml:"amount" json:"amount"`
	Category        Category        `yaml:"category" json:"category"`
	StartOffsetDays int             `yaml:"start_offset_days" json:"start_offset_days"`
	IntervalDays    int             `yaml:"interval_days" json:"interval_days"`
}

// MovePlanRules is the declarative event table driving the cash-flow
// engine. The one-off rule order is load-bearing: events sharing a
// date are applied in table order, which fixes the visible
// running-balance sequence.
type MovePlanRules struct {
	AnchorDate Date                `yaml:"anchor_date" json:"anchor_date"`
	OneOff     []OneOffRule        `yaml:"one_off" json:"one_off"`
	Monthly    MonthlyIncomeRule   `yaml:"monthly" json:"monthly"`
	Mortgage   PeriodicPaymentRule `yaml:"mortgage" json:"mortgage"`
}

// DefaultMovePlanRules returns the standard moving-plan event table:
// savings deposits on the anchor date, the settlement payment, the
// post-settlement repair and rent costs, moving-day purchases, the
// fixed milestone calendar, monthly income with a pre/post-settlement
// branch, and fortnightly mortgage payments from two weeks after
// settlement.
func DefaultMovePlanRules() MovePlanRules {
	return MovePlanRules{
		AnchorDate: NewDate(2025, time.August, 1),
		OneOff: []OneOffRule{
			{Description: "Additional Savings #1", Amount: decimal.NewFromInt(5700), Category: CategoryIncome, Anchor: AnchorStart},
			{Description: "Additional Savings #2", Amount: decimal.NewFromInt(1200), Category: CategoryIncome, Anchor: AnchorStart},
			{Description: "Additional Savings #3", Amount: decimal.NewFromInt(500), Category: CategoryIncome, Anchor: AnchorStart},

			{Description: "House Settlement Payment", Amount: decimal.NewFromInt(-52046), Category: CategorySettlement, Anchor: AnchorSettlement},

			{Description: "Cleaning House", Amount: decimal.NewFromInt(-200), Category: CategoryPostSettlement, Anchor: AnchorSettlement, OffsetDays: 1},
			{Description: "Fixing Windows", Amount: decimal.NewFromInt(-300), Category: CategoryPostSettlement, Anchor: AnchorSettlement, OffsetDays: 1},
			{Description: "Bathroom Grouting & Sealing", Amount: decimal.NewFromInt(-1000), Category: CategoryPostSettlement, Anchor: AnchorSettlement, OffsetDays: 2},
			{Description: "2-Week Rent Payment", Amount: decimal.NewFromInt(-1400), Category: CategoryPostSettlement, Anchor: AnchorSettlement, OffsetDays: 2},
			{Description: "Ensuite Bathroom Fixes", Amount: decimal.NewFromInt(-20000), Category: CategoryPostSettlement, Anchor: AnchorSettlement, OffsetDays: 3},

			{Description: "Furniture Purchase", Amount: decimal.NewFromInt(-3000), Category: CategoryMoving, Anchor: AnchorMoveOut},
			{Description: "Removalists", Amount: decimal.NewFromInt(-1200), Category: CategoryMoving, Anchor: AnchorMoveOut},

			{Description: "HYKO - Sydney (Day 1)", Category: CategoryHyko, Anchor: AnchorAbsolute, Date: NewDate(2025, time.August, 26)},
			{Description: "HYKO - Sydney (Day 2)", Category: CategoryHyko, Anchor: AnchorAbsolute, Date: NewDate(2025, time.August, 27)},
			{Description: "Building Inspection Due", Category: CategoryInspection, Anchor: AnchorAbsolute, Date: NewDate(2025, time.August, 15)},
			{Description: "Insurance Policy Review", Category: CategoryInsurance, Anchor: AnchorAbsolute, Date: NewDate(2025, time.August, 20)},
			{Description: "Final Walkthrough", Category: CategoryWalkthrough, Anchor: AnchorSettlement, OffsetDays: -7},
			{Description: "Pre-Settlement Meeting", Category: CategoryMeeting, Anchor: AnchorSettlement, OffsetDays: -3},
			{Description: "Packing Day", Category: CategoryPacking, Anchor: AnchorMoveOut, OffsetDays: -1},
			{Description: "Unpacking & Setup", Category: CategoryUnpacking, Anchor: AnchorMoveOut, OffsetDays: 1},
		},
		Monthly: MonthlyIncomeRule{
			PreSettlement: []LabeledAmount{
				{Description: "Monthly Savings #1 (Pre-Settlement)", Amount: decimal.NewFromInt(5700)},
				{Description: "Monthly Savings #2 (Pre-Settlement)", Amount: decimal.NewFromInt(500)},
			},
			AnchorMonthExtra: &LabeledAmount{
				Description: "Monthly Savings #3 (August Only)",
				Amount:      decimal.NewFromInt(1200),
			},
			PostSettlement: LabeledAmount{
				Description: "Monthly Income (Post-Settlement - Mortgage Allocation + Savings)",
				Amount:      decimal.NewFromInt(8261),
			},
		},
		Mortgage: PeriodicPaymentRule{
			Description:     "Mortgage Payment",
			Amount:          decimal.NewFromInt(-2410),
			Category:        CategoryMortgage,
			StartOffsetDays: 14,
			IntervalDays:    14,
		},
	}
}
