package property

import "math"

// PolicyTier maps a minimum number of days before check-in to the refund
// percentage a cancellation at that distance earns.
type PolicyTier struct {
	MinDaysBefore int `json:"min_days_before"`
	RefundPercent int `json:"refund_percent"`
}

// CancellationPolicy is an ordered list of tiers. Order is significant:
// tiers are evaluated as stored and the first match wins, so owners can
// express whatever precedence they configured.
type CancellationPolicy []PolicyTier

// RefundPercentFor returns the refund percentage for a cancellation
// daysBefore days ahead of check-in. No matching tier means no refund.
func (p CancellationPolicy) RefundPercentFor(daysBefore int) int {
	for _, tier := range p {
		if tier.MinDaysBefore <= daysBefore {
			return tier.RefundPercent
		}
	}
	return 0
}

// RefundAmountFor computes the rupee refund for the given grand total,
// rounding half away from zero.
func (p CancellationPolicy) RefundAmountFor(grandTotal int64, daysBefore int) (int64, int) {
	percent := p.RefundPercentFor(daysBefore)
	amount := int64(math.Round(float64(grandTotal) * float64(percent) / 100.0))
	return amount, percent
}
