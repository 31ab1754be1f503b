package calculator

// Tier is the stock level bucket derived from quantity against capacity.
type Tier string

const (
	TierSufficient Tier = "sufficient"
	TierModerate   Tier = "moderate"
	TierLow        Tier = "low"
)

// ClassifyStock buckets quantity against max:
//
//	sufficient  quantity >= 0.75 × max
//	moderate    quantity >= 0.25 × max
//	low         otherwise
//
// The comparisons are done in integers (4q >= 3m, 4q >= m) so boundary
// values classify exactly. A product with no capacity baseline (max <= 0)
// is always sufficient.
func ClassifyStock(quantity, max int) Tier {
	if max <= 0 {
		return TierSufficient
	}
	q, m := int64(quantity)*4, int64(max)
	switch {
	case q >= 3*m:
		return TierSufficient
	case q >= m:
		return TierModerate
	default:
		return TierLow
	}
}

// NeedsRestock reports whether the restock action applies to a product.
func NeedsRestock(quantity, max int) bool {
	return ClassifyStock(quantity, max) == TierLow
}
