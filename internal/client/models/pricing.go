package models

// FinalPrice previews the price after discount, never below zero. The
// backend recomputes and owns the stored value.
func FinalPrice(normalPrice float64, discountEnabled bool, discountType DiscountType, discount float64) float64 {
	if !discountEnabled {
		return max(0, normalPrice)
	}

	var discountAmount float64
	switch discountType {
	case DiscountPercentage:
		discountAmount = normalPrice * discount / 100
	case DiscountAmount:
		discountAmount = discount
	}

	return max(0, normalPrice-discountAmount)
}
