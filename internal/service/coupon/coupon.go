// Package coupon evaluates discount codes against a cart subtotal. It holds
// no state: the result is recomputed on every render and never persisted.
package coupon

// Code is the only recognized coupon, matched case-sensitively.
const Code = "SAVE10"

const discountPercent = 10

// Result is the outcome of applying a code to a subtotal.
type Result struct {
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
	Accepted bool  `json:"accepted"`
}

// Apply grants a 10% discount for the recognized code, rounded half-up to the
// nearest integer. Any other code, including the empty string, is rejected
// and the total reverts to the subtotal.
func Apply(code string, subtotal int64) Result {
	if code != Code {
		return Result{Discount: 0, Total: subtotal, Accepted: false}
	}
	discount := (subtotal*discountPercent + 50) / 100
	return Result{Discount: discount, Total: subtotal - discount, Accepted: true}
}
