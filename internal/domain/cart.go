package domain

// LineItem is one product entry in a cart. Name is the identity key: a cart
// holds at most one line per distinct name.
type LineItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Total returns the line total.
func (l LineItem) Total() int64 {
	return l.Price * int64(l.Quantity)
}

// CartSummary is the derived view of a cart: badge count and subtotal.
type CartSummary struct {
	Count    int   `json:"count"`
	Subtotal int64 `json:"subtotal"`
}

// Summarize computes the derived view over an ordered cart.
func Summarize(items []LineItem) CartSummary {
	var s CartSummary
	for _, it := range items {
		s.Count += it.Quantity
		s.Subtotal += it.Total()
	}
	return s
}
