package domain

// Order is an immutable record of a completed checkout. Items is a snapshot
// of the cart at commit time.
type Order struct {
	ID      string     `json:"id"`
	Items   []LineItem `json:"items"`
	Total   int64      `json:"total"`
	Payment string     `json:"payment"`
	Date    string     `json:"date"`
}
