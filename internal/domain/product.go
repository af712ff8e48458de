package domain

// Product is a catalog entry backing the listing page and quick view.
type Product struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Price   int64    `json:"price"`
	Image   string   `json:"image"`
	Gallery []string `json:"gallery,omitempty"`
	Sizes   []string `json:"sizes,omitempty"`
}
