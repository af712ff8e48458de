package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/repository/kv"
)

// Apply writes the demo product catalog for manual testing. It replaces the
// whole products value, so running it twice is idempotent.
func Apply(ctx context.Context, repo kv.Repository) error {
	products := []domain.Product{
		{
			Key:     "denim-jacket",
			Name:    "Denim Jacket",
			Price:   1799,
			Image:   "img/products/denim-jacket.jpg",
			Gallery: []string{"img/products/denim-jacket.jpg", "img/products/denim-jacket-2.jpg"},
			Sizes:   []string{"S", "M", "L", "XL"},
		},
		{
			Key:     "printed-shirt",
			Name:    "Printed Shirt",
			Price:   799,
			Image:   "img/products/printed-shirt.jpg",
			Gallery: []string{"img/products/printed-shirt.jpg"},
			Sizes:   []string{"S", "M", "L"},
		},
		{
			Key:     "cotton-trousers",
			Name:    "Cotton Trousers",
			Price:   1299,
			Image:   "img/products/cotton-trousers.jpg",
			Gallery: []string{"img/products/cotton-trousers.jpg"},
			Sizes:   []string{"M", "L", "XL"},
		},
		{
			Key:     "canvas-shoes",
			Name:    "Canvas Shoes",
			Price:   1499,
			Image:   "img/products/canvas-shoes.jpg",
			Gallery: []string{"img/products/canvas-shoes.jpg", "img/products/canvas-shoes-2.jpg"},
			Sizes:   []string{"7", "8", "9", "10"},
		},
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := repo.Set(ctx, kv.CatalogProfile, kv.KeyProducts, raw); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}
