package kv

import "context"

// Well-known keys. Every piece of storefront state lives under one of these,
// scoped to a profile.
const (
	KeyCart          = "cart"
	KeyOrders        = "orders"
	KeyUsers         = "users"
	KeyCheckoutTotal = "checkoutTotal"
	KeyUserLoggedIn  = "userLoggedIn"
	KeyUserName      = "userName"
	KeyProducts      = "products"
)

// CatalogProfile is the reserved profile holding the shared product catalog.
const CatalogProfile = "_catalog"

// Repository is a profile-scoped key/value store of JSON-encoded values.
// Writes are unconditional overwrites: concurrent writers race as
// last-writer-wins, with no merge and no transaction boundary.
type Repository interface {
	Get(ctx context.Context, profile, key string) ([]byte, error)
	Set(ctx context.Context, profile, key string, value []byte) error
	Delete(ctx context.Context, profile, key string) error
}
