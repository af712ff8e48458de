package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository/kv"
)

// Service bridges the cart page and the checkout page. Initiate parks the
// displayed total in a transient slot; Commit turns the cart into an order,
// appends it to the ledger and clears both the cart and the slot.
type Service struct {
	repo   store
	carts  cartStore
	logger *log.Logger
	now    func() time.Time
}

type store interface {
	Get(ctx context.Context, profile, key string) ([]byte, error)
	Set(ctx context.Context, profile, key string, value []byte) error
	Delete(ctx context.Context, profile, key string) error
}

type cartStore interface {
	Items(ctx context.Context, profile string) ([]domain.LineItem, error)
	Replace(ctx context.Context, profile string, item domain.LineItem) error
	Clear(ctx context.Context, profile string) error
}

func New(repo kv.Repository, carts cartStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, carts: carts, logger: logger, now: time.Now}
}

// Initiate rejects an empty cart, otherwise parks the displayed total. The
// total is whatever the caller last rendered: a stale coupon discount is
// carried as-is, not recomputed.
func (s *Service) Initiate(ctx context.Context, profile string, displayedTotal int64) error {
	items, err := s.carts.Items(ctx, profile)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return domain.ErrEmptyCart
	}
	raw, err := json.Marshal(displayedTotal)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, profile, kv.KeyCheckoutTotal, raw)
}

// Commit builds an order from the current cart and the parked total, appends
// it to the ledger, then clears the cart and the transient total. There is no
// rollback between those steps.
func (s *Service) Commit(ctx context.Context, profile, payment string) (*domain.Order, error) {
	payment = strings.TrimSpace(payment)
	if payment == "" {
		return nil, errors.New("payment method required")
	}
	items, err := s.carts.Items(ctx, profile)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := domain.Order{
		ID:      "ORD-" + uuid.NewString(),
		Items:   items,
		Total:   s.parkedTotal(ctx, profile, items),
		Payment: payment,
		Date:    s.now().Format("1/2/2006, 3:04:05 PM"),
	}

	orders, err := s.Orders(ctx, profile)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	raw, err := json.Marshal(orders)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Set(ctx, profile, kv.KeyOrders, raw); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, profile, kv.KeyCheckoutTotal); err != nil {
		return nil, err
	}
	return &order, nil
}

// BuyNow replaces the cart with the single line and parks its total, skipping
// the cart page entirely.
func (s *Service) BuyNow(ctx context.Context, profile string, item domain.LineItem) (int64, error) {
	if err := s.carts.Replace(ctx, profile, item); err != nil {
		return 0, err
	}
	total := item.Total()
	raw, err := json.Marshal(total)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Set(ctx, profile, kv.KeyCheckoutTotal, raw); err != nil {
		return 0, err
	}
	return total, nil
}

// Orders returns the ledger, oldest first. Absent or malformed reads as empty.
func (s *Service) Orders(ctx context.Context, profile string) ([]domain.Order, error) {
	raw, err := s.repo.Get(ctx, profile, kv.KeyOrders)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		s.logger.Printf("checkout: discarding malformed order ledger profile=%s err=%v", profile, err)
		return nil, nil
	}
	return orders, nil
}

// parkedTotal reads the transient checkout total, falling back to the live
// subtotal when the slot is absent or unreadable.
func (s *Service) parkedTotal(ctx context.Context, profile string, items []domain.LineItem) int64 {
	raw, err := s.repo.Get(ctx, profile, kv.KeyCheckoutTotal)
	if err == nil {
		var total int64
		if jsonErr := json.Unmarshal(raw, &total); jsonErr == nil {
			return total
		}
		s.logger.Printf("checkout: malformed checkout total profile=%s", profile)
	}
	return domain.Summarize(items).Subtotal
}
