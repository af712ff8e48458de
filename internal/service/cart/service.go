package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository/kv"
)

// Service owns the persisted cart: an ordered list of line items keyed by
// product name, stored whole under the cart key.
type Service struct {
	repo   store
	logger *log.Logger
}

type store interface {
	Get(ctx context.Context, profile, key string) ([]byte, error)
	Set(ctx context.Context, profile, key string, value []byte) error
	Delete(ctx context.Context, profile, key string) error
}

func New(repo kv.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Items returns the cart in insertion order. An absent or malformed stored
// value reads as an empty cart.
func (s *Service) Items(ctx context.Context, profile string) ([]domain.LineItem, error) {
	raw, err := s.repo.Get(ctx, profile, kv.KeyCart)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Printf("cart: discarding malformed stored cart profile=%s err=%v", profile, err)
		return nil, nil
	}
	return items, nil
}

// Add merges the item into the cart: an existing line with the same name has
// its quantity incremented, otherwise the item is appended.
func (s *Service) Add(ctx context.Context, profile string, item domain.LineItem) ([]domain.LineItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	items, err := s.Items(ctx, profile)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range items {
		if items[i].Name == item.Name {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	if err := s.save(ctx, profile, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity overwrites the quantity of the named line. A quantity of zero
// or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, profile, name string, quantity int) ([]domain.LineItem, error) {
	items, err := s.Items(ctx, profile)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name != name {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		if err := s.save(ctx, profile, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, domain.ErrNotFound
}

// Remove deletes the named line.
func (s *Service) Remove(ctx context.Context, profile, name string) ([]domain.LineItem, error) {
	items, err := s.Items(ctx, profile)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			items = append(items[:i], items[i+1:]...)
			if err := s.save(ctx, profile, items); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Replace makes the cart exactly the given single line. Used by the buy-now
// path, which discards whatever was in the cart.
func (s *Service) Replace(ctx context.Context, profile string, item domain.LineItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.save(ctx, profile, []domain.LineItem{item})
}

// Clear removes the cart key entirely.
func (s *Service) Clear(ctx context.Context, profile string) error {
	return s.repo.Delete(ctx, profile, kv.KeyCart)
}

// Summary returns the derived badge count and subtotal.
func (s *Service) Summary(ctx context.Context, profile string) (domain.CartSummary, error) {
	items, err := s.Items(ctx, profile)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return domain.Summarize(items), nil
}

func (s *Service) save(ctx context.Context, profile string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, profile, kv.KeyCart, raw)
}

func validateItem(item domain.LineItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("name required")
	}
	if item.Price < 0 {
		return errors.New("price must not be negative")
	}
	if item.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return nil
}
