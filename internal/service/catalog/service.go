package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository/kv"
)

// Service reads the shared product catalog backing the listing page and the
// quick-view modal. The catalog lives under a reserved profile and is written
// only by the seeder.
type Service struct {
	repo   store
	logger *log.Logger
}

type store interface {
	Get(ctx context.Context, profile, key string) ([]byte, error)
}

func New(repo kv.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all catalog products. Absent or malformed reads as empty.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := s.repo.Get(ctx, kv.CatalogProfile, kv.KeyProducts)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.logger.Printf("catalog: discarding malformed product list err=%v", err)
		return nil, nil
	}
	return products, nil
}

// Get returns the product with the given key.
func (s *Service) Get(ctx context.Context, key string) (*domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Key == key {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
