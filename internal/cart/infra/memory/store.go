package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
)

// Store is the in-memory cart store used by tests and local dev.
type Store struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

func (s *Store) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return domain.Cart{}, nil
	}
	// Hand out a copy so callers cannot mutate stored state without Put.
	return cart.Clone(), nil
}

func (s *Store) Put(ctx context.Context, sessionID string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cart) == 0 {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = cart.Clone()
	return nil
}
