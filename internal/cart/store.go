// Package cart keeps a local view of one user's server-side cart. The
// server is the source of truth: every mutation is followed by a re-fetch,
// and the local copy is only a cache for rendering.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/OmarT94/Webshop/internal/domain"
)

// ErrNoSession is returned when an operation is attempted without a token or
// user email. No network call is made in that case.
var ErrNoSession = errors.New("no authenticated session")

// Backend is the slice of the cart resource client the store needs.
type Backend interface {
	GetCart(ctx context.Context, token, userEmail string) (domain.Cart, error)
	AddCartItem(ctx context.Context, token, userEmail string, item domain.CartItem) (domain.Cart, error)
	UpdateCartQuantity(ctx context.Context, token, userEmail, productID string, quantity int) (domain.Cart, error)
	RemoveCartItem(ctx context.Context, token, userEmail, productID string) error
	ClearCart(ctx context.Context, token, userEmail string) error
}

type Store struct {
	backend Backend
	log     zerolog.Logger
	sfg     singleflight.Group

	// gen increments on every mutation issued. A reconciliation fetch that
	// started before a later mutation carries a stale gen and its response
	// is discarded, so the last mutation issued wins regardless of response
	// order.
	gen atomic.Uint64

	mu    sync.RWMutex
	items []domain.CartItem
	total float64
}

func NewStore(backend Backend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// Fetch replaces the local cart with the server's. Concurrent fetches for
// the same user collapse into one request.
func (s *Store) Fetch(ctx context.Context, token, userEmail string) error {
	if err := requireSession(token, userEmail); err != nil {
		return err
	}

	gen := s.gen.Load()
	v, err, _ := s.sfg.Do(userEmail, func() (interface{}, error) {
		cart, err := s.backend.GetCart(ctx, token, userEmail)
		if err != nil {
			return nil, err
		}
		return cart.Items, nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch cart")
		return fmt.Errorf("failed to fetch cart: %w", err)
	}

	s.apply(gen, v.([]domain.CartItem))
	return nil
}

// AddItem asks the backend to add item, then reconciles by re-fetching. The
// server may merge the line into an existing one or reject it; the local
// state only ever reflects what the server accepted.
func (s *Store) AddItem(ctx context.Context, token, userEmail string, item domain.CartItem) error {
	if err := requireSession(token, userEmail); err != nil {
		return err
	}

	gen := s.gen.Add(1)
	if _, err := s.backend.AddCartItem(ctx, token, userEmail, item); err != nil {
		s.log.Error().Err(err).Str("product", item.ProductID).Msg("failed to add cart item")
		return fmt.Errorf("failed to add item: %w", err)
	}

	return s.reconcile(ctx, token, userEmail, gen)
}

// UpdateQuantity changes a line's quantity. Requests below one are clamped
// to one; the backend never sees a non-positive quantity.
func (s *Store) UpdateQuantity(ctx context.Context, token, userEmail, productID string, quantity int) error {
	if err := requireSession(token, userEmail); err != nil {
		return err
	}
	if quantity < 1 {
		quantity = 1
	}

	gen := s.gen.Add(1)
	if _, err := s.backend.UpdateCartQuantity(ctx, token, userEmail, productID, quantity); err != nil {
		s.log.Error().Err(err).Str("product", productID).Msg("failed to update quantity")
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	return s.reconcile(ctx, token, userEmail, gen)
}

func (s *Store) RemoveItem(ctx context.Context, token, userEmail, productID string) error {
	if err := requireSession(token, userEmail); err != nil {
		return err
	}

	gen := s.gen.Add(1)
	if err := s.backend.RemoveCartItem(ctx, token, userEmail, productID); err != nil {
		s.log.Error().Err(err).Str("product", productID).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove item: %w", err)
	}

	return s.reconcile(ctx, token, userEmail, gen)
}

// Clear empties the server-side cart and resets local state unconditionally.
// Clearing an already-empty cart is a no-op, not an error.
func (s *Store) Clear(ctx context.Context, token, userEmail string) error {
	if err := requireSession(token, userEmail); err != nil {
		return err
	}

	s.gen.Add(1)
	if err := s.backend.ClearCart(ctx, token, userEmail); err != nil {
		s.log.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.mu.Lock()
	s.items = nil
	s.total = 0
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the current lines.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalPrice is always the sum of price*quantity over the current items; it
// has no setter.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *Store) reconcile(ctx context.Context, token, userEmail string, gen uint64) error {
	cart, err := s.backend.GetCart(ctx, token, userEmail)
	if err != nil {
		// The mutation went through; the next successful fetch catches up.
		s.log.Error().Err(err).Msg("failed to reconcile cart after write")
		return fmt.Errorf("failed to reconcile cart: %w", err)
	}
	s.apply(gen, cart.Items)
	return nil
}

func (s *Store) apply(gen uint64, items []domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		s.log.Debug().Msg("discarding stale cart response")
		return
	}
	s.items = items
	s.total = domain.Total(items)
}

func requireSession(token, userEmail string) error {
	if token == "" || userEmail == "" {
		return ErrNoSession
	}
	return nil
}
