// Package checkout assembles a purchase from the cart, a shipping address
// and a confirmed payment, and submits it to the backend. The processor's
// own authorization UI lives outside this program; it is reached through the
// PaymentConfirmer seam.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/OmarT94/Webshop/internal/domain"
)

var (
	ErrNoSession         = errors.New("no authenticated session")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("shipping address is incomplete")
)

// Backend is the slice of the resource clients the checkout needs.
type Backend interface {
	CreatePaymentIntent(ctx context.Context, token string, amount int64, currency string, methodTypes []string) (string, error)
	Checkout(ctx context.Context, token, userEmail, paymentIntentID string, method domain.PaymentMethod, address domain.Address) (domain.Order, error)
}

// Cart is the slice of the cart store the checkout reads and clears.
type Cart interface {
	Items() []domain.CartItem
	TotalPrice() float64
	Clear(ctx context.Context, token, userEmail string) error
}

// PaymentConfirmer turns an authorization handle (the client secret) into a
// confirmed payment intent id. The real implementation is the processor's
// hosted flow; tests inject fakes.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret string, method domain.PaymentMethod) (string, error)
}

// ConfirmerFunc adapts a function to PaymentConfirmer.
type ConfirmerFunc func(ctx context.Context, clientSecret string, method domain.PaymentMethod) (string, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, clientSecret string, method domain.PaymentMethod) (string, error) {
	return f(ctx, clientSecret, method)
}

// IntentFromClientSecret extracts the payment intent id a client secret
// references ("pi_123_secret_abc" -> "pi_123").
func IntentFromClientSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || id == "" {
		return "", fmt.Errorf("malformed client secret")
	}
	return id, nil
}

// Store holds the in-progress order draft. The draft lives in memory only;
// it is not reconstructed after a restart.
type Store struct {
	backend   Backend
	cart      Cart
	confirmer PaymentConfirmer
	validate  *validator.Validate
	log       zerolog.Logger
	currency  string

	mu      sync.RWMutex
	address domain.Address
	method  domain.PaymentMethod
}

func NewStore(backend Backend, cart Cart, confirmer PaymentConfirmer, currency string, log zerolog.Logger) *Store {
	return &Store{
		backend:   backend,
		cart:      cart,
		confirmer: confirmer,
		validate:  validator.New(),
		log:       log,
		currency:  currency,
		method:    domain.PaymentMethodPayPal,
	}
}

func (s *Store) SetShippingAddress(address domain.Address) {
	s.mu.Lock()
	s.address = address
	s.mu.Unlock()
}

func (s *Store) SetPaymentMethod(method domain.PaymentMethod) {
	s.mu.Lock()
	s.method = method
	s.mu.Unlock()
}

func (s *Store) ShippingAddress() domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

func (s *Store) PaymentMethod() domain.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.method
}

// PlaceOrder runs the full flow: validate the draft, obtain a payment intent
// sized to the cart total, confirm it through the processor, submit the
// order, and clear the local cart. Any failure leaves the cart untouched and
// creates no partial order on the client.
func (s *Store) PlaceOrder(ctx context.Context, token, userEmail string) (domain.Order, error) {
	if token == "" || userEmail == "" {
		return domain.Order{}, ErrNoSession
	}

	s.mu.RLock()
	address := s.address
	method := s.method
	s.mu.RUnlock()

	if len(s.cart.Items()) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if err := s.validateAddress(address); err != nil {
		return domain.Order{}, err
	}

	// Amount in the smallest currency unit, as the processor expects.
	amount := int64(math.Round(s.cart.TotalPrice() * 100))

	clientSecret, err := s.backend.CreatePaymentIntent(ctx, token, amount, s.currency, []string{method.ProcessorType()})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create payment intent")
		return domain.Order{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	intentID, err := s.confirmer.Confirm(ctx, clientSecret, method)
	if err != nil {
		s.log.Error().Err(err).Msg("payment confirmation failed")
		return domain.Order{}, fmt.Errorf("payment failed: %w", err)
	}

	order, err := s.backend.Checkout(ctx, token, userEmail, intentID, method, address)
	if err != nil {
		s.log.Error().Err(err).Msg("checkout rejected")
		return domain.Order{}, fmt.Errorf("checkout failed: %w", err)
	}

	// The server already dropped the cart as part of the order; this resets
	// the local copy. A failure here leaves only a stale local cache, fixed
	// by the next fetch.
	if err := s.cart.Clear(ctx, token, userEmail); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear cart after checkout")
	}

	s.log.Info().Str("order", order.ID).Str("method", method.String()).Msg("order placed")
	return order, nil
}

func (s *Store) validateAddress(address domain.Address) error {
	err := s.validate.Struct(address)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: missing %s", ErrIncompleteAddress, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrIncompleteAddress, err)
}
