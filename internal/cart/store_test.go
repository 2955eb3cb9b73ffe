package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarT94/Webshop/internal/domain"
)

// mockBackend keeps a server-side cart in memory and applies the backend's
// merge semantics: adding an existing product bumps its quantity.
type mockBackend struct {
	mu       sync.Mutex
	items    []domain.CartItem
	err      error
	getErr   error
	getCalls int
	lastQty  int

	// getHook runs inside GetCart after the snapshot is taken, keyed by
	// call number. Lets tests hold a response while later calls proceed.
	getHook func(call int)
}

func (m *mockBackend) GetCart(_ context.Context, _, userEmail string) (domain.Cart, error) {
	m.mu.Lock()
	m.getCalls++
	call := m.getCalls
	if m.getErr != nil {
		m.mu.Unlock()
		return domain.Cart{}, m.getErr
	}
	snapshot := make([]domain.CartItem, len(m.items))
	copy(snapshot, m.items)
	hook := m.getHook
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	return domain.Cart{UserEmail: userEmail, Items: snapshot}, nil
}

func (m *mockBackend) AddCartItem(_ context.Context, _, userEmail string, item domain.CartItem) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	for i := range m.items {
		if m.items[i].ProductID == item.ProductID {
			m.items[i].Quantity += item.Quantity
			return domain.Cart{UserEmail: userEmail, Items: m.items}, nil
		}
	}
	m.items = append(m.items, item)
	return domain.Cart{UserEmail: userEmail, Items: m.items}, nil
}

func (m *mockBackend) UpdateCartQuantity(_ context.Context, _, userEmail, productID string, quantity int) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastQty = quantity
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			return domain.Cart{UserEmail: userEmail, Items: m.items}, nil
		}
	}
	return domain.Cart{}, errors.New("item not found")
}

func (m *mockBackend) RemoveCartItem(_ context.Context, _, _, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, item := range m.items {
		if item.ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errors.New("item not found")
}

func (m *mockBackend) ClearCart(context.Context, string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items = nil
	return nil
}

const (
	testToken = "token"
	testEmail = "user@shop.de"
)

func newTestStore(backend *mockBackend) *Store {
	return NewStore(backend, zerolog.Nop())
}

func TestFailsFastWithoutSession(t *testing.T) {
	backend := &mockBackend{}
	store := newTestStore(backend)
	ctx := context.Background()
	item := domain.CartItem{ProductID: "p1", Price: 9.99, Quantity: 1}

	assert.ErrorIs(t, store.Fetch(ctx, "", testEmail), ErrNoSession)
	assert.ErrorIs(t, store.Fetch(ctx, testToken, ""), ErrNoSession)
	assert.ErrorIs(t, store.AddItem(ctx, "", testEmail, item), ErrNoSession)
	assert.ErrorIs(t, store.UpdateQuantity(ctx, "", testEmail, "p1", 2), ErrNoSession)
	assert.ErrorIs(t, store.RemoveItem(ctx, testToken, "", "p1"), ErrNoSession)
	assert.ErrorIs(t, store.Clear(ctx, "", testEmail), ErrNoSession)

	assert.Zero(t, backend.getCalls, "no network call without a session")
}

func TestAddUpdateRemoveScenario(t *testing.T) {
	store := newTestStore(&mockBackend{})
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, testToken, testEmail, domain.CartItem{
		ProductID: "p1", Name: "Mug", Price: 9.99, Quantity: 1,
	}))
	require.Len(t, store.Items(), 1)
	assert.Equal(t, 1, store.Items()[0].Quantity)
	assert.InDelta(t, 9.99, store.TotalPrice(), 1e-9)

	require.NoError(t, store.UpdateQuantity(ctx, testToken, testEmail, "p1", 3))
	assert.InDelta(t, 29.97, store.TotalPrice(), 1e-9)

	require.NoError(t, store.RemoveItem(ctx, testToken, testEmail, "p1"))
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalPrice())
}

func TestTotalAlwaysDerivedFromItems(t *testing.T) {
	store := newTestStore(&mockBackend{})
	ctx := context.Background()

	items := []domain.CartItem{
		{ProductID: "p1", Price: 9.99, Quantity: 2},
		{ProductID: "p2", Price: 0.49, Quantity: 5},
		{ProductID: "p3", Price: 100, Quantity: 1},
	}
	for _, item := range items {
		require.NoError(t, store.AddItem(ctx, testToken, testEmail, item))
		assert.InDelta(t, domain.Total(store.Items()), store.TotalPrice(), 1e-9)
	}

	require.NoError(t, store.UpdateQuantity(ctx, testToken, testEmail, "p2", 1))
	assert.InDelta(t, domain.Total(store.Items()), store.TotalPrice(), 1e-9)

	require.NoError(t, store.RemoveItem(ctx, testToken, testEmail, "p3"))
	assert.InDelta(t, domain.Total(store.Items()), store.TotalPrice(), 1e-9)
}

func TestAddMergesDuplicateLines(t *testing.T) {
	store := newTestStore(&mockBackend{})
	ctx := context.Background()
	item := domain.CartItem{ProductID: "p1", Price: 5, Quantity: 1}

	require.NoError(t, store.AddItem(ctx, testToken, testEmail, item))
	require.NoError(t, store.AddItem(ctx, testToken, testEmail, item))

	// The server merged the lines; the re-fetch picked that up.
	require.Len(t, store.Items(), 1)
	assert.Equal(t, 2, store.Items()[0].Quantity)
	assert.InDelta(t, 10, store.TotalPrice(), 1e-9)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	backend := &mockBackend{items: []domain.CartItem{{ProductID: "p1", Price: 5, Quantity: 4}}}
	store := newTestStore(backend)
	ctx := context.Background()

	for _, requested := range []int{0, -3} {
		require.NoError(t, store.UpdateQuantity(ctx, testToken, testEmail, "p1", requested))
		assert.Equal(t, 1, backend.lastQty, "backend must never see %d", requested)
		assert.Equal(t, 1, store.Items()[0].Quantity)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(&mockBackend{})
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, testToken, testEmail, domain.CartItem{ProductID: "p1", Price: 5, Quantity: 1}))
	require.NoError(t, store.Clear(ctx, testToken, testEmail))
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalPrice())

	// Clearing an already-empty cart succeeds and changes nothing.
	require.NoError(t, store.Clear(ctx, testToken, testEmail))
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalPrice())
}

func TestFetchFailureLeavesStateIntact(t *testing.T) {
	backend := &mockBackend{}
	store := newTestStore(backend)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, testToken, testEmail, domain.CartItem{ProductID: "p1", Price: 9.99, Quantity: 1}))

	backend.mu.Lock()
	backend.getErr = errors.New("backend down")
	backend.mu.Unlock()

	require.Error(t, store.Fetch(ctx, testToken, testEmail))
	assert.Len(t, store.Items(), 1)
	assert.InDelta(t, 9.99, store.TotalPrice(), 1e-9)
}

func TestMutationFailureLeavesStateIntact(t *testing.T) {
	backend := &mockBackend{}
	store := newTestStore(backend)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, testToken, testEmail, domain.CartItem{ProductID: "p1", Price: 9.99, Quantity: 1}))

	backend.mu.Lock()
	backend.err = errors.New("rejected")
	backend.mu.Unlock()

	require.Error(t, store.AddItem(ctx, testToken, testEmail, domain.CartItem{ProductID: "p2", Price: 1, Quantity: 1}))
	require.Error(t, store.UpdateQuantity(ctx, testToken, testEmail, "p1", 5))
	require.Error(t, store.Clear(ctx, testToken, testEmail))

	assert.Len(t, store.Items(), 1)
	assert.InDelta(t, 9.99, store.TotalPrice(), 1e-9)
}

// A reconciliation response that was overtaken by a later mutation must be
// discarded: the last mutation issued wins, not the last response to arrive.
func TestStaleReconcileResponseDiscarded(t *testing.T) {
	backend := &mockBackend{items: []domain.CartItem{{ProductID: "p1", Price: 10, Quantity: 1}}}
	store := newTestStore(backend)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	backend.getHook = func(call int) {
		// Call 1 is the first mutation's reconcile fetch. Hold its snapshot
		// (quantity 2) until the second mutation has fully applied.
		if call == 1 {
			close(entered)
			<-release
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- store.UpdateQuantity(ctx, testToken, testEmail, "p1", 2)
	}()
	<-entered

	require.NoError(t, store.UpdateQuantity(ctx, testToken, testEmail, "p1", 3))
	assert.Equal(t, 3, store.Items()[0].Quantity)

	close(release)
	require.NoError(t, <-done)

	// The stale quantity-2 snapshot must not have overwritten the newer one.
	assert.Equal(t, 3, store.Items()[0].Quantity)
	assert.InDelta(t, 30, store.TotalPrice(), 1e-9)
}

func TestConcurrentFetchesCollapse(t *testing.T) {
	backend := &mockBackend{items: []domain.CartItem{{ProductID: "p1", Price: 10, Quantity: 1}}}
	store := newTestStore(backend)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	backend.getHook = func(call int) {
		if call == 1 {
			close(entered)
			<-release
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, store.Fetch(ctx, testToken, testEmail))
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, store.Fetch(ctx, testToken, testEmail))
	}()
	// Give the second fetch time to join the in-flight one.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.getCalls)
}
