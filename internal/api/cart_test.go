package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarT94/Webshop/internal/domain"
)

const cartJSON = `{"id":"c1","userEmail":"user@shop.de","items":[{"productId":"p1","name":"Mug","price":9.99,"quantity":2}]}`

func TestGetCart(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/cart/{userEmail}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "user@shop.de", chi.URLParam(req, "userEmail"))
		respondJSON(w, http.StatusOK, cartJSON)
	})
	client := newTestClient(t, r)

	cart, err := client.GetCart(context.Background(), "tok", "user@shop.de")
	require.NoError(t, err)
	assert.Equal(t, "user@shop.de", cart.UserEmail)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddCartItem(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/cart/{userEmail}/add", func(w http.ResponseWriter, req *http.Request) {
		var item domain.CartItem
		require.NoError(t, json.NewDecoder(req.Body).Decode(&item))
		assert.Equal(t, "p1", item.ProductID)
		assert.Equal(t, 1, item.Quantity)
		respondJSON(w, http.StatusOK, cartJSON)
	})
	client := newTestClient(t, r)

	item := domain.CartItem{ProductID: "p1", Name: "Mug", Price: 9.99, Quantity: 1}
	cart, err := client.AddCartItem(context.Background(), "tok", "user@shop.de", item)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestUpdateCartQuantity(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/cart/{userEmail}/update/{productID}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "p1", chi.URLParam(req, "productID"))
		assert.Equal(t, "3", req.URL.Query().Get("quantity"))
		respondJSON(w, http.StatusOK, cartJSON)
	})
	client := newTestClient(t, r)

	_, err := client.UpdateCartQuantity(context.Background(), "tok", "user@shop.de", "p1", 3)
	require.NoError(t, err)
}

func TestRemoveAndClear(t *testing.T) {
	var removed, cleared bool
	r := chi.NewRouter()
	r.Delete("/api/cart/{userEmail}/remove/{productID}", func(w http.ResponseWriter, req *http.Request) {
		removed = true
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/api/cart/{userEmail}/clear", func(w http.ResponseWriter, req *http.Request) {
		cleared = true
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, r)

	require.NoError(t, client.RemoveCartItem(context.Background(), "tok", "user@shop.de", "p1"))
	require.NoError(t, client.ClearCart(context.Background(), "tok", "user@shop.de"))
	assert.True(t, removed)
	assert.True(t, cleared)
}
