package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/OmarT94/Webshop/internal/domain"
)

func cartPath(userEmail, suffix string) string {
	return "/api/cart/" + url.PathEscape(userEmail) + suffix
}

func (c *Client) GetCart(ctx context.Context, token, userEmail string) (domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, cartPath(userEmail, ""), nil, token, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// AddCartItem adds item to the user's cart. The backend merges a line for an
// already-present product by bumping its quantity.
func (c *Client) AddCartItem(ctx context.Context, token, userEmail string, item domain.CartItem) (domain.Cart, error) {
	var cart domain.Cart
	if err := c.post(ctx, cartPath(userEmail, "/add"), nil, token, item, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, token, userEmail, productID string, quantity int) (domain.Cart, error) {
	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	var cart domain.Cart
	if err := c.put(ctx, cartPath(userEmail, "/update/"+url.PathEscape(productID)), query, token, nil, &cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, token, userEmail, productID string) error {
	return c.delete(ctx, cartPath(userEmail, "/remove/"+url.PathEscape(productID)), token)
}

func (c *Client) ClearCart(ctx context.Context, token, userEmail string) error {
	return c.delete(ctx, cartPath(userEmail, "/clear"), token)
}
