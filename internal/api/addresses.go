package api

import (
	"context"
	"net/url"

	"github.com/OmarT94/Webshop/internal/domain"
)

func addressPath(email, suffix string) string {
	return "/api/users/" + url.PathEscape(email) + "/addresses" + suffix
}

func (c *Client) Addresses(ctx context.Context, token, email string) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := c.get(ctx, addressPath(email, ""), nil, token, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) AddAddress(ctx context.Context, token, email string, address domain.Address) error {
	return c.post(ctx, addressPath(email, ""), nil, token, address, nil)
}

func (c *Client) UpdateAddress(ctx context.Context, token, email, addressID string, address domain.Address) error {
	return c.put(ctx, addressPath(email, "/"+url.PathEscape(addressID)), nil, token, address, nil)
}

func (c *Client) DeleteAddress(ctx context.Context, token, email, addressID string) error {
	return c.delete(ctx, addressPath(email, "/"+url.PathEscape(addressID)), token)
}
