package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/OmarT94/Webshop/internal/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/products", nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), nil, "", &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// ProductFilter narrows a catalog search. Zero fields are not sent; the
// backend treats name, category and price range as independent filters.
type ProductFilter struct {
	Name     string
	Category string
	MinPrice float64
	MaxPrice float64
}

func (c *Client) SearchProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
		query.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	var products []domain.Product
	if err := c.get(ctx, "/api/products/search", query, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, product domain.Product) (domain.Product, error) {
	var created domain.Product
	if err := c.post(ctx, "/api/products", nil, token, product, &created); err != nil {
		return domain.Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, product domain.Product) (domain.Product, error) {
	var updated domain.Product
	if err := c.put(ctx, "/api/products/"+url.PathEscape(id), nil, token, product, &updated); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/api/products/"+url.PathEscape(id), token)
}
