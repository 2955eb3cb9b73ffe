package api

import (
	"context"

	"github.com/OmarT94/Webshop/internal/domain"
)

func (c *Client) Categories(ctx context.Context, token string) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/api/categories", nil, token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

func (c *Client) AddCategory(ctx context.Context, token, name string) (domain.Category, error) {
	var created domain.Category
	if err := c.post(ctx, "/api/categories/add", nil, token, addCategoryRequest{Name: name}, &created); err != nil {
		return domain.Category{}, err
	}
	return created, nil
}
