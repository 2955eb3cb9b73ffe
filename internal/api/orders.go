package api

import (
	"context"
	"net/url"

	"github.com/OmarT94/Webshop/internal/domain"
)

func orderPath(orderID, suffix string) string {
	return "/api/orders/" + url.PathEscape(orderID) + suffix
}

// Checkout places the order the backend assembles from the user's server-side
// cart. paymentIntentID must reference an already-confirmed payment.
func (c *Client) Checkout(ctx context.Context, token, userEmail, paymentIntentID string, method domain.PaymentMethod, address domain.Address) (domain.Order, error) {
	query := url.Values{
		"paymentIntentId": []string{paymentIntentID},
		"paymentMethod":   []string{method.String()},
	}
	var order domain.Order
	err := c.post(ctx, "/api/orders/"+url.PathEscape(userEmail)+"/checkout", query, token, address, &order)
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) UserOrders(ctx context.Context, token, userEmail string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(userEmail), nil, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	return c.delete(ctx, orderPath(orderID, "/cancel"), token)
}

func (c *Client) RequestReturn(ctx context.Context, token, orderID string) error {
	return c.put(ctx, orderPath(orderID, "/return-request"), nil, token, nil, nil)
}

// ApproveReturn is the admin action that marks the order RETURNED and the
// payment REFUNDED; the backend performs the processor refund as part of it.
func (c *Client) ApproveReturn(ctx context.Context, token, orderID string) error {
	return c.put(ctx, orderPath(orderID, "/approve-return"), nil, token, nil, nil)
}

func (c *Client) AllOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/api/orders", nil, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderFilter narrows the admin order search; exactly one field is expected
// to be set.
type OrderFilter struct {
	Email         string
	Status        domain.OrderStatus
	PaymentStatus domain.PaymentStatus
}

func (c *Client) SearchOrders(ctx context.Context, token string, filter OrderFilter) ([]domain.Order, error) {
	query := url.Values{}
	if filter.Email != "" {
		query.Set("email", filter.Email)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status.String())
	}
	if filter.PaymentStatus != "" {
		query.Set("paymentStatus", filter.PaymentStatus.String())
	}

	var orders []domain.Order
	if err := c.get(ctx, "/api/orders/search", query, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (domain.Order, error) {
	query := url.Values{"status": []string{status.String()}}
	var order domain.Order
	if err := c.put(ctx, orderPath(orderID, "/status"), query, token, nil, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, token, orderID string, status domain.PaymentStatus) (domain.Order, error) {
	query := url.Values{"paymentStatus": []string{status.String()}}
	var order domain.Order
	if err := c.put(ctx, orderPath(orderID, "/payment-status"), query, token, nil, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) UpdateShippingAddress(ctx context.Context, token, orderID string, address domain.Address) (domain.Order, error) {
	var order domain.Order
	if err := c.put(ctx, orderPath(orderID, "/address"), nil, token, address, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, token, orderID string) error {
	return c.delete(ctx, orderPath(orderID, ""), token)
}
