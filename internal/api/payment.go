package api

import (
	"context"
	"fmt"
)

type paymentIntentRequest struct {
	// Amount is in the smallest currency unit (cents for EUR).
	Amount             int64    `json:"amount"`
	Currency           string   `json:"currency"`
	PaymentMethodTypes []string `json:"paymentMethodTypes"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Error        string `json:"error"`
}

// CreatePaymentIntent asks the backend for a processor authorization handle
// sized to amount. The backend reports processor failures inside a 200
// response, so the error field is checked even on success.
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, amount int64, currency string, methodTypes []string) (string, error) {
	req := paymentIntentRequest{Amount: amount, Currency: currency, PaymentMethodTypes: methodTypes}

	var resp paymentIntentResponse
	if err := c.post(ctx, "/api/stripe/create-payment-intent", nil, token, req, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("payment intent rejected: %s", resp.Error)
	}
	if resp.ClientSecret == "" {
		return "", fmt.Errorf("payment intent response missing client secret")
	}
	return resp.ClientSecret, nil
}
