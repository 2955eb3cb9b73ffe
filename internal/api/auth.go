package api

import "context"

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/api/auth/register", nil, "", req, nil)
}

// Login exchanges credentials for a bearer token. The caller feeds the token
// to the session store; this function does not hold on to it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.post(ctx, "/api/auth/login", nil, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

type passwordUpdate struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) UpdatePassword(ctx context.Context, token, email, newPassword string) error {
	return c.put(ctx, "/api/auth/me", nil, token, passwordUpdate{Email: email, NewPassword: newPassword}, nil)
}
