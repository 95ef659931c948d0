package api

import (
	"context"
	"net/http"
	"net/url"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates an account and triggers the verification email. The
// account stays inactive until Verify succeeds.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var resp messageResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, authNone, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Verify confirms the emailed code, activates the account, and stores the
// issued credential.
func (c *Client) Verify(ctx context.Context, email, code string) error {
	var resp tokenResponse
	body := map[string]string{"email": email, "code": code}
	if err := c.postJSON(ctx, authNone, http.MethodPost, "/auth/verify", body, &resp); err != nil {
		return err
	}
	return c.sessions.Save(resp.AccessToken)
}

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, authNone, http.MethodPost, "/auth/login-json", body, &resp); err != nil {
		return err
	}
	return c.sessions.Save(resp.AccessToken)
}

// Logout invalidates the token server-side and always clears the local
// session, even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.postJSON(ctx, authRequired, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := c.sessions.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// ForgotPassword requests a reset link for the email. The service answers
// with the same message whether or not the account exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, authNone, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// InspectResetToken reports whether a password reset token is still valid.
func (c *Client) InspectResetToken(ctx context.Context, token string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	q := url.Values{"token": {token}}
	if err := c.getJSON(ctx, authNone, "/auth/reset-token/inspect", q, &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// ResetPassword sets a new password using a valid reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var resp messageResponse
	body := map[string]string{"token": token, "new_password": newPassword}
	if err := c.postJSON(ctx, authNone, http.MethodPost, "/auth/reset-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
