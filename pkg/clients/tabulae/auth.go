package tabulae

import (
	"context"
	"fmt"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// AuthClient covers the /auth surface. Login, Refresh and Logout operate on
// the shared cookie jar; Profile and VerifyPassword take the access token
// explicitly because callers hold tokens the session manager has not adopted
// yet.
type AuthClient struct {
	c *Client
}

// Login exchanges credentials for an access token. The email travels as
// "username" for OAuth2 form compatibility; the refresh cookie lands in the
// client's jar.
func (a *AuthClient) Login(ctx context.Context, email, password string) (models.TokenResponse, error) {
	result := new(models.TokenResponse)
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(result).
		SetError(apiErr).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.TokenResponse{}, err
	}

	return *result, nil
}

// Register creates a new account. New users start inactive until an admin
// enables them.
func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	result := new(models.User)
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.User{}, err
	}

	return *result, nil
}

// Refresh mints a new access token from the durable refresh cookie. No body
// is sent; the server reads the cookie from the jar.
func (a *AuthClient) Refresh(ctx context.Context) (models.TokenResponse, error) {
	result := new(models.TokenResponse)
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Post("/auth/refresh")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.TokenResponse{}, err
	}

	return *result, nil
}

// Logout asks the server to drop the refresh cookie.
func (a *AuthClient) Logout(ctx context.Context) error {
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetError(apiErr).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return checkResponse(resp, apiErr)
}

// Profile fetches the authenticated user's identity with the given token.
func (a *AuthClient) Profile(ctx context.Context, accessToken string) (models.Profile, error) {
	result := new(models.Profile)
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(result).
		SetError(apiErr).
		Get("/auth/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.Profile{}, err
	}

	return *result, nil
}

// VerifyPassword re-checks the current user's password, e.g. before a
// sensitive profile change.
func (a *AuthClient) VerifyPassword(ctx context.Context, password, accessToken string) (models.MessageResponse, error) {
	result := new(models.MessageResponse)
	apiErr := new(apiErrorBody)

	resp, err := a.c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(map[string]string{"password": password}).
		SetResult(result).
		SetError(apiErr).
		Post("/auth/verify-password")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("verify password request: %w", err)
	}
	if err := checkResponse(resp, apiErr); err != nil {
		return models.MessageResponse{}, err
	}

	return *result, nil
}
