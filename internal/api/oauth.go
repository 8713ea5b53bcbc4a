package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osheron/destinykit/models"
)

// ExchangeCode swaps an authorization code obtained from the Bungie.net
// authorize page for a token pair. Confidential clients authenticate with
// their client secret; public clients send only the client id.
func (c *Client) ExchangeCode(ctx context.Context, code string) (models.TokenResponse, error) {
	form := map[string]string{
		"grant_type": "authorization_code",
		"code":       code,
		"client_id":  c.oauth.ClientID,
	}
	if c.oauth.ClientSecret != "" {
		form["client_secret"] = c.oauth.ClientSecret
	}

	token, err := c.postTokenForm(ctx, form)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("exchange code: %w", err)
	}

	c.SetToken(token.AccessToken)
	return token, nil
}

// RefreshToken obtains a fresh access token from a refresh token. Only
// confidential clients (those registered with a secret) are issued refresh
// tokens.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	form := map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
		"client_id":     c.oauth.ClientID,
		"client_secret": c.oauth.ClientSecret,
	}

	token, err := c.postTokenForm(ctx, form)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh token: %w", err)
	}

	c.SetToken(token.AccessToken)
	return token, nil
}

// postTokenForm posts a form-encoded grant request to the token endpoint.
// The token endpoint does not use the platform envelope; the token payload
// is the response body itself.
func (c *Client) postTokenForm(ctx context.Context, form map[string]string) (models.TokenResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(form).
		Post(c.oauth.TokenURL)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	if !resp.IsSuccess() {
		return models.TokenResponse{}, fmt.Errorf("%w: http %d: %s", ErrTokenExchange, resp.StatusCode(), resp.Body())
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: decode token response: %v", ErrTokenExchange, err)
	}

	return token, nil
}
