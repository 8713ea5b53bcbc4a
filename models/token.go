package models

import "time"

// TokenResponse is the payload returned by the Bungie.net OAuth token
// endpoint for both the authorization-code exchange and the refresh grant.
type TokenResponse struct {
	// AccessToken is the opaque bearer token sent on authenticated requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access-token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is issued only to confidential clients and used to
	// obtain a new access token without user interaction.
	RefreshToken string `json:"refresh_token,omitempty"`

	// RefreshExpiresIn is the refresh-token lifetime in seconds.
	RefreshExpiresIn int `json:"refresh_expires_in,omitempty"`

	// MembershipID is the Bungie.net membership the token was issued for.
	MembershipID string `json:"membership_id"`
}

// ExpiresAt computes the absolute access-token expiry from the moment the
// token was received.
func (t *TokenResponse) ExpiresAt(receivedAt time.Time) time.Time {
	return receivedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}
