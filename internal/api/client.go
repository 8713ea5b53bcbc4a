// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

// Package api implements the outbound HTTP pipeline of the SDK: typed calls
// to the Bungie.net platform endpoints, the OAuth token flows, and the
// manifest content-bundle downloader.
package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/osheron/destinykit/internal/config"
	"github.com/osheron/destinykit/internal/logger"
)

// Client is the resty-backed Bungie.net platform client. All requests carry
// the application API key; authenticated endpoints additionally send the
// bearer token set via [Client.SetToken].
type Client struct {
	http *resty.Client

	// download is a separate resty client for content bundles: same key
	// header, but a much longer timeout and no base URL since bundle
	// locations are absolute by the time they reach it.
	download *resty.Client

	webBaseURL string
	oauth      config.OAuth

	token string

	logger *logger.Logger
}

// NewClient constructs a platform [*Client] from the API and OAuth
// configuration. It normalises and validates the base URLs and configures
// the underlying HTTP client with the API key header and request timeout.
//
// Returns an error if a base URL is empty or cannot be parsed.
func NewClient(apiCfg config.API, oauthCfg config.OAuth, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	webBaseURL, err := normalizeBaseURL(apiCfg.WebBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid web base url: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetHeader("X-API-Key", apiCfg.Key)

	downloadClient := resty.New().
		SetTimeout(apiCfg.DownloadTimeout).
		SetHeader("X-API-Key", apiCfg.Key)

	return &Client{
		http:       httpClient,
		download:   downloadClient,
		webBaseURL: webBaseURL,
		oauth:      oauthCfg,
		logger:     logger.OrNop(log),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	return c.token
}

// ResolveContentURL turns a manifest content path into an absolute URL.
// Absolute inputs are returned unchanged; relative paths are joined to the
// configured web host.
func (c *Client) ResolveContentURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return c.webBaseURL + "/" + strings.TrimLeft(path, "/")
}

// request returns a prepared resty request with ctx-independent defaults
// applied; the bearer token is attached when present.
func (c *Client) request() *resty.Request {
	req := c.http.R().SetHeader("Accept", "application/json")
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	return req
}
