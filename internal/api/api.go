package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osheron/destinykit/models"
)

// GetDestinyManifest fetches the current manifest descriptor from
// GET /Destiny2/Manifest/. The descriptor is the input of the sync pipeline;
// this call itself never touches the local store.
func (c *Client) GetDestinyManifest(ctx context.Context) (models.ManifestDescriptor, error) {
	var descriptor models.ManifestDescriptor

	resp, err := c.request().
		SetContext(ctx).
		Get("/Destiny2/Manifest/")
	if err != nil {
		return models.ManifestDescriptor{}, fmt.Errorf("get manifest request: %w", err)
	}
	if err = unwrapEnvelope(resp, &descriptor); err != nil {
		return models.ManifestDescriptor{}, err
	}

	c.logger.Debug().
		Str("version", descriptor.Version).
		Int("locales", len(descriptor.MobileWorldContentPaths)).
		Msg("fetched manifest descriptor")

	return descriptor, nil
}

// GetProfile fetches the requested profile components from
// GET /Destiny2/{membershipType}/Profile/{membershipId}/.
func (c *Client) GetProfile(ctx context.Context, membershipType models.MembershipType, membershipID string, components []int) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	componentList := make([]string, 0, len(components))
	for _, comp := range components {
		componentList = append(componentList, strconv.Itoa(comp))
	}

	resp, err := c.request().
		SetContext(ctx).
		SetPathParam("membershipType", strconv.Itoa(int(membershipType))).
		SetPathParam("membershipId", membershipID).
		SetQueryParam("components", strings.Join(componentList, ",")).
		Get("/Destiny2/{membershipType}/Profile/{membershipId}/")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = unwrapEnvelope(resp, &profile); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// SearchPlayerByBungieName resolves platform accounts for an exact
// "Name#1234" bungie name via
// POST /Destiny2/SearchDestinyPlayerByBungieName/{membershipType}/.
// Pass -1 as membershipType to search across all platforms.
func (c *Client) SearchPlayerByBungieName(ctx context.Context, membershipType int, search models.PlayerSearchRequest) ([]models.UserInfoCard, error) {
	var cards []models.UserInfoCard

	resp, err := c.request().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("membershipType", strconv.Itoa(membershipType)).
		SetBody(search).
		Post("/Destiny2/SearchDestinyPlayerByBungieName/{membershipType}/")
	if err != nil {
		return nil, fmt.Errorf("search player request: %w", err)
	}
	if err = unwrapEnvelope(resp, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}
