package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/osheron/destinykit/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrThrottled, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// unwrapEnvelope validates the Bungie.net response envelope carried in resp
// and, on success, decodes the payload into out (skipped when out is nil).
// Transport errors from mapHTTPError take precedence over envelope decoding.
func unwrapEnvelope(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if !envelope.Succeeded() {
		if envelope.ErrorCode == models.PlatformSystemDisabled {
			return fmt.Errorf("%w: %s", ErrSystemDisabled, envelope.Message)
		}
		return fmt.Errorf("%w: %s (%d %s)", ErrPlatform, envelope.Message, envelope.ErrorCode, envelope.ErrorStatus)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(envelope.Response, out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}

	return nil
}
