package api

import (
	"context"
	"errors"
	"fmt"
	"net"

	"city-weather/internal/domain/model"
	"city-weather/internal/domain/model/external"
)

// classifyCallError maps an outbound call failure to a domain error kind.
// status 0 means the request never produced an HTTP response.
func classifyCallError(provider string, status int, errResp any, err error) error {
	if status == 0 {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("%s: %w", provider, model.ErrNetworkTimeout)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", provider, model.ErrNetworkTimeout)
		}
		return fmt.Errorf("%s: %w: %v", provider, model.ErrConnectionFailure, err)
	}

	reason := ""
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		reason = apiErr.Reason
	}

	if status == 401 || status == 403 {
		if reason != "" {
			return fmt.Errorf("%s: %w: %s", provider, model.ErrProviderAuth, reason)
		}
		return fmt.Errorf("%s: %w", provider, model.ErrProviderAuth)
	}

	return &model.ProviderHTTPError{Provider: provider, Status: status}
}
