package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/logging"
	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Services is the fixed set of integration providers the workspace reports
// connection status for.
var Services = []string{"github", "database", "deploy", "storage"}

// IntegrationClient fetches connection status for the fixed service set.
// Any failure degrades to disconnected defaults; status is background-only
// and must never halt rendering.
type IntegrationClient struct {
	rest *resty.Client
	log  *logging.Logger
}

// NewIntegrationClient creates a status client for the given base URL.
func NewIntegrationClient(base string, log *logging.Logger) *IntegrationClient {
	if log == nil {
		log = logging.NewNop()
	}
	rest := resty.New().
		SetBaseURL(base).
		SetTimeout(5 * time.Second).
		SetRetryCount(1)
	return &IntegrationClient{rest: rest, log: log}
}

// Status returns connection state per service. It never returns an error:
// fetch or decode failures yield Disconnected() and a debug log line.
func (c *IntegrationClient) Status(ctx context.Context) map[string]types.IntegrationStatus {
	var body map[string]types.IntegrationStatus
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/integrations/status")
	if err != nil || resp.IsError() {
		c.log.Debug("integration status fetch degraded", zap.Error(err))
		return Disconnected()
	}

	out := Disconnected()
	for _, svc := range Services {
		if status, ok := body[svc]; ok {
			out[svc] = status
		}
	}
	return out
}

// Disconnected returns the default status map: every known service
// disconnected with no metadata.
func Disconnected() map[string]types.IntegrationStatus {
	out := make(map[string]types.IntegrationStatus, len(Services))
	for _, svc := range Services {
		out[svc] = types.IntegrationStatus{Connected: false}
	}
	return out
}
