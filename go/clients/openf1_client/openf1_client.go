package openf1_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mcdev12/formulated/go/clients"
)

type OpenF1Client struct {
	*clients.BaseClient
}

func NewOpenF1Client() *OpenF1Client {
	client := &OpenF1Client{
		BaseClient: clients.NewBaseClient(string(clients.ExternalSourceOpenF1), BaseURL),
	}

	client.SetHeader(UserAgentHeader, UserAgent)
	client.SetHeader(AcceptHeader, JsonContentType)

	return client
}

// getList decodes the flat JSON arrays OpenF1 returns.
func getList[T any](ctx context.Context, c *OpenF1Client, endpoint string, query url.Values) ([]T, error) {
	body, err := c.Get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return items, nil
}

// HealthCheck reports whether the API answers a minimal query.
func (c *OpenF1Client) HealthCheck(ctx context.Context) bool {
	_, err := c.Get(ctx, SessionsEndpoint, url.Values{"session_key": {Latest}})
	return err == nil
}
