package apisports_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mcdev12/formulated/go/clients"
)

type APISportsClient struct {
	*clients.BaseClient
}

func NewAPISportsClient(apiKey string) *APISportsClient {
	client := &APISportsClient{
		BaseClient: clients.NewBaseClient(string(clients.ExternalSourceAPISports), BaseURL),
	}

	client.SetHeader(RapidAPIKeyHeader, apiKey)
	client.SetHeader(RapidAPIHostHeader, RapidAPIHost)

	return client
}

// envelope is the wrapper every API-Sports endpoint returns. Only the
// response list is handed back to callers.
type envelope[T any] struct {
	Get        string          `json:"get"`
	Parameters json.RawMessage `json:"parameters"`
	Errors     json.RawMessage `json:"errors"`
	Results    int             `json:"results"`
	Response   []T             `json:"response"`
}

// getList performs one GET and unwraps the envelope. A populated errors
// field (API-Sports reports quota and auth problems there with a 200) is
// treated as a failed call.
func getList[T any](ctx context.Context, c *APISportsClient, endpoint string, query url.Values) ([]T, error) {
	body, err := c.Get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	var response envelope[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiErr := decodeAPIErrors(response.Errors); apiErr != "" {
		return nil, fmt.Errorf("API returned errors: %s", apiErr)
	}

	return response.Response, nil
}

// decodeAPIErrors returns a printable form of a non-empty errors value.
// The provider sends either [] or {"field": "message"}.
func decodeAPIErrors(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err == nil {
		if len(asMap) == 0 {
			return ""
		}
		return fmt.Sprint(asMap)
	}

	var asList []any
	if err := json.Unmarshal(raw, &asList); err == nil {
		if len(asList) == 0 {
			return ""
		}
		return fmt.Sprint(asList)
	}

	return string(raw)
}
