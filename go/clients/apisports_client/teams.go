package apisports_client

import (
	"context"
	"fmt"
)

// GetTeams returns every constructor known to the provider
func (c *APISportsClient) GetTeams(ctx context.Context) ([]Team, error) {
	teams, err := getList[Team](ctx, c, TeamsEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}
