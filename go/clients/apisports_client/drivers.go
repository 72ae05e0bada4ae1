package apisports_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetDriver returns the detail list for one driver id. The provider answers
// with a list that is empty when the id is unknown.
func (c *APISportsClient) GetDriver(ctx context.Context, id int) ([]Driver, error) {
	query := url.Values{"id": {strconv.Itoa(id)}}
	drivers, err := getList[Driver](ctx, c, DriversEndpoint, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver %d: %w", id, err)
	}
	return drivers, nil
}

// GetDriversRankings returns the championship standings for a season
func (c *APISportsClient) GetDriversRankings(ctx context.Context, season int) ([]DriverRanking, error) {
	query := url.Values{"season": {strconv.Itoa(season)}}
	rankings, err := getList[DriverRanking](ctx, c, DriverRankingsEndpoint, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver rankings for season %d: %w", season, err)
	}
	return rankings, nil
}
