package apisports_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetRaces returns the events of a season filtered to the given type
func (c *APISportsClient) GetRaces(ctx context.Context, season int, raceType string) ([]Race, error) {
	query := url.Values{"season": {strconv.Itoa(season)}}
	if raceType != "" {
		query.Set("type", raceType)
	}
	races, err := getList[Race](ctx, c, RacesEndpoint, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get races for season %d: %w", season, err)
	}
	return races, nil
}

// GetRaceRankings returns the classification of one race
func (c *APISportsClient) GetRaceRankings(ctx context.Context, raceID int) ([]RaceRanking, error) {
	query := url.Values{"race": {strconv.Itoa(raceID)}}
	rankings, err := getList[RaceRanking](ctx, c, RaceRankingsEndpoint, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rankings for race %d: %w", raceID, err)
	}
	return rankings, nil
}
