package openf1_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type Driver struct {
	BroadcastName string `json:"broadcast_name"`
	CountryCode   string `json:"country_code"`
	DriverNumber  int    `json:"driver_number"`
	FirstName     string `json:"first_name"`
	FullName      string `json:"full_name"`
	HeadshotURL   string `json:"headshot_url"`
	LastName      string `json:"last_name"`
	MeetingKey    int    `json:"meeting_key"`
	NameAcronym   string `json:"name_acronym"`
	SessionKey    int    `json:"session_key"`
	TeamColour    string `json:"team_colour"`
	TeamName      string `json:"team_name"`
}

// DriverFilter narrows the drivers endpoint. Zero values are omitted.
type DriverFilter struct {
	SessionKey   string
	MeetingKey   string
	DriverNumber int
}

func (f DriverFilter) values() url.Values {
	q := url.Values{}
	if f.SessionKey != "" {
		q.Set("session_key", f.SessionKey)
	}
	if f.MeetingKey != "" {
		q.Set("meeting_key", f.MeetingKey)
	}
	if f.DriverNumber > 0 {
		q.Set("driver_number", strconv.Itoa(f.DriverNumber))
	}
	return q
}

func (c *OpenF1Client) GetDrivers(ctx context.Context, filter DriverFilter) ([]Driver, error) {
	drivers, err := getList[Driver](ctx, c, DriversEndpoint, filter.values())
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}
	return drivers, nil
}

// GetLatestDrivers returns the entry list of the most recent session
func (c *OpenF1Client) GetLatestDrivers(ctx context.Context) ([]Driver, error) {
	return c.GetDrivers(ctx, DriverFilter{SessionKey: Latest})
}
