package races

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcdev12/formulated/go/clients/apisports_client"
	"github.com/mcdev12/formulated/go/internal/models"
)

const (
	defaultCircuitName = "Unknown Circuit"
	defaultRaceName    = "Unknown Race"
	defaultLocation    = "Unknown Location"
	defaultDescription = "Formula 1 Race"
)

var statusByProvider = map[string]models.RaceStatus{
	"completed": models.RaceStatusCompleted,
	"finished":  models.RaceStatusCompleted,
	"ongoing":   models.RaceStatusOngoing,
	"live":      models.RaceStatusOngoing,
	"scheduled": models.RaceStatusScheduled,
	"cancelled": models.RaceStatusCancelled,
	"canceled":  models.RaceStatusCancelled,
}

// pointsByPosition is the championship points table for the top ten.
var pointsByPosition = map[int]int{1: 25, 2: 18, 3: 15, 4: 12, 5: 10, 6: 8, 7: 6, 8: 4, 9: 2, 10: 1}

// MapRaceStatus maps provider free text onto a RaceStatus. Anything
// unrecognised is scheduled.
func MapRaceStatus(s string) models.RaceStatus {
	if status, ok := statusByProvider[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status
	}
	return models.RaceStatusScheduled
}

// PointsForPosition returns the points earned by a finishing position
func PointsForPosition(position int) int {
	return pointsByPosition[position]
}

// BuildDescription joins whichever race details the provider sent.
func BuildDescription(r apisports_client.Race) string {
	var parts []string
	if r.Season.Valid && r.Season.Value != 0 {
		parts = append(parts, fmt.Sprintf("Season: %d", r.Season.Value))
	}
	if r.Type != "" {
		parts = append(parts, "Type: "+r.Type)
	}
	if r.Distance != "" {
		parts = append(parts, "Distance: "+r.Distance)
	}
	if r.Laps.Total.Valid && r.Laps.Total.Value != 0 {
		parts = append(parts, fmt.Sprintf("Total Laps: %d", r.Laps.Total.Value))
	}
	if r.FastestLap.Time != "" {
		parts = append(parts, "Fastest Lap: "+r.FastestLap.Time)
	}

	if len(parts) == 0 {
		return defaultDescription
	}
	return strings.Join(parts, " | ")
}

func mapCircuit(r apisports_client.Race) CircuitParams {
	name := r.Circuit.Name
	if name == "" {
		name = defaultCircuitName
	}

	loc := r.Competition.Location
	location := defaultLocation
	if loc.City != "" || loc.Country != "" {
		location = strings.Trim(loc.City+", "+loc.Country, ", ")
	}

	return CircuitParams{Name: name, Location: location}
}

func mapRace(r apisports_client.Race) (RaceParams, error) {
	name := r.Competition.Name
	if name == "" {
		name = defaultRaceName
	}

	// The provider omits the date for some rounds. That leaves start_at
	// NULL; a date that is present but unparseable still rejects the race.
	var startAt *time.Time
	if date := strings.TrimSpace(r.Date); date != "" {
		t, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return RaceParams{}, fmt.Errorf("invalid start date %q: %w", r.Date, err)
		}
		startAt = &t
	}

	externalID := r.ID
	return RaceParams{
		ExternalID:  &externalID,
		Name:        name,
		Description: BuildDescription(r),
		StartAt:     startAt,
		Status:      MapRaceStatus(r.Status),
	}, nil
}
