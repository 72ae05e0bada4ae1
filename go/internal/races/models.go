package races

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/formulated/go/internal/models"
)

type CircuitParams struct {
	Name     string
	Location string
}

// RaceParams are the race fields written by a sync. The circuit is
// resolved inside the same transaction.
type RaceParams struct {
	ExternalID  *int
	Name        string
	Description string
	StartAt     *time.Time
	Status      models.RaceStatus
}

type PositionParams struct {
	RaceID       uuid.UUID
	DriverID     uuid.UUID
	Position     int
	Points       int
	Laps         *int
	Time         *string
	PitStopCount *int
	Grid         *string
}

// RaceWrite reports what one race transaction did
type RaceWrite struct {
	Race           *models.Race
	RaceCreated    bool
	CircuitCreated bool
}

// RaceDetail is a race with its circuit
type RaceDetail struct {
	models.Race
	Circuit *models.Circuit `json:"circuit,omitempty"`
}

// SyncStats is a snapshot of race data, reported around a sync.
type SyncStats struct {
	TotalRaces     int `json:"total_races"`
	TotalCircuits  int `json:"total_circuits"`
	CompletedRaces int `json:"completed_races"`
	ScheduledRaces int `json:"scheduled_races"`
	OngoingRaces   int `json:"ongoing_races"`
	CancelledRaces int `json:"cancelled_races"`
}

// RaceSyncResult is the outcome of one SyncRaces run
type RaceSyncResult struct {
	Success          bool     `json:"success"`
	Season           int      `json:"season"`
	RacesFetched     int      `json:"races_fetched"`
	RacesCreated     int      `json:"races_created"`
	RacesUpdated     int      `json:"races_updated"`
	CircuitsCreated  int      `json:"circuits_created"`
	CircuitsUpdated  int      `json:"circuits_updated"`
	PositionsCreated int      `json:"positions_created"`
	PositionsUpdated int      `json:"positions_updated"`
	Errors           []string `json:"errors"`
}

func (r *RaceSyncResult) OK() bool { return r.Success }

func (r *RaceSyncResult) Counts() map[string]int {
	return map[string]int{
		"races_fetched":     r.RacesFetched,
		"races_created":     r.RacesCreated,
		"races_updated":     r.RacesUpdated,
		"circuits_created":  r.CircuitsCreated,
		"circuits_updated":  r.CircuitsUpdated,
		"positions_created": r.PositionsCreated,
		"positions_updated": r.PositionsUpdated,
	}
}

func (r *RaceSyncResult) ErrorMessages() []string { return r.Errors }
