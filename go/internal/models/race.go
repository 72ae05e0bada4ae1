package models

import (
	"time"

	"github.com/google/uuid"
)

// RaceStatus is the state of a race weekend event
type RaceStatus string

const (
	RaceStatusScheduled RaceStatus = "scheduled"
	RaceStatusOngoing   RaceStatus = "ongoing"
	RaceStatusCompleted RaceStatus = "completed"
	RaceStatusCancelled RaceStatus = "cancelled"
)

// Circuit is a venue. There is no provider identifier; circuits are
// matched on name or location.
type Circuit struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Race struct {
	ID          uuid.UUID  `json:"id"`
	ExternalID  *int       `json:"external_id,omitempty"`
	CircuitID   uuid.UUID  `json:"circuit_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	Status      RaceStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Position is one driver's classification in one race.
type Position struct {
	ID           uuid.UUID `json:"id"`
	RaceID       uuid.UUID `json:"race_id"`
	DriverID     uuid.UUID `json:"driver_id"`
	Position     int       `json:"position"`
	Points       int       `json:"points"`
	Laps         *int      `json:"laps,omitempty"`
	Time         *string   `json:"time,omitempty"`
	PitStopCount *int      `json:"pit_stop_count,omitempty"`
	Grid         *string   `json:"grid,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
