package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus is the lifecycle state of a team
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusInactive TeamStatus = "inactive"
)

// Team represents a constructor entered in the championship
type Team struct {
	ID                 uuid.UUID  `json:"id"`
	ExternalID         *int       `json:"external_id,omitempty"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Status             TeamStatus `json:"status"`
	LogoURL            *string    `json:"logo_url,omitempty"`
	Base               *string    `json:"base,omitempty"`
	FirstTeamEntry     *int       `json:"first_team_entry,omitempty"`
	WorldChampionships *int       `json:"world_championships,omitempty"`
	HighestRaceFinish  *int       `json:"highest_race_finish,omitempty"`
	PolePositions      *int       `json:"pole_positions,omitempty"`
	FastestLaps        *int       `json:"fastest_laps,omitempty"`
	President          *string    `json:"president,omitempty"`
	Director           *string    `json:"director,omitempty"`
	TechnicalManager   *string    `json:"technical_manager,omitempty"`
	Chassis            *string    `json:"chassis,omitempty"`
	Engine             *string    `json:"engine,omitempty"`
	Tyres              *string    `json:"tyres,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
