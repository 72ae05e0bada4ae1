package models

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole is the function a member has within a team
type MemberRole string

const (
	MemberRoleDriver   MemberRole = "driver"
	MemberRoleEngineer MemberRole = "engineer"
	MemberRoleManager  MemberRole = "manager"
	MemberRoleOther    MemberRole = "other"
)

// Member represents a person belonging to a team. Drivers carry the
// car number and the provider identifiers used for reconciliation.
type Member struct {
	ID           uuid.UUID  `json:"id"`
	TeamID       uuid.UUID  `json:"team_id"`
	Name         string     `json:"name"`
	Role         MemberRole `json:"role"`
	Description  string     `json:"description"`
	ExternalID   *int       `json:"external_id,omitempty"`
	DriverNumber *int       `json:"driver_number,omitempty"`
	NameAcronym  *string    `json:"name_acronym,omitempty"`
	CountryCode  *string    `json:"country_code,omitempty"`
	HeadshotURL  *string    `json:"headshot_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
