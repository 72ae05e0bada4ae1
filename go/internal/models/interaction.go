package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordType identifies the kind of entity a like or review points at
type RecordType string

const (
	RecordTypeTeam    RecordType = "team"
	RecordTypeMember  RecordType = "member"
	RecordTypeRace    RecordType = "race"
	RecordTypeCircuit RecordType = "circuit"
)

// RecordTypes lists every kind that can receive likes and reviews.
var RecordTypes = []RecordType{RecordTypeTeam, RecordTypeMember, RecordTypeRace, RecordTypeCircuit}

// Valid reports whether t is a known record type
func (t RecordType) Valid() bool {
	for _, rt := range RecordTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// DisplayName is the capitalised name used in user facing messages.
func (t RecordType) DisplayName() string {
	switch t {
	case RecordTypeTeam:
		return "Team"
	case RecordTypeMember:
		return "Member"
	case RecordTypeRace:
		return "Race"
	case RecordTypeCircuit:
		return "Circuit"
	default:
		return "Record"
	}
}

// Like is a user's unique endorsement of a record
type Like struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username,omitempty"`
	RecordType RecordType `json:"record_type"`
	RecordID   uuid.UUID  `json:"record_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Review is a user's unique rating of a record
type Review struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Username    string     `json:"username,omitempty"`
	Rating      int        `json:"rating"`
	Description string     `json:"description"`
	RecordType  RecordType `json:"record_type"`
	RecordID    uuid.UUID  `json:"record_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
