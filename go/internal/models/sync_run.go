package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncKind names a puller job
type SyncKind string

const (
	SyncKindTeams   SyncKind = "teams"
	SyncKindDrivers SyncKind = "drivers"
	SyncKindRaces   SyncKind = "races"
)

// SyncRun is the persisted outcome of one puller execution
type SyncRun struct {
	ID         uuid.UUID      `json:"id"`
	Kind       SyncKind       `json:"kind"`
	Source     string         `json:"source"`
	Success    bool           `json:"success"`
	Counts     map[string]int `json:"counts"`
	Errors     []string       `json:"errors"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}
