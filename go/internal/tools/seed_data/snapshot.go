package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// seedNamespace derives stable ids so reseeding hits the same primary keys
var seedNamespace = uuid.MustParse("6f1c1e0a-3d4b-5a8e-9c2f-0b7d4e5a1f30")

type Snapshot struct {
	Users    []SeedUser    `json:"users"`
	Teams    []SeedTeam    `json:"teams"`
	Circuits []SeedCircuit `json:"circuits"`
	Races    []SeedRace    `json:"races"`
}

type SeedUser struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	PasswordEnv     string `json:"password_env"`
	DefaultPassword string `json:"default_password"`
	IsStaff         bool   `json:"is_staff"`
}

type SeedTeam struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Drivers     []SeedDriver `json:"drivers"`
}

type SeedDriver struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SeedCircuit struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type SeedRace struct {
	Name        string       `json:"name"`
	Circuit     string       `json:"circuit"`
	Description string       `json:"description"`
	StartAt     time.Time    `json:"start_at"`
	Status      string       `json:"status"`
	Results     []SeedResult `json:"results"`
}

type SeedResult struct {
	Driver   string `json:"driver"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &s, nil
}

func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name))
}
